package ppm

import (
	"github.com/seqsense/raytracer/rgb"
)

// scanRatio maps the index range [0, n-1] onto [0, 256]. A single-pixel axis
// has no range and maps to 0.
func scanRatio(n int) float64 {
	if n <= 1 {
		return 0
	}
	return 256 / float64(n-1)
}

// RedGreenScan returns a gradient image: red grows with x, green grows with
// y, blue is 0. The last column and row saturate at 255.
func RedGreenScan(width, height int) *Image {
	img := New(width, height)
	rx, ry := scanRatio(width), scanRatio(height)
	for y := 0; y < height; y++ {
		g := rgb.Clamp(float64(y) * ry)
		for x := 0; x < width; x++ {
			img.Set(x, y, rgb.New(rgb.Clamp(float64(x)*rx), g, 0))
		}
	}
	return img
}
