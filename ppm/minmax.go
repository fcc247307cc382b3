package ppm

import (
	"github.com/seqsense/raytracer/rgb"
)

// MinMax returns the per-channel minimum and maximum over all pixels of img.
func MinMax(img *Image) (rgb.Pixel, rgb.Pixel) {
	min := rgb.Pixel{R: 255, G: 255, B: 255}
	var max rgb.Pixel
	for it := img.Iterator(); it.IsValid(); it.Incr() {
		p := it.Pixel()
		if p.R < min.R {
			min.R = p.R
		}
		if p.G < min.G {
			min.G = p.G
		}
		if p.B < min.B {
			min.B = p.B
		}
		if p.R > max.R {
			max.R = p.R
		}
		if p.G > max.G {
			max.G = p.G
		}
		if p.B > max.B {
			max.B = p.B
		}
	}
	return min, max
}
