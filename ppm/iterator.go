package ppm

import (
	"github.com/seqsense/raytracer/rgb"
)

// PixelIterator walks the pixels of an image in row-major order.
// It only moves forward and cannot be rewound.
type PixelIterator interface {
	Incr()
	IsValid() bool
	Pixel() rgb.Pixel
	// XY returns the coordinate of the current pixel.
	XY() (int, int)
}

type pixelIterator struct {
	data  []rgb.Pixel
	pos   int
	width int
}

// Iterator returns a row-major iterator over img, starting at (0, 0).
func (img *Image) Iterator() PixelIterator {
	return &pixelIterator{
		data:  img.pix,
		width: img.width,
	}
}

func (i *pixelIterator) Incr() {
	i.pos++
}

func (i *pixelIterator) IsValid() bool {
	return i.pos < len(i.data)
}

func (i *pixelIterator) Pixel() rgb.Pixel {
	return i.data[i.pos]
}

func (i *pixelIterator) XY() (int, int) {
	return i.pos % i.width, i.pos / i.width
}
