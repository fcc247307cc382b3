// Package ppm implements a fixed-size RGB image buffer and its plain-text
// P3 encoding.
package ppm

import (
	"fmt"
	"math"
	"image"

	"github.com/seqsense/raytracer/rgb"
)

// Image is a width x height grid of pixels stored in row-major order.
// The dimensions are fixed at construction. Image is not safe for concurrent
// mutation.
type Image struct {
	width, height int
	pix           []rgb.Pixel
}

// New returns a black image. It panics if width or height is not positive,
// or if width*height overflows int.
func New(width, height int) *Image {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		panic(fmt.Sprintf("ppm: invalid image size %dx%d", width, height))
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]rgb.Pixel, width*height),
	}
}

func (img *Image) Width() int {
	return img.width
}

func (img *Image) Height() int {
	return img.height
}

// Len returns the number of pixels.
func (img *Image) Len() int {
	return len(img.pix)
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// In reports whether (x, y) addresses a pixel of img.
func (img *Image) In(x, y int) bool {
	return 0 <= x && x < img.width && 0 <= y && y < img.height
}

func (img *Image) offset(x, y int) int {
	if !img.In(x, y) {
		panic(fmt.Sprintf("ppm: coordinate (%d, %d) out of %dx%d image", x, y, img.width, img.height))
	}
	return y*img.width + x
}

// At returns the pixel at column x, row y. It panics if (x, y) is outside
// the image.
func (img *Image) At(x, y int) rgb.Pixel {
	return img.pix[img.offset(x, y)]
}

// Set replaces the pixel at column x, row y. It panics if (x, y) is outside
// the image.
func (img *Image) Set(x, y int, p rgb.Pixel) {
	img.pix[img.offset(x, y)] = p
}
