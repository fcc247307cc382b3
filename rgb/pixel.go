// Package rgb provides 8-bit per channel color samples.
package rgb

import (
	"image/color"
	"math"
	"strconv"
)

// Pixel is an RGB sample without alpha.
type Pixel struct {
	R, G, B uint8
}

func New(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// String renders the channels as space separated decimals.
func (p Pixel) String() string {
	return string(p.appendChannels(make([]byte, 0, 11)))
}

func (p Pixel) appendChannels(b []byte) []byte {
	b = strconv.AppendUint(b, uint64(p.R), 10)
	b = append(b, ' ')
	b = strconv.AppendUint(b, uint64(p.G), 10)
	b = append(b, ' ')
	b = strconv.AppendUint(b, uint64(p.B), 10)
	return b
}

// AppendText appends the pixel as one line of text, terminated by '\n'.
func (p Pixel) AppendText(b []byte) []byte {
	return append(p.appendChannels(b), '\n')
}

// RGBA returns p as an opaque color.
func (p Pixel) RGBA() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}

// FromColor drops the alpha channel of c.
func FromColor(c color.Color) Pixel {
	r, g, b, _ := c.RGBA()
	return Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Clamp reduces v into a channel value, saturating at 0 and 255.
// NaN maps to 0.
func Clamp(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
