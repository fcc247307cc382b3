package ppm

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/seqsense/raytracer/rgb"
)

// Display exposes an image as a drivers.Displayer so that tinygo drawing
// libraries can render into it. Writes outside the image are dropped.
type Display struct {
	img *Image
}

var _ drivers.Displayer = (*Display)(nil)

func NewDisplay(img *Image) *Display {
	return &Display{img: img}
}

// Size reports the image size, saturated at math.MaxInt16 on each axis.
// Pixels beyond that are not reachable through the display.
func (d *Display) Size() (x, y int16) {
	return clampInt16(d.img.width), clampInt16(d.img.height)
}

func clampInt16(n int) int16 {
	if n > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(n)
}

// SetPixel stores c without its alpha channel.
func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if !d.img.In(int(x), int(y)) {
		return
	}
	d.img.Set(int(x), int(y), rgb.New(c.R, c.G, c.B))
}

// Display is a no-op; pixels are written directly into the image.
func (d *Display) Display() error {
	return nil
}

// CaptionFont is the font used by Caption.
var CaptionFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// Caption draws text onto img with its baseline at y, starting at column x.
func Caption(img *Image, x, y int, text string, p rgb.Pixel) {
	tinyfont.WriteLine(NewDisplay(img), CaptionFont, int16(x), int16(y), text, p.RGBA())
}
