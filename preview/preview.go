// Package preview shows images on a terminal.
package preview

import (
	"github.com/gdamore/tcell"

	"github.com/seqsense/raytracer/ppm"
	"github.com/seqsense/raytracer/rgb"
)

func style(p rgb.Pixel) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(p.R), int32(p.G), int32(p.B)))
}

// Draw fills the screen with img, one cell per sampled pixel. The image is
// scaled to the screen by nearest neighbour sampling.
func Draw(s tcell.Screen, img *ppm.Image) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	for cy := 0; cy < h; cy++ {
		y := cy * img.Height() / h
		for cx := 0; cx < w; cx++ {
			x := cx * img.Width() / w
			s.SetContent(cx, cy, ' ', nil, style(img.At(x, y)))
		}
	}
}

// Show draws img on the terminal and blocks until a key is pressed.
// The image is redrawn when the terminal is resized.
func Show(img *ppm.Image) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	return run(s, img)
}

func run(s tcell.Screen, img *ppm.Image) error {
	Draw(s, img)
	s.Show()
	for {
		switch s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
			Draw(s, img)
			s.Show()
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}
