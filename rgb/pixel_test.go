package rgb

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixel_Text(t *testing.T) {
	testCases := map[string]struct {
		p        Pixel
		expected string
	}{
		"Black": {p: Pixel{}, expected: "0 0 0"},
		"White": {p: New(255, 255, 255), expected: "255 255 255"},
		"Mixed": {p: New(7, 128, 31), expected: "7 128 31"},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.p.String())
			assert.Equal(t, "x"+tt.expected+"\n", string(tt.p.AppendText([]byte("x"))))
		})
	}
}

func TestPixel_Color(t *testing.T) {
	p := New(10, 20, 30)
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, p.RGBA())
	assert.Equal(t, p, FromColor(p.RGBA()))
	assert.Equal(t, New(255, 0, 0), FromColor(color.NRGBA{R: 255, A: 255}))
}

func TestClamp(t *testing.T) {
	testCases := []struct {
		in       float64
		expected uint8
	}{
		{-1, 0},
		{0, 0},
		{0.9, 0},
		{127.5, 127},
		{255, 255},
		{256, 255},
		{1e300, 255},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range testCases {
		if out := Clamp(tt.in); out != tt.expected {
			t.Errorf("Clamp(%f) expected to be %d, got %d", tt.in, tt.expected, out)
		}
	}
}
