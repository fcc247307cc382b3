package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqsense/raytracer/mat"
	"github.com/seqsense/raytracer/rgb"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		c, err := loadConfig(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, defaultConfig(), c)
	})
	t.Run("Full", func(t *testing.T) {
		const doc = `
width: 64
height: 32
output: out.ppm
caption: "hello"
caption_color: [10, 20, 30]
rays:
  - origin: [0, 0, 0]
    direction: [0, 0, -1]
  - origin: [1, 2, 3]
    direction: [1, 0, 0]
samples: [0, 0.5]
cloud_output: out.pcd
`
		c, err := loadConfig(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, 64, c.Width)
		assert.Equal(t, 32, c.Height)
		assert.Equal(t, "out.ppm", c.Output)
		assert.Equal(t, "hello", c.Caption)
		assert.Equal(t, rgb.New(10, 20, 30), c.captionColor())
		assert.Equal(t, []float64{0, 0.5}, c.Samples)
		assert.Equal(t, "out.pcd", c.CloudOutput)
		assert.Equal(t, []mat.Ray{
			mat.NewRay(mat.NewPoint3D(0, 0, 0), mat.NewVec3D(0, 0, -1)),
			mat.NewRay(mat.NewPoint3D(1, 2, 3), mat.NewVec3D(1, 0, 0)),
		}, c.rays())
	})
	t.Run("Partial", func(t *testing.T) {
		c, err := loadConfig(strings.NewReader("width: 8\n"))
		require.NoError(t, err)
		assert.Equal(t, 8, c.Width)
		assert.Equal(t, 512, c.Height)
		assert.Equal(t, "hello_world.ppm", c.Output)
	})

	for name, doc := range map[string]string{
		"UnknownKey":  "widht: 8\n",
		"Type":        "width: wide\n",
		"ColorRange":  "caption_color: [256, 0, 0]\n",
		"ColorLength": "caption_color: [1, 2]\n",
		"NotAMapping": "- 1\n",
	} {
		doc := doc
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestRenderConfig_RayTransform(t *testing.T) {
	const doc = `
rays:
  - origin: [1, 0, 0]
    direction: [1, 0, 0]
    transform:
      scale: [2, 2, 2]
      rotate:
        axis: [0, 0, 2]
        angle: 90
      translate: [0, 0, 5]
  - origin: [1, 2, 3]
    direction: [0, 1, 0]
    transform:
      translate: [1, 1, 1]
`
	c, err := loadConfig(strings.NewReader(doc))
	require.NoError(t, err)
	require.NoError(t, c.validate())

	rays := c.rays()
	require.Len(t, rays, 2)

	const delta = 1e-9
	assert.InDeltaSlice(t, []float64{0, 2, 5}, []float64{rays[0].Origin.X, rays[0].Origin.Y, rays[0].Origin.Z}, delta)
	assert.InDeltaSlice(t, []float64{0, 2, 0}, rays[0].Direction[:], delta)

	assert.Equal(t, mat.NewPoint3D(2, 3, 4), rays[1].Origin)
	assert.Equal(t, mat.NewVec3D(0, 1, 0), rays[1].Direction)
}

func TestRenderConfig_Validate(t *testing.T) {
	c := defaultConfig()
	require.NoError(t, c.validate())

	for _, size := range [][2]int{{0, 1}, {1, 0}, {-1, 5}} {
		c.Width, c.Height = size[0], size[1]
		if err := c.validate(); !errors.Is(err, errInvalidSize) {
			t.Errorf("Expected error: %v for %dx%d, got: %v", errInvalidSize, size[0], size[1], err)
		}
	}

	c = defaultConfig()
	c.Rays = []rayConfig{
		{Direction: [3]float64{0, 0, 1}},
		{Direction: [3]float64{0, 0, 1}, Transform: &transformConfig{Rotate: &rotateConfig{Angle: 90}}},
	}
	if err := c.validate(); !errors.Is(err, errInvalidAxis) {
		t.Errorf("Expected error: %v, got: %v", errInvalidAxis, err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	c, err := loadConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), c)

	_, err = loadConfigFile("/nonexistent/job.yaml")
	assert.Error(t, err)
}
