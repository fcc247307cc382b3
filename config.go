package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seqsense/raytracer/mat"
	"github.com/seqsense/raytracer/rgb"
)

type rotateConfig struct {
	Axis  [3]float64 `yaml:"axis"`
	Angle float64    `yaml:"angle"` // degrees
}

// transformConfig is applied as scale, then rotate, then translate.
type transformConfig struct {
	Translate [3]float64    `yaml:"translate"`
	Rotate    *rotateConfig `yaml:"rotate"`
	Scale     *[3]float64   `yaml:"scale"`
}

func (c *transformConfig) matrix() mat.Mat4 {
	m := mat.Identity()
	if c.Scale != nil {
		m = mat.Scale(c.Scale[0], c.Scale[1], c.Scale[2])
	}
	if r := c.Rotate; r != nil {
		axis := mat.NewVec3D(r.Axis[0], r.Axis[1], r.Axis[2]).Normalized()
		m = mat.Rotate(axis[0], axis[1], axis[2], r.Angle*math.Pi/180).Mul(m)
	}
	return mat.Translate(c.Translate[0], c.Translate[1], c.Translate[2]).Mul(m)
}

type rayConfig struct {
	Origin    [3]float64       `yaml:"origin"`
	Direction [3]float64       `yaml:"direction"`
	Transform *transformConfig `yaml:"transform"`
}

type renderConfig struct {
	Width        int         `yaml:"width"`
	Height       int         `yaml:"height"`
	Output       string      `yaml:"output"`
	Caption      string      `yaml:"caption"`
	CaptionColor [3]uint8    `yaml:"caption_color"`
	Rays         []rayConfig `yaml:"rays"`
	Samples      []float64   `yaml:"samples"`
	CloudOutput  string      `yaml:"cloud_output"`
}

var (
	errInvalidSize = errors.New("image size must be positive")
	errInvalidAxis = errors.New("rotation axis must be non-zero")
)

func defaultConfig() *renderConfig {
	return &renderConfig{
		Width:        512,
		Height:       512,
		Output:       "hello_world.ppm",
		CaptionColor: [3]uint8{255, 255, 255},
		Samples:      []float64{0, 1},
		CloudOutput:  "rays.pcd",
	}
}

// loadConfig decodes a render job over the defaults.
// An empty document leaves the defaults untouched.
func loadConfig(r io.Reader) (*renderConfig, error) {
	c := defaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding render job: %w", err)
	}
	return c, nil
}

func loadConfigFile(path string) (*renderConfig, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadConfig(f)
}

func (c *renderConfig) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", errInvalidSize, c.Width, c.Height)
	}
	for i, r := range c.Rays {
		if r.Transform == nil || r.Transform.Rotate == nil {
			continue
		}
		a := r.Transform.Rotate.Axis
		if mat.NewVec3D(a[0], a[1], a[2]).NormSq() == 0 {
			return fmt.Errorf("%w: ray %d", errInvalidAxis, i)
		}
	}
	return nil
}

func (c *renderConfig) captionColor() rgb.Pixel {
	return rgb.New(c.CaptionColor[0], c.CaptionColor[1], c.CaptionColor[2])
}

func (c *renderConfig) rays() []mat.Ray {
	rays := make([]mat.Ray, 0, len(c.Rays))
	for _, r := range c.Rays {
		ray := mat.NewRay(
			mat.NewPoint3D(r.Origin[0], r.Origin[1], r.Origin[2]),
			mat.NewVec3D(r.Direction[0], r.Direction[1], r.Direction[2]),
		)
		if r.Transform != nil {
			ray = ray.Transform(r.Transform.matrix())
		}
		rays = append(rays, ray)
	}
	return rays
}
