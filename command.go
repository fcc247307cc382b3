package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/seqsense/raytracer/cloud"
	"github.com/seqsense/raytracer/ppm"
	"github.com/seqsense/raytracer/preview"
)

var (
	errArgumentNumber = errors.New("invalid number of arguments")
	errInvalidCommand = errors.New("invalid command")
	errNoRay          = errors.New("no ray configured")
)

// Caption baseline, in pixels from the top left corner.
const captionX, captionY = 2, 10

var showImage = preview.Show

var commands = map[string]func(cfg *renderConfig, args []string) error{
	"render": func(cfg *renderConfig, args []string) error {
		if len(args) != 0 {
			return errArgumentNumber
		}
		img := ppm.RedGreenScan(cfg.Width, cfg.Height)
		if cfg.Caption != "" {
			ppm.Caption(img, captionX, captionY, cfg.Caption, cfg.captionColor())
		}
		if err := ppm.WriteFile(cfg.Output, img); err != nil {
			return err
		}
		log.Printf("wrote %dx%d image to %s", img.Width(), img.Height(), cfg.Output)
		return nil
	},
	"rays": func(cfg *renderConfig, args []string) error {
		out := cfg.CloudOutput
		switch len(args) {
		case 0:
		case 1:
			out = args[0]
		default:
			return errArgumentNumber
		}
		if len(cfg.Rays) == 0 {
			return errNoRay
		}
		pp, err := cloud.FromRays(cfg.rays(), cfg.Samples)
		if err != nil {
			return err
		}
		if err := cloud.WriteFile(out, pp); err != nil {
			return err
		}
		if min, max, err := cloud.Bounds(pp); err == nil {
			log.Printf("wrote %d points to %s, bounds %v - %v", pp.Points, out, min, max)
		}
		return nil
	},
	"preview": func(cfg *renderConfig, args []string) error {
		in := cfg.Output
		switch len(args) {
		case 0:
		case 1:
			in = args[0]
		default:
			return errArgumentNumber
		}
		img, err := ppm.ReadFile(in)
		if err != nil {
			return err
		}
		return showImage(img)
	},
}

// runCommand dispatches args[0], defaulting to render.
func runCommand(cfg *renderConfig, args []string) error {
	if len(args) == 0 {
		args = []string{"render"}
	}
	fn, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", errInvalidCommand, args[0])
	}
	return fn(cfg, args[1:])
}
