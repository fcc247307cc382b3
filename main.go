package main

import (
	"flag"
	"io"
	"log"
	"os"
)

// parseArgs loads the render job named by -config and applies the
// remaining flags over it. The rest of args selects the command.
func parseArgs(args []string, output io.Writer) (*renderConfig, []string, error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)
	var (
		configPath = fs.String("config", "", "render job YAML file")
		width      = fs.Int("width", 0, "image width in pixels")
		height     = fs.Int("height", 0, "image height in pixels")
		out        = fs.String("o", "", "output P3 image path")
	)
	fs.Usage = func() {
		io.WriteString(fs.Output(), "usage: raytracer [flags] [render | rays [out.pcd] | preview [in.ppm]]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg, err := loadConfigFile(*configPath)
	if err != nil {
		return nil, nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "o":
			cfg.Output = *out
		}
	})
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("raytracer: ")

	cfg, args, err := parseArgs(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := runCommand(cfg, args); err != nil {
		log.Fatal(err)
	}
}
