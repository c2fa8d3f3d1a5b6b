// Command geomdemo exercises the geom library from the command line.
//
// Usage:
//
//	geomdemo [flags] [flatten|sweep|glyph|camera|init]
//
// flatten prints segment counts and length errors for every scene curve at
// every tolerance. sweep repeats that work on a worker pool and checks that
// tighter tolerances never produce fewer points. glyph renders -text with Go
// Regular into a PNG. camera prints the scene camera matrices and projects
// the curves to the screen. init writes the built-in scene as YAML.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/internal/scene"
)

type options struct {
	output  string
	text    string
	size    float64
	n       int
	workers int
}

func main() {
	var (
		configPath = flag.String("config", "", "scene YAML file (built-in scene when empty)")
		output     = flag.String("output", "", "output file for glyph (glyph.png) and init (scene.yaml)")
		text       = flag.String("text", "Geom", "text rendered by glyph")
		size       = flag.Float64("size", 96, "glyph size in pixels per em")
		n          = flag.Int("n", 200, "sweep iterations")
		workers    = flag.Int("workers", 0, "sweep workers (GOMAXPROCS when 0)")
		prof       = flag.Bool("prof", false, "write a CPU profile to the current directory")
		verbose    = flag.Bool("v", false, "log debug records from the geometry packages")
	)
	flag.Parse()

	if *verbose {
		geom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "flatten"
	}
	opts := options{output: *output, text: *text, size: *size, n: *n, workers: *workers}

	var stop func()
	if *prof {
		stop = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop
	}
	err := run(cmd, *configPath, opts)
	if stop != nil {
		stop()
	}
	if err != nil {
		log.Fatalf("geomdemo %s: %v", cmd, err)
	}
}

func run(cmd, configPath string, opts options) error {
	if cmd == "init" {
		path := opts.output
		if path == "" {
			path = "scene.yaml"
		}
		if err := scene.Default().Write(path); err != nil {
			return err
		}
		log.Printf("Scene written to %s", path)
		return nil
	}

	s := scene.Default()
	if configPath != "" {
		var err error
		if s, err = scene.Load(configPath); err != nil {
			return err
		}
	}
	p := message.NewPrinter(language.English)

	switch cmd {
	case "flatten":
		return runFlatten(p, s)
	case "sweep":
		return runSweep(p, s, opts)
	case "glyph":
		return runGlyph(p, s, opts)
	case "camera":
		return runCamera(p, s)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}
