// Command sunburst runs the bundled demo sketches.
//
// Usage:
//
//	sunburst [flags]
//
// Examples:
//
//	# Lorenz attractor in the terminal
//	sunburst -sketch lorenz
//
//	# Stream frames to ffplay
//	sunburst -sketch rects -renderer ppm | ffplay -f image2pipe -c:v ppm -
//
//	# Save 120 numbered PNG files
//	sunburst -sketch lissajous -renderer imageseq -target out/f-%04d.png -frames 120
//
// Settings can also come from a TOML or YAML file given with -config;
// flags that are set explicitly override the file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gogpu/sunburst"
	"github.com/gogpu/sunburst/config"
	"github.com/gogpu/sunburst/renderer"
	_ "github.com/gogpu/sunburst/renderer/imageseq"
	"github.com/gogpu/sunburst/renderer/ppm"
	_ "github.com/gogpu/sunburst/renderer/terminal"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "sunburst: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sunburst", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "TOML or YAML configuration file")
		sketchName = fs.String("sketch", "", "demo sketch: "+strings.Join(demoNames(), ", "))
		kind       = fs.String("renderer", "", "renderer kind: "+strings.Join(renderer.Available(), ", "))
		target     = fs.String("target", "", "renderer target (file, pattern or window title)")
		width      = fs.Int("width", 0, "canvas width")
		height     = fs.Int("height", 0, "canvas height")
		fps        = fs.Int("fps", 0, "target frame rate, 0 for unpaced")
		seed       = fs.Uint64("seed", 0, "random seed, 0 for a time-based seed")
		logLevel   = fs.String("log-level", "", "debug, info, warn or error")
		frames     = fs.Int("frames", 0, "stop after this many frames, 0 to run until quit")
		list       = fs.Bool("list", false, "list sketches and renderers, then exit")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		fmt.Fprintf(stdout, "sketches:  %s\n", strings.Join(demoNames(), " "))
		fmt.Fprintf(stdout, "renderers: %s\n", strings.Join(renderer.Available(), " "))
		return nil
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	// Explicit flags win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sketch":
			cfg.Sketch = *sketchName
		case "renderer":
			cfg.Renderer.Kind = *kind
		case "target":
			cfg.Renderer.Target = *target
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "fps":
			cfg.FPS = *fps
		case "seed":
			cfg.Seed = *seed
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	sunburst.SetLogger(log)

	d, ok := demos[cfg.Sketch]
	if !ok {
		return fmt.Errorf("unknown sketch %q (available: %s)", cfg.Sketch, strings.Join(demoNames(), ", "))
	}

	rendererTarget := cfg.Renderer.Target
	if rendererTarget == "" && cfg.Renderer.Kind == "terminal" {
		rendererTarget = d.title
	}
	r, err := openRenderer(cfg.Renderer.Kind, rendererTarget, cfg.Width, cfg.Height, stdout)
	if err != nil {
		return err
	}
	if *frames > 0 {
		r = &frameLimit{Renderer: r, left: *frames}
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	log.Info("starting", "sketch", cfg.Sketch, "renderer", cfg.Renderer.Kind, "seed", cfg.Seed)

	sk, err := d.build(cfg.Seed, append(cfg.Options(), sunburst.WithRenderer(r)))
	if err != nil {
		if c, ok := r.(io.Closer); ok {
			_ = c.Close()
		}
		return err
	}
	return sk.Run()
}

// openRenderer opens a registered renderer. A PPM stream aimed at standard
// output goes to stdout instead, so callers of run control where it lands.
func openRenderer(kind, target string, width, height int, stdout io.Writer) (sunburst.Renderer, error) {
	if kind == ppm.Kind && ppm.IsStdout(target) {
		return ppm.New(stdout), nil
	}
	return renderer.Open(kind, target, width, height)
}

// frameLimit stops the sketch after a fixed number of frames.
type frameLimit struct {
	sunburst.Renderer
	left int
}

func (f *frameLimit) Present(c *sunburst.Canvas) (bool, error) {
	if f.left <= 0 {
		return false, nil
	}
	f.left--
	return f.Renderer.Present(c)
}

func (f *frameLimit) Close() error {
	if c, ok := f.Renderer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
