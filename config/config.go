// Package config loads sketch settings from TOML or YAML files.
//
// A configuration file mirrors the command line of cmd/sunburst:
//
//	# sketch.toml
//	sketch = "lorenz"
//	width = 900
//	height = 900
//	fps = 60
//	log_level = "debug"
//
//	[renderer]
//	kind = "terminal"
//	target = "lorenz"
//
// Missing keys keep their defaults; unknown keys are an error.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/sunburst"
)

var (
	// ErrUnknownFormat is returned for a file extension other than
	// .toml, .yaml or .yml.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Format is a configuration file syntax.
type Format string

// Supported formats.
const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf returns the format for a file name by extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Renderer selects the renderer kind and its target.
type Renderer struct {
	Kind   string `toml:"kind" yaml:"kind"`
	Target string `toml:"target" yaml:"target"`
}

// File is the decoded configuration.
type File struct {
	Sketch   string   `toml:"sketch" yaml:"sketch"`
	Width    int      `toml:"width" yaml:"width"`
	Height   int      `toml:"height" yaml:"height"`
	FPS      int      `toml:"fps" yaml:"fps"`
	Seed     uint64   `toml:"seed" yaml:"seed"`
	LogLevel string   `toml:"log_level" yaml:"log_level"`
	Renderer Renderer `toml:"renderer" yaml:"renderer"`
}

// Default returns the configuration used when no file is given.
func Default() File {
	return File{
		Sketch:   "lorenz",
		Width:    sunburst.DefaultWidth,
		Height:   sunburst.DefaultHeight,
		FPS:      sunburst.DefaultFPS,
		LogLevel: "info",
		Renderer: Renderer{Kind: "terminal"},
	}
}

// decoder is satisfied by both the TOML and the YAML decoders.
type decoder interface {
	Decode(v any) error
}

func newDecoder(r io.Reader, format Format) (decoder, error) {
	switch format {
	case TOML:
		return toml.NewDecoder(r).DisallowUnknownFields(), nil
	case YAML:
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

// Decode reads a configuration in the given format on top of Default.
// An empty document yields the defaults.
func Decode(r io.Reader, format Format) (File, error) {
	f := Default()
	d, err := newDecoder(r, format)
	if err != nil {
		return f, err
	}
	if err := d.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return f, fmt.Errorf("config: decode %s: %w", format, err)
	}
	return f, nil
}

// Load reads and validates the configuration file at path.
func Load(path string) (File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return File{}, err
	}
	fp, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	defer fp.Close()

	f, err := Decode(fp, format)
	if err != nil {
		return File{}, fmt.Errorf("%w (%s)", err, path)
	}
	if err := f.Validate(); err != nil {
		return File{}, fmt.Errorf("%w (%s)", err, path)
	}
	return f, nil
}

// Validate checks the values that cannot be represented by a Sketch.
func (f File) Validate() error {
	var errs []error
	if f.Width <= 0 || f.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", f.Width, f.Height))
	}
	if f.FPS < 0 {
		errs = append(errs, fmt.Errorf("fps %d must not be negative", f.FPS))
	}
	if f.Renderer.Kind == "" {
		errs = append(errs, errors.New("renderer kind is empty"))
	}
	if _, err := f.Level(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error", or an offset
// such as "info+2"). An empty level means info.
func (f File) Level() (slog.Level, error) {
	var l slog.Level
	if f.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(f.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

// Options converts the sketch settings to sketch options.
// The renderer is opened separately through the renderer registry.
func (f File) Options() []sunburst.Option {
	return []sunburst.Option{
		sunburst.WithSize(f.Width, f.Height),
		sunburst.WithFPS(f.FPS),
	}
}
