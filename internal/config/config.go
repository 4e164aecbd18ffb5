// Package config holds the user-facing options that drive snapping and export.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultOutputWidth = 10.0
	DefaultLineWidth   = 0.8
)

// Options are the recognized settings. They are read on every operation,
// so callers may change them between clicks.
type Options struct {
	SnapToGrid  bool    `toml:"snap_to_grid" yaml:"snapToGrid"`
	ShowPoints  bool    `toml:"show_points" yaml:"showPoints"`
	ShowLabels  bool    `toml:"show_labels" yaml:"showLabels"`
	OutputWidth float64 `toml:"output_width" yaml:"outputWidth"`
	LineWidth   float64 `toml:"line_width" yaml:"lineWidth"`
}

// Default returns the default options
func Default() Options {
	return Options{
		OutputWidth: DefaultOutputWidth,
		LineWidth:   DefaultLineWidth,
	}
}

// Validate checks that the numeric options are usable
func (o Options) Validate() error {
	var errs []error
	if !(o.OutputWidth > 0) {
		errs = append(errs, fmt.Errorf("output width must be positive, got %v", o.OutputWidth))
	}
	if !(o.LineWidth > 0) {
		errs = append(errs, fmt.Errorf("line width must be positive, got %v", o.LineWidth))
	}
	return errors.Join(errs...)
}

// Source supplies the current options
type Source interface {
	Options() Options
}

// Static is a Source that always returns the same options
type Static Options

// Options implements Source
func (s Static) Options() Options {
	return Options(s)
}

// Load reads options from a TOML (.toml) or YAML (.yaml, .yml) file.
// Keys missing from the file keep their defaults.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &opts); err != nil {
			return opts, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return opts, fmt.Errorf("unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return opts, nil
}
