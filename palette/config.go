// SPDX-License-Identifier: MIT

package palette

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Dennsy/geotrellis/ramp"
	"github.com/Dennsy/geotrellis/rgba"
)

// Config describes a classification declaratively. Zero values mean
// "use the default" everywhere.
type Config struct {
	// Mode is "strict" or "blending" (default).
	Mode string `yaml:"mode"`
	// Boundary is a boundary type name, e.g. "lessOrEqual" or "<=".
	Boundary string `yaml:"boundary"`
	// NoData and Fallback are hex colors or SVG color keywords.
	NoData   string `yaml:"noData"`
	Fallback string `yaml:"fallback"`
	// Palette names a built-in ramp. Colors are appended after it.
	Palette string   `yaml:"palette"`
	Colors  []string `yaml:"colors"`
	// Steps, when positive, resamples the resolved colors to this length.
	Steps int `yaml:"steps"`
	// Breaks are explicit class breaks. When empty, breaks come from a histogram.
	Breaks []float64 `yaml:"breaks"`
	// Classes is the number of quantile breaks to request from a histogram;
	// zero means one per color.
	Classes int `yaml:"classes"`
	// Alpha, when set, overrides every class alpha with a fraction in [0,1].
	Alpha *float64 `yaml:"alpha"`
}

// LoadConfig decodes a YAML config from r. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("palette: decode config: %w", ErrEmptyPalette)
		}
		return cfg, fmt.Errorf("palette: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfigFile opens path and decodes it with LoadConfig.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("palette: open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate checks numeric ranges and that the colors resolve.
func (c Config) Validate() error {
	if c.Steps < 0 {
		return fmt.Errorf("%w: steps %d < 0", ErrInvalidConfig, c.Steps)
	}
	if c.Classes < 0 {
		return fmt.Errorf("%w: classes %d < 0", ErrInvalidConfig, c.Classes)
	}
	if c.Alpha != nil && (*c.Alpha < 0 || *c.Alpha > 1) {
		return fmt.Errorf("%w: alpha %v outside [0,1]", ErrInvalidConfig, *c.Alpha)
	}
	if _, err := c.NoDataColor(); err != nil {
		return err
	}
	if _, err := c.FallbackColor(); err != nil {
		return err
	}
	_, err := c.ResolveColors()
	return err
}

// ResolveColors expands Palette and Colors into a color sequence, resampled
// to Steps when Steps is positive.
func (c Config) ResolveColors() ([]rgba.Color, error) {
	var out []rgba.Color
	if c.Palette != "" {
		named, err := Named(c.Palette)
		if err != nil {
			return nil, err
		}
		out = append(out, named...)
	}
	for _, s := range c.Colors {
		col, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, col)
	}
	if len(out) == 0 {
		return nil, ErrEmptyPalette
	}
	if c.Steps > 0 {
		out = ramp.Resample(out, c.Steps)
	}
	return out, nil
}

// NoDataColor parses NoData, defaulting to rgba.Transparent.
func (c Config) NoDataColor() (rgba.Color, error) {
	return optionalColor(c.NoData)
}

// FallbackColor parses Fallback, defaulting to rgba.Transparent.
func (c Config) FallbackColor() (rgba.Color, error) {
	return optionalColor(c.Fallback)
}

func optionalColor(s string) (rgba.Color, error) {
	if s == "" {
		return rgba.Transparent, nil
	}
	return ParseColor(s)
}
