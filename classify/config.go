// SPDX-License-Identifier: MIT

package classify

import (
	"fmt"
	"math"
	"strings"

	"github.com/Dennsy/geotrellis/palette"
	"github.com/Dennsy/geotrellis/ramp"
)

// Classification modes accepted in palette.Config.Mode.
const (
	ModeStrict   = "strict"
	ModeBlending = "blending"
)

// FromConfig builds a classifier described by cfg.
//
// Breaks come from cfg.Breaks; when that is empty they are requested from h
// (cfg.Classes of them, or one per color). A strict config with explicit
// breaks needs exactly one color per distinct break. Every explicit break must
// be exactly representable as T. Blending classifiers are returned
// un-normalized, as BlendingFrom does.
//
// Errors:
//   - ErrUnknownMode, ErrUnknownBoundaryType, ErrNoBreaks, ErrLengthMismatch.
//   - ErrUnrepresentableBreak, ErrDuplicateBreak.
//   - palette errors from color resolution, wrapped.
func FromConfig[T Number](cfg palette.Config, h Histogram[T]) (Classifier[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("classify: config: %w", err)
	}
	colors, err := cfg.ResolveColors()
	if err != nil {
		return nil, fmt.Errorf("classify: config: %w", err)
	}
	bt, err := ParseBoundaryType(cfg.Boundary)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, cfg.Boundary)
	}
	noData, _ := cfg.NoDataColor()
	fallback, _ := cfg.FallbackColor()
	opts := []Option{WithBoundaryType(bt), WithNoDataColor(noData), WithFallbackColor(fallback)}

	breaks := make([]T, len(cfg.Breaks))
	for i, b := range cfg.Breaks {
		v, ok := convertBreak[T](b)
		if !ok {
			return nil, fmt.Errorf("%w: breaks[%d] = %v", ErrUnrepresentableBreak, i, b)
		}
		breaks[i] = v
	}

	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	switch mode {
	case ModeStrict:
		var s *Strict[T]
		switch {
		case len(breaks) > 0:
			if len(breaks) != len(colors) {
				return nil, fmt.Errorf("%w: %d breaks, %d colors", ErrLengthMismatch, len(breaks), len(colors))
			}
			s = StrictFrom(Zip(breaks, colors), opts...)
			if s.Len() != len(breaks) {
				return nil, fmt.Errorf("%w: %d breaks, %d distinct", ErrDuplicateBreak, len(breaks), s.Len())
			}
		case h != nil:
			if cfg.Classes > 0 {
				colors = ramp.Resample(colors, cfg.Classes)
			}
			s = StrictFromQuantiles(h, colors, opts...)
			if s.Len() == 0 {
				return nil, ErrNoBreaks
			}
		default:
			return nil, ErrNoBreaks
		}
		if cfg.Alpha != nil {
			s.SetAlphaPercent(*cfg.Alpha)
		}
		return s, nil

	case "", ModeBlending:
		if len(breaks) == 0 {
			if h == nil {
				return nil, ErrNoBreaks
			}
			n := cfg.Classes
			if n == 0 {
				n = len(colors)
			}
			breaks = h.QuantileBreaks(n)
			if len(breaks) == 0 {
				return nil, ErrNoBreaks
			}
		}
		bc := BlendingFrom(breaks, colors, opts...)
		if cfg.Alpha != nil {
			bc.SetAlphaPercent(*cfg.Alpha)
		}
		return bc, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}
}

// convertBreak converts a configured break to T. Integer types reject
// fractional and out-of-range values; float types reject values that
// overflow to infinity and NaN.
func convertBreak[T Number](b float64) (T, bool) {
	v := T(b)
	f := float64(v)
	half := 0.5
	if T(half) == 0 {
		return v, f == b
	}
	if math.IsNaN(b) || (math.IsInf(f, 0) && !math.IsInf(b, 0)) {
		return v, false
	}
	return v, true
}
