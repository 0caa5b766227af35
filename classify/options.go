// SPDX-License-Identifier: MIT

package classify

import "github.com/Dennsy/geotrellis/rgba"

// Defaults applied before any Option.
const (
	// DefaultBoundaryType matches samples at or below a break.
	DefaultBoundaryType = LessOrEqual
)

// DefaultNoDataColor and DefaultFallbackColor are fully transparent black.
var (
	DefaultNoDataColor   = rgba.Transparent
	DefaultFallbackColor = rgba.Transparent
)

// Option configures a classifier at construction. Later options win.
type Option func(*settings)

// WithBoundaryType fixes the boundary type recorded in the export.
func WithBoundaryType(bt BoundaryType) Option {
	return func(s *settings) { s.boundary = bt }
}

// WithNoDataColor sets the initial no-data color.
func WithNoDataColor(c rgba.Color) Option {
	return func(s *settings) { s.noData = c }
}

// WithFallbackColor sets the initial fallback color.
func WithFallbackColor(c rgba.Color) Option {
	return func(s *settings) { s.fallback = c }
}

// gatherSettings resolves defaults then applies opts in order. Nil options are skipped.
func gatherSettings(opts []Option) settings {
	s := settings{
		boundary: DefaultBoundaryType,
		noData:   DefaultNoDataColor,
		fallback: DefaultFallbackColor,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
