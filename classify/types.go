// SPDX-License-Identifier: MIT

package classify

import (
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/Dennsy/geotrellis/rgba"
)

// Number is any integer or floating-point sample type.
// NaN breaks are not supported: they neither sort nor key a map consistently.
type Number interface {
	constraints.Integer | constraints.Float
}

// BoundaryType describes how a sample compares against a break when the
// color map resolves it. It is carried through to the export untouched.
type BoundaryType int

const (
	// GreaterThan matches samples strictly above the break.
	GreaterThan BoundaryType = iota
	// GreaterOrEqual matches samples at or above the break.
	GreaterOrEqual
	// LessThan matches samples strictly below the break.
	LessThan
	// LessOrEqual matches samples at or below the break.
	LessOrEqual
	// Exact matches samples equal to the break.
	Exact
)

var boundaryNames = map[BoundaryType]string{
	GreaterThan:    "greaterThan",
	GreaterOrEqual: "greaterOrEqual",
	LessThan:       "lessThan",
	LessOrEqual:    "lessOrEqual",
	Exact:          "exact",
}

// String returns the camel-case name used in configuration files.
func (bt BoundaryType) String() string {
	if s, ok := boundaryNames[bt]; ok {
		return s
	}
	return "unknown"
}

// ParseBoundaryType accepts the String form case-insensitively, plus the
// operator spellings ">", ">=", "<", "<=", "=" and "==".
// The empty string yields DefaultBoundaryType.
func ParseBoundaryType(s string) (BoundaryType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "":
		return DefaultBoundaryType, nil
	case ">":
		return GreaterThan, nil
	case ">=":
		return GreaterOrEqual, nil
	case "<":
		return LessThan, nil
	case "<=":
		return LessOrEqual, nil
	case "=", "==":
		return Exact, nil
	}
	for bt, name := range boundaryNames {
		if strings.ToLower(name) == key {
			return bt, nil
		}
	}
	return 0, ErrUnknownBoundaryType
}

// Classification is a single break→color association.
type Classification[T Number] struct {
	Break T
	Color rgba.Color
}

// Histogram supplies quantile breakpoints. QuantileBreaks(n) returns at most
// n breaks in ascending order.
type Histogram[T Number] interface {
	QuantileBreaks(n int) []T
}

// Options is the metadata half of an Export.
type Options struct {
	BoundaryType  BoundaryType
	NoDataColor   uint32 // packed 0xRRGGBBAA
	FallbackColor uint32 // packed 0xRRGGBBAA
	// Strict is always false; nothing sets it today.
	Strict bool
}

// Export is the immutable (breaks, colors, options) triple handed to a color map.
// Colors[i] is the packed color for Breaks[i].
type Export[T Number] struct {
	Breaks  []T
	Colors  []uint32
	Options Options
	// Histogram is passed through from ToColorMap so the color map can cache
	// per-bucket colors. Nil when none was supplied.
	Histogram Histogram[T]
}

// Len returns the number of classes.
func (e Export[T]) Len() int { return len(e.Breaks) }

// RGBA unpacks Colors.
func (e Export[T]) RGBA() []rgba.Color {
	out := make([]rgba.Color, len(e.Colors))
	for i, v := range e.Colors {
		out[i] = rgba.FromUint32(v)
	}
	return out
}

// Classifier is the read and export surface shared by Strict and Blending.
// Fluent mutators live on the concrete types so chains keep their type.
type Classifier[T Number] interface {
	BoundaryType() BoundaryType
	Breaks() []T
	Colors() []rgba.Color
	// Len reports the break count.
	Len() int
	NoDataColor() rgba.Color
	FallbackColor() rgba.Color
	ToColorMap(h Histogram[T]) Export[T]
}

var (
	_ Classifier[int]     = (*Strict[int])(nil)
	_ Classifier[float64] = (*Blending[float64])(nil)
)

// settings is the state common to every classifier.
type settings struct {
	boundary BoundaryType
	noData   rgba.Color
	fallback rgba.Color
}

// BoundaryType returns the boundary fixed at construction.
func (s *settings) BoundaryType() BoundaryType { return s.boundary }

// NoDataColor returns the color for cells without data.
func (s *settings) NoDataColor() rgba.Color { return s.noData }

// FallbackColor returns the color for samples no class matches.
func (s *settings) FallbackColor() rgba.Color { return s.fallback }

func (s *settings) options() Options {
	return Options{
		BoundaryType:  s.boundary,
		NoDataColor:   s.noData.Uint32(),
		FallbackColor: s.fallback.Uint32(),
		Strict:        false,
	}
}

func pack(colors []rgba.Color) []uint32 {
	out := make([]uint32, len(colors))
	for i, c := range colors {
		out[i] = c.Uint32()
	}
	return out
}
