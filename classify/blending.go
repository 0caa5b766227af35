// SPDX-License-Identifier: MIT

package classify

import (
	"slices"

	"github.com/Dennsy/geotrellis/ramp"
	"github.com/Dennsy/geotrellis/rgba"
)

// Blending keeps two independent, append-only sequences: breaks and colors.
// Neither is sorted nor de-duplicated, and their lengths may differ until
// Normalize resamples the colors to one per break.
//
// A Blending is not safe for concurrent use.
type Blending[T Number] struct {
	settings
	breaks []T
	colors []rgba.Color
}

// NewBlending returns an empty blending classifier.
func NewBlending[T Number](opts ...Option) *Blending[T] {
	return &Blending[T]{settings: gatherSettings(opts)}
}

// AddBreaks appends breaks verbatim.
func (bc *Blending[T]) AddBreaks(breaks ...T) *Blending[T] {
	bc.breaks = append(bc.breaks, breaks...)
	return bc
}

// AddColors appends colors verbatim.
func (bc *Blending[T]) AddColors(colors ...rgba.Color) *Blending[T] {
	bc.colors = append(bc.colors, colors...)
	return bc
}

// Breaks returns a copy of the breaks in insertion order.
func (bc *Blending[T]) Breaks() []T { return slices.Clone(bc.breaks) }

// Colors returns a copy of the colors in insertion order. Before Normalize
// its length may differ from Len.
func (bc *Blending[T]) Colors() []rgba.Color { return slices.Clone(bc.colors) }

// Len returns the break count, whatever the current color count.
func (bc *Blending[T]) Len() int { return len(bc.breaks) }

// ColorCount returns the current color count.
func (bc *Blending[T]) ColorCount() int { return len(bc.colors) }

// IsNormalized reports whether there is exactly one color per break.
func (bc *Blending[T]) IsNormalized() bool { return len(bc.breaks) == len(bc.colors) }

// SetNoDataColor replaces the no-data color.
func (bc *Blending[T]) SetNoDataColor(c rgba.Color) *Blending[T] {
	bc.noData = c
	return bc
}

// SetFallbackColor replaces the fallback color.
func (bc *Blending[T]) SetFallbackColor(c rgba.Color) *Blending[T] {
	bc.fallback = c
	return bc
}

// MapBreaks replaces every break b with f(b) in place; order and color
// correspondence are unchanged.
func (bc *Blending[T]) MapBreaks(f func(T) T) *Blending[T] {
	for i, b := range bc.breaks {
		bc.breaks[i] = f(b)
	}
	return bc
}

// MapColors replaces every color c with f(c) in place.
func (bc *Blending[T]) MapColors(f func(rgba.Color) rgba.Color) *Blending[T] {
	for i, c := range bc.colors {
		bc.colors[i] = f(c)
	}
	return bc
}

// SetAlpha overwrites every alpha channel with a, clamped to [0,255].
func (bc *Blending[T]) SetAlpha(a int) *Blending[T] {
	bc.colors = ramp.SetAlpha(bc.colors, a)
	return bc
}

// SetAlphaPercent overwrites every alpha channel with p in [0,1] scaled to 0–255.
func (bc *Blending[T]) SetAlphaPercent(p float64) *Blending[T] {
	bc.colors = ramp.SetAlphaPercent(bc.colors, p)
	return bc
}

// AlphaGradient ramps alpha from start to stop across the current colors.
// Call Normalize first if the gradient should span the final color count.
func (bc *Blending[T]) AlphaGradient(start, stop int) *Blending[T] {
	bc.colors = ramp.AlphaGradient(bc.colors, start, stop)
	return bc
}

// Normalize resamples the colors to the break count: Spread when there are
// more colors than breaks, ChooseColors when there are fewer, nothing when
// equal. It is idempotent.
//
// Panics when there are breaks but no colors.
// Complexity: O(n).
func (bc *Blending[T]) Normalize() *Blending[T] {
	bc.colors = ramp.Resample(bc.colors, len(bc.breaks))
	return bc
}

// ToColorMap normalizes, then exports breaks in insertion order with one
// packed color each. h, which may be nil, is passed through.
func (bc *Blending[T]) ToColorMap(h Histogram[T]) Export[T] {
	bc.Normalize()
	return Export[T]{
		Breaks:    bc.Breaks(),
		Colors:    pack(bc.colors),
		Options:   bc.options(),
		Histogram: h,
	}
}
