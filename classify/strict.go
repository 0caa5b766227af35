// SPDX-License-Identifier: MIT

package classify

import (
	"slices"

	"github.com/Dennsy/geotrellis/ramp"
	"github.com/Dennsy/geotrellis/rgba"
)

// Strict is an exact break→color classification backed by a map.
// Breaks are unique: classifying an existing break replaces its color.
// Insertion order is irrelevant; Breaks, Colors and ToColorMap always
// report breaks in ascending order.
//
// A Strict is not safe for concurrent use.
type Strict[T Number] struct {
	settings
	classes map[T]rgba.Color
}

// NewStrict returns an empty strict classifier.
func NewStrict[T Number](opts ...Option) *Strict[T] {
	return &Strict[T]{
		settings: gatherSettings(opts),
		classes:  make(map[T]rgba.Color),
	}
}

// Classify inserts or overwrites the color for b.
// Complexity: O(1) amortized.
func (s *Strict[T]) Classify(b T, c rgba.Color) *Strict[T] {
	s.classes[b] = c
	return s
}

// AddClassifications applies Classify to each pair in order, so a later
// duplicate break wins.
func (s *Strict[T]) AddClassifications(pairs ...Classification[T]) *Strict[T] {
	for _, p := range pairs {
		s.Classify(p.Break, p.Color)
	}
	return s
}

// Lookup returns the color classified exactly against b.
func (s *Strict[T]) Lookup(b T) (rgba.Color, bool) {
	c, ok := s.classes[b]
	return c, ok
}

// Breaks returns the breaks in ascending order.
// Complexity: O(n log n).
func (s *Strict[T]) Breaks() []T {
	var keys []T
	for k := range s.classes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Colors returns the colors in ascending break order, index-aligned with Breaks.
func (s *Strict[T]) Colors() []rgba.Color {
	breaks := s.Breaks()
	out := make([]rgba.Color, len(breaks))
	for i, b := range breaks {
		out[i] = s.classes[b]
	}
	return out
}

// Classifications returns the pairs in ascending break order.
func (s *Strict[T]) Classifications() []Classification[T] {
	breaks := s.Breaks()
	out := make([]Classification[T], len(breaks))
	for i, b := range breaks {
		out[i] = Classification[T]{Break: b, Color: s.classes[b]}
	}
	return out
}

// Len returns the number of distinct breaks.
func (s *Strict[T]) Len() int { return len(s.classes) }

// SetNoDataColor replaces the no-data color.
func (s *Strict[T]) SetNoDataColor(c rgba.Color) *Strict[T] {
	s.noData = c
	return s
}

// SetFallbackColor replaces the fallback color.
func (s *Strict[T]) SetFallbackColor(c rgba.Color) *Strict[T] {
	s.fallback = c
	return s
}

// MapBreaks replaces every break b with f(b), keeping its color.
// Old breaks are re-keyed in ascending order, so when f maps two breaks to
// the same value the color of the larger original break is kept.
func (s *Strict[T]) MapBreaks(f func(T) T) *Strict[T] {
	next := make(map[T]rgba.Color, len(s.classes))
	for _, b := range s.Breaks() {
		next[f(b)] = s.classes[b]
	}
	s.classes = next
	return s
}

// MapColors replaces every color c with f(c), keeping its break.
func (s *Strict[T]) MapColors(f func(rgba.Color) rgba.Color) *Strict[T] {
	for b, c := range s.classes {
		s.classes[b] = f(c)
	}
	return s
}

// SetAlpha overwrites every alpha channel with a, clamped to [0,255].
func (s *Strict[T]) SetAlpha(a int) *Strict[T] {
	return s.MapColors(func(c rgba.Color) rgba.Color { return c.WithAlpha(a) })
}

// SetAlphaPercent overwrites every alpha channel with p in [0,1] scaled to 0–255.
func (s *Strict[T]) SetAlphaPercent(p float64) *Strict[T] {
	return s.SetAlpha(ramp.PercentToAlpha(p))
}

// AlphaGradient ramps alpha from start at the lowest break to stop at the
// highest, leaving red, green and blue untouched.
func (s *Strict[T]) AlphaGradient(start, stop int) *Strict[T] {
	breaks := s.Breaks()
	colors := ramp.AlphaGradient(s.Colors(), start, stop)
	for i, b := range breaks {
		s.classes[b] = colors[i]
	}
	return s
}

// ToColorMap exports the sorted classification. h, which may be nil, is
// passed through for the color map's per-bucket cache.
func (s *Strict[T]) ToColorMap(h Histogram[T]) Export[T] {
	return Export[T]{
		Breaks:    s.Breaks(),
		Colors:    pack(s.Colors()),
		Options:   s.options(),
		Histogram: h,
	}
}
