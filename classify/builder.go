// SPDX-License-Identifier: MIT

package classify

import "github.com/Dennsy/geotrellis/rgba"

// StrictFrom builds a Strict classifier from explicit pairs, applied in order.
func StrictFrom[T Number](pairs []Classification[T], opts ...Option) *Strict[T] {
	return NewStrict[T](opts...).AddClassifications(pairs...)
}

// StrictFromQuantiles asks h for len(palette) quantile breaks and pairs them
// positionally with palette. If h returns fewer breaks, the trailing palette
// colors are dropped silently; extra breaks are ignored the same way.
//
// Panics if h is nil.
//
// Example:
//
//	s := StrictFromQuantiles[float64](hist, palette.MustNamed("BlueToRed"))
//	export := s.ToColorMap(hist)
func StrictFromQuantiles[T Number](h Histogram[T], palette []rgba.Color, opts ...Option) *Strict[T] {
	if h == nil {
		panic(panicNilHistogram)
	}
	breaks := h.QuantileBreaks(len(palette))
	return StrictFrom(Zip(breaks, palette), opts...)
}

// BlendingFrom builds a Blending classifier from parallel sequences without
// normalizing; ToColorMap or an explicit Normalize does that later.
func BlendingFrom[T Number](breaks []T, colors []rgba.Color, opts ...Option) *Blending[T] {
	return NewBlending[T](opts...).AddBreaks(breaks...).AddColors(colors...)
}

// Zip pairs breaks[i] with colors[i], truncating to the shorter input.
func Zip[T Number](breaks []T, colors []rgba.Color) []Classification[T] {
	n := min(len(breaks), len(colors))
	out := make([]Classification[T], n)
	for i := 0; i < n; i++ {
		out[i] = Classification[T]{Break: breaks[i], Color: colors[i]}
	}
	return out
}
