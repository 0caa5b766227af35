// SPDX-License-Identifier: MIT

package ramp

import (
	"github.com/Dennsy/geotrellis/rgba"
)

// Stable panic messages for violated preconditions.
const (
	panicEmptyColors = "ramp: color sequence must be non-empty"
	panicBadCount    = "ramp: output count must be positive"
	panicZeroDenom   = "ramp: blend denominator must be non-zero"
)

// Blend returns start + (end-start)*num/denom using truncating integer division.
// Panics if denom is zero.
// Complexity: O(1).
func Blend(start, end, num, denom int) int {
	if denom == 0 {
		panic(panicZeroDenom)
	}
	return start + (end-start)*num/denom
}

// GradientChannel returns n values stepping from start to end:
// value i is Blend(start, end, i, n-1). For n == 1 the single value is start.
// Panics if n <= 0.
func GradientChannel(start, end, n int) []int {
	mustCount(n)
	out := make([]int, n)
	if n < 2 {
		out[0] = start
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = Blend(start, end, i, n-1)
	}
	return out
}

// Gradient returns n colors between from and to, interpolating every channel
// independently with GradientChannel. Both endpoints are reproduced exactly
// when n >= 2.
//
// Example:
//
//	Gradient(rgba.New(0, 0, 0, 0), rgba.New(255, 255, 255, 255), 5)
//	// every channel: 0, 63, 127, 191, 255
func Gradient(from, to rgba.Color, n int) []rgba.Color {
	mustCount(n)
	var chans [4][]int
	for k, ch := range rgba.Channels {
		chans[k] = GradientChannel(int(from.Channel(ch)), int(to.Channel(ch)), n)
	}
	return assemble(chans, n)
}

// Spread selects n representative colors from a longer sequence.
// Output 0 is colors[0]; output i is colors[round(i*(m-1)/(n-1))] with halves
// rounded up, so the last output is colors[m-1]. For n == 1 the result is
// just colors[0].
//
// Spread is meant for n <= m; larger n repeats colors rather than blending.
// Panics if colors is empty or n <= 0.
// Complexity: O(n).
func Spread(colors []rgba.Color, n int) []rgba.Color {
	mustColors(colors)
	mustCount(n)
	out := make([]rgba.Color, n)
	out[0] = colors[0]
	if n == 1 {
		return out
	}
	m := len(colors)
	denom := n - 1
	for i := 1; i < n; i++ {
		// round(i*(m-1)/denom) for non-negative operands, half up.
		idx := (2*i*(m-1) + denom) / (2 * denom)
		out[i] = colors[idx]
	}
	return out
}

// ChooseColors expands colors to n entries by per-channel linear interpolation.
//
// Algorithm (per channel, mult = m-1, denom = n-1):
//  1. If n < 2, the result is the first color alone.
//  2. For i in [0,n): j = i*mult/denom.
//  3. If j < mult, out[i] = Blend(c[j], c[j+1], (i*mult) mod denom, denom).
//  4. Otherwise out[i] = c[mult].
//
// The first and last outputs equal the first and last inputs exactly.
// Panics if colors is empty or n <= 0.
// Complexity: O(n).
func ChooseColors(colors []rgba.Color, n int) []rgba.Color {
	mustColors(colors)
	mustCount(n)
	var chans [4][]int
	for k, ch := range rgba.Channels {
		chans[k] = expandChannel(channelValues(colors, ch), n)
	}
	return assemble(chans, n)
}

// expandChannel is the single-channel body of ChooseColors.
func expandChannel(values []int, n int) []int {
	out := make([]int, n)
	if n < 2 {
		out[0] = values[0]
		return out
	}
	mult := len(values) - 1
	denom := n - 1
	for i := 0; i < n; i++ {
		j := i * mult / denom
		if j < mult {
			out[i] = Blend(values[j], values[j+1], (i*mult)%denom, denom)
		} else {
			out[i] = values[mult]
		}
	}
	return out
}

// Resample reconciles len(colors) with n:
//   - m == n: colors is returned as-is (same backing array).
//   - m > n:  Spread(colors, n).
//   - m < n:  ChooseColors(colors, n).
//
// n == 0 yields an empty slice without touching colors. Panics if n < 0, or
// if colors is empty while n > 0.
func Resample(colors []rgba.Color, n int) []rgba.Color {
	m := len(colors)
	switch {
	case n < 0:
		panic(panicBadCount)
	case m == n:
		return colors
	case n == 0:
		return []rgba.Color{}
	case m > n:
		return Spread(colors, n)
	default:
		return ChooseColors(colors, n)
	}
}

// AlphaGradient recomputes the alpha channel of every color as a gradient from
// start to stop across len(colors) entries. Red, green and blue are kept.
// An empty input yields an empty result.
func AlphaGradient(colors []rgba.Color, start, stop int) []rgba.Color {
	out := make([]rgba.Color, len(colors))
	if len(colors) == 0 {
		return out
	}
	alphas := GradientChannel(start, stop, len(colors))
	for i, c := range colors {
		out[i] = c.WithAlpha(alphas[i])
	}
	return out
}

// SetAlpha overwrites the alpha channel of every color with a (clamped to [0,255]).
func SetAlpha(colors []rgba.Color, a int) []rgba.Color {
	out := make([]rgba.Color, len(colors))
	for i, c := range colors {
		out[i] = c.WithAlpha(a)
	}
	return out
}

// SetAlphaPercent is SetAlpha with a fraction p in [0,1]; the alpha becomes
// int(p*255), truncated and clamped.
func SetAlphaPercent(colors []rgba.Color, p float64) []rgba.Color {
	return SetAlpha(colors, PercentToAlpha(p))
}

// PercentToAlpha scales a fraction in [0,1] to an 8-bit alpha, truncating.
func PercentToAlpha(p float64) int {
	return int(rgba.Clamp(int(p * 255)))
}

func channelValues(colors []rgba.Color, ch rgba.Channel) []int {
	out := make([]int, len(colors))
	for i, c := range colors {
		out[i] = int(c.Channel(ch))
	}
	return out
}

func assemble(chans [4][]int, n int) []rgba.Color {
	out := make([]rgba.Color, n)
	for i := range out {
		out[i] = rgba.New(chans[0][i], chans[1][i], chans[2][i], chans[3][i])
	}
	return out
}

func mustColors(colors []rgba.Color) {
	if len(colors) == 0 {
		panic(panicEmptyColors)
	}
}

func mustCount(n int) {
	if n <= 0 {
		panic(panicBadCount)
	}
}
