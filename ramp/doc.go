// SPDX-License-Identifier: MIT

// Package ramp resamples color sequences to a different length.
//
// What:
//
//   - Spread subsamples m colors down to n < m, keeping both endpoints.
//   - ChooseColors expands m colors up to n > m by per-channel linear
//     interpolation between neighbouring colors.
//   - Gradient builds n colors between two endpoints.
//   - AlphaGradient, SetAlpha and SetAlphaPercent rewrite only the alpha channel.
//   - Resample picks Spread, ChooseColors or the identity by comparing lengths.
//
// Arithmetic:
//
//	Blend(start, end, num, denom) = start + (end-start)*num/denom
//
// The division truncates toward zero (Go integer division), not toward
// negative infinity. For descending channels this rounds toward the end
// value, e.g. Blend(255, 0, 1, 4) = 255 + (-255/4) = 255 - 63 = 192.
// Banding at class boundaries depends on this; do not replace it with floor.
//
// Preconditions:
//
//   - Functions that resample require a non-empty input and n > 0. Violations
//     are programmer errors and panic with a stable "ramp: ..." message.
//
// Inputs are never modified; every function returns a fresh slice.
//
// Complexity:
//
//   - All functions are O(n) time and O(n) memory for n outputs.
package ramp
