// SPDX-License-Identifier: MIT

// Package classify turns numeric breakpoints and a palette into the
// (breaks, colors, options) triple a color map uses to colorize raster cells.
//
// What:
//
//   - Strict[T]: exact break→color classification. Breaks are unique keys;
//     classifying an existing break overwrites its color. Export is sorted
//     by break, ascending.
//   - Blending[T]: independent, append-only break and color sequences. Breaks
//     are a count target, colors a resampling source; Normalize reconciles the
//     two lengths through package ramp. Export keeps insertion order.
//   - Builders: StrictFrom, StrictFromQuantiles (breaks from a Histogram),
//     BlendingFrom, and FromConfig (palette.Config, usually YAML).
//
// Why the asymmetry:
//
//	Strict exports sorted breaks because each break is a threshold.
//	Blending keeps breaks as supplied; they only fix how many colors
//	Normalize must produce.
//
// Options:
//
//   - WithBoundaryType (default LessOrEqual), WithNoDataColor and
//     WithFallbackColor (default rgba.Transparent). The boundary type is
//     metadata for the color map; this package never interprets it.
//
// Concurrency:
//
//   - Classifiers are mutable builders and are NOT safe for concurrent use.
//     Callers sharing an instance must hold exclusive access for every call,
//     reads included, since ToColorMap on Blending mutates.
//
// Errors:
//
//   - ErrUnknownBoundaryType, ErrUnknownMode, ErrNoBreaks, ErrLengthMismatch,
//     ErrUnrepresentableBreak, ErrDuplicateBreak from configuration parsing. Classifier methods never return errors;
//     violated preconditions (nil histogram, empty palette during expansion)
//     panic.
//
// Complexity:
//
//   - Strict: Classify O(1), Breaks/Colors/ToColorMap O(n log n).
//   - Blending: AddBreaks/AddColors amortized O(k), Normalize O(n).
package classify
