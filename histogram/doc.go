// SPDX-License-Identifier: MIT

// Package histogram collects raster samples and derives quantile breaks from
// them for classify.StrictFromQuantiles and classify.FromConfig.
//
// Sample[T] keeps every value in a go-moremath stats.Sample and answers
// quantile queries with its R8 interpolation. Integer sample types have their
// quantiles rounded to the nearest integer.
//
// Complexity:
//
//   - Add: amortized O(k). The first query after an Add sorts: O(n log n).
//   - Quantile: O(log n) on a sorted sample. QuantileBreaks(k): O(k log n).
package histogram
