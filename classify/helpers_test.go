// SPDX-License-Identifier: MIT
package classify_test

import "github.com/Dennsy/geotrellis/classify"

// fixedHistogram returns its own prefix as quantile breaks.
type fixedHistogram[T classify.Number] []T

func (h fixedHistogram[T]) QuantileBreaks(n int) []T {
	if n > len(h) {
		n = len(h)
	}
	return append([]T(nil), h[:n]...)
}
