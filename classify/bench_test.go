// SPDX-License-Identifier: MIT
package classify_test

import (
	"testing"

	"github.com/Dennsy/geotrellis/classify"
	"github.com/Dennsy/geotrellis/palette"
)

// BenchmarkBlendingToColorMap measures expansion of a 9-color ramp to 1024 classes.
func BenchmarkBlendingToColorMap(b *testing.B) {
	breaks := make([]float64, 1024)
	for i := range breaks {
		breaks[i] = float64(i) / 4
	}
	colors := palette.MustNamed("BlueToRed")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bc := classify.BlendingFrom(breaks, colors)
		_ = bc.ToColorMap(nil)
	}
}

// BenchmarkStrictToColorMap measures the sorted export of 1024 classes.
func BenchmarkStrictToColorMap(b *testing.B) {
	colors := palette.MustNamed("Viridis")
	s := classify.NewStrict[int]()
	for i := 0; i < 1024; i++ {
		s.Classify(1024-i, colors[i%len(colors)])
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.ToColorMap(nil)
	}
}
