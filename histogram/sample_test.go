// SPDX-License-Identifier: MIT
package histogram_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dennsy/geotrellis/histogram"
)

func TestSample_Empty(t *testing.T) {
	s := histogram.New[int]()
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.QuantileBreaks(4))
	assert.Equal(t, 0, s.Quantile(0.5))
	_, _, ok := s.Bounds()
	assert.False(t, ok)
	assert.True(t, math.IsNaN(s.Mean()))
}

func TestSample_NilIsEmpty(t *testing.T) {
	var s *histogram.Sample[int]
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.QuantileBreaks(3))
	assert.Equal(t, 0, s.Quantile(0.5))
	_, _, ok := s.Bounds()
	assert.False(t, ok)
}

func TestSample_Bounds(t *testing.T) {
	s := histogram.New(5.5, -2.0, 9.25)
	lo, hi, ok := s.Bounds()
	require.True(t, ok)
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 9.25, hi)
	assert.InDelta(t, 12.75/3, s.Mean(), 1e-12)
}

// TestQuantileBreaks_Properties checks ordering, length and endpoints on
// a range of sizes.
func TestQuantileBreaks_Properties(t *testing.T) {
	values := make([]int, 0, 100)
	for i := 100; i >= 1; i-- {
		values = append(values, i)
	}
	s := histogram.New(values...)
	for n := 1; n <= 12; n++ {
		breaks := s.QuantileBreaks(n)
		require.LessOrEqual(t, len(breaks), n)
		require.NotEmpty(t, breaks)
		require.True(t, slices.IsSorted(breaks), "n=%d breaks=%v", n, breaks)
		require.Equal(t, 100, breaks[len(breaks)-1], "last break is the maximum")
		for _, b := range breaks {
			require.GreaterOrEqual(t, b, 1)
		}
	}
	assert.Len(t, s.QuantileBreaks(4), 4)
	assert.Nil(t, s.QuantileBreaks(0))
}

// TestQuantileBreaks_CollapsesDuplicates uses a constant sample.
func TestQuantileBreaks_CollapsesDuplicates(t *testing.T) {
	s := histogram.New[uint8](7, 7, 7, 7, 7)
	assert.Equal(t, []uint8{7}, s.QuantileBreaks(5))
}

func TestSample_AddInvalidatesSort(t *testing.T) {
	s := histogram.New(1.0, 2.0, 3.0)
	assert.Equal(t, []float64{3}, s.QuantileBreaks(1))
	s.Add(10, math.NaN())
	assert.Equal(t, 4, s.Len(), "NaN is skipped")
	assert.Equal(t, []float64{10}, s.QuantileBreaks(1))
	assert.Equal(t, 1.0, s.Quantile(-3), "q clamps to 0")
}

func TestSample_IntegerRounding(t *testing.T) {
	s := histogram.New(0, 1)
	q := s.Quantile(0.5)
	assert.Contains(t, []int{0, 1}, q)
	f := histogram.New(0.0, 1.0).Quantile(0.5)
	assert.InDelta(t, 0.5, f, 1e-12)
}
