// SPDX-License-Identifier: MIT

package histogram

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"golang.org/x/exp/constraints"
)

// Number mirrors classify.Number so this package stays import-free of classify.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sample is an exact histogram over every added value.
// It is not safe for concurrent use.
type Sample[T Number] struct {
	sample stats.Sample
}

// New returns a Sample holding values.
func New[T Number](values ...T) *Sample[T] {
	s := &Sample[T]{}
	s.Add(values...)
	return s
}

// Add appends values. NaN values are skipped.
func (s *Sample[T]) Add(values ...T) *Sample[T] {
	for _, v := range values {
		f := float64(v)
		if math.IsNaN(f) {
			continue
		}
		s.sample.Xs = append(s.sample.Xs, f)
	}
	if len(values) > 0 {
		s.sample.Sorted = false
	}
	return s
}

// Len returns the number of samples. A nil *Sample is empty.
func (s *Sample[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.sample.Xs)
}

// Bounds returns the smallest and largest sample; ok is false when empty.
func (s *Sample[T]) Bounds() (lo, hi T, ok bool) {
	if s.Len() == 0 {
		return lo, hi, false
	}
	l, h := s.sample.Bounds()
	return T(l), T(h), true
}

// Mean returns the arithmetic mean, or NaN when empty.
func (s *Sample[T]) Mean() float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	return s.sample.Mean()
}

// Quantile returns the q-th quantile, q in [0,1]. q is clamped to that range.
// The result for an empty sample is the zero value.
func (s *Sample[T]) Quantile(q float64) T {
	if s.Len() == 0 {
		var zero T
		return zero
	}
	s.sort()
	return fromFloat[T](s.sample.Quantile(math.Max(0, math.Min(1, q))))
}

// QuantileBreaks returns up to n ascending breaks: the i/n quantiles for
// i = 1..n, so the last break is the sample maximum. Equal consecutive
// breaks collapse, which is why the result can be shorter than n.
// An empty sample or n <= 0 yields nil.
func (s *Sample[T]) QuantileBreaks(n int) []T {
	if n <= 0 || s.Len() == 0 {
		return nil
	}
	s.sort()
	out := make([]T, 0, n)
	for i := 1; i <= n; i++ {
		b := fromFloat[T](s.sample.Quantile(float64(i) / float64(n)))
		if len(out) > 0 && out[len(out)-1] == b {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (s *Sample[T]) sort() {
	if !s.sample.Sorted {
		s.sample.Sort()
		s.sample.Sorted = true
	}
}

// fromFloat converts f to T, rounding to nearest for integer types.
func fromFloat[T Number](f float64) T {
	if isInteger[T]() {
		return T(math.Round(f))
	}
	return T(f)
}

func isInteger[T Number]() bool {
	half := 0.5
	return T(half) == 0
}
