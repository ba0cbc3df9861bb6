package stats

import (
	"math"

	"github.com/wangjohn/quickselect"

	"github.com/microflex/microflex/pkg/numeric"
)

// Percentile returns the p-th percentile of values, 1 <= p <= 100, using
// linear interpolation between the closest ranks at pos = p(n+1)/100.
// Positions before the first rank yield the minimum and positions at or past
// the last rank yield the maximum. values is not reordered.
func Percentile[T any](d numeric.Domain[T], values []T, p float64) (T, error) {
	if math.IsNaN(p) || p < 1 || p > 100 {
		return d.Undefined(), ErrInvalidPercentile.Here().Appendf("p=%v, expected 1..100", p)
	}
	return rank(d, values, p*float64(len(values)+1)/100), nil
}

// Quantile is Percentile with q expressed as a fraction, 0 <= q <= 1.
func Quantile[T any](d numeric.Domain[T], values []T, q float64) (T, error) {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return d.Undefined(), ErrInvalidPercentile.Here().Appendf("q=%v, expected 0..1", q)
	}
	return rank(d, values, q*float64(len(values)+1)), nil
}

// Median is the 50th percentile.
func Median[T any](d numeric.Domain[T], values []T) T {
	return rank(d, values, 0.5*float64(len(values)+1))
}

// rank returns the value at the 1-based fractional rank pos.
func rank[T any](d numeric.Domain[T], values []T, pos float64) T {
	n := len(values)
	switch {
	case n == 0:
		return d.Undefined()
	case n == 1:
		return d.Clone(values[0])
	case pos < 1:
		return d.Clone(numeric.Min(d, values))
	case pos >= float64(n):
		return d.Clone(numeric.Max(d, values))
	}

	lower := math.Floor(pos)
	frac := pos - lower
	if frac == 0 {
		top, _ := selectRanks(d, values, int(lower))
		return d.Clone(top)
	}
	upper, low := selectRanks(d, values, int(lower)+1)
	return d.Add(low, d.Scale(d.Sub(upper, low), frac))
}

// selectRanks returns the k-th and (k-1)-th smallest values, k >= 1. The
// second result is undefined for k == 1.
func selectRanks[T any](d numeric.Domain[T], values []T, k int) (T, T) {
	s := selection[T]{d: d, values: append([]T(nil), values...)}
	_ = quickselect.QuickSelect(s, k)

	top, second := s.values[0], d.Undefined()
	for i, v := range s.values[1:k] {
		if d.Cmp(v, top) > 0 {
			second, top = top, v
		} else if i == 0 || d.Cmp(v, second) > 0 {
			second = v
		}
	}
	return top, second
}

type selection[T any] struct {
	d      numeric.Domain[T]
	values []T
}

func (s selection[T]) Len() int           { return len(s.values) }
func (s selection[T]) Less(i, j int) bool { return s.d.Cmp(s.values[i], s.values[j]) < 0 }
func (s selection[T]) Swap(i, j int)      { s.values[i], s.values[j] = s.values[j], s.values[i] }
