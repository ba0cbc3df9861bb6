// Package stats implements the statistics computed over well data.
//
// Every function works on a plain sequence of values in a numeric domain and
// never modifies it. Empty input yields the domain's undefined value rather
// than an error; invalid arguments (percentiles, weights, windows) are
// reported as errors.
package stats

import (
	"github.com/ansel1/merry"
	"github.com/shopspring/decimal"

	"github.com/microflex/microflex/pkg/numeric"
	"github.com/microflex/microflex/pkg/plate"
)

var ErrInvalidPercentile = merry.New("invalid percentile")
var ErrInvalidWeights = merry.New("invalid weights")

// Weighted multiplies every value by the weight at the same index.
func Weighted[T any](d numeric.Domain[T], values, weights []T) ([]T, error) {
	if weights == nil {
		return nil, plate.ErrNilArgument.Here().Append("weights")
	}
	if len(weights) < len(values) {
		return nil, ErrInvalidWeights.Here().Appendf("%d weights for %d values", len(weights), len(values))
	}
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = d.Mul(v, weights[i])
	}
	return out, nil
}

// fractional evaluates f in the decimal domain when d is integral, so that
// statistics needing real division are not truncated at every step, and
// truncates the result back into d.
func fractional[T any](d numeric.Domain[T], values []T, f func(numeric.Domain[decimal.Decimal], []decimal.Decimal) decimal.Decimal, native func(numeric.Domain[T], []T) T) T {
	id, ok := d.(numeric.Integral[T])
	if !ok {
		return native(d, values)
	}
	dec := make([]decimal.Decimal, len(values))
	for i, v := range values {
		dec[i] = id.ToDecimal(v)
	}
	return id.FromDecimal(f(id.Real(), dec))
}
