package stats

import (
	"github.com/shopspring/decimal"

	"github.com/microflex/microflex/pkg/numeric"
)

// Sum returns the sum of values, zero when empty.
func Sum[T any](d numeric.Domain[T], values []T) T {
	s := d.Zero()
	for _, v := range values {
		s = d.Add(s, v)
	}
	return s
}

// SumOfSquares returns the sum of the squared values, zero when empty.
func SumOfSquares[T any](d numeric.Domain[T], values []T) T {
	s := d.Zero()
	for _, v := range values {
		s = d.Add(s, d.Mul(v, v))
	}
	return s
}

// N returns the number of values.
func N[T any](d numeric.Domain[T], values []T) T {
	return d.FromInt(int64(len(values)))
}

func Min[T any](d numeric.Domain[T], values []T) T { return d.Clone(numeric.Min(d, values)) }
func Max[T any](d numeric.Domain[T], values []T) T { return d.Clone(numeric.Max(d, values)) }

// Mean returns the arithmetic mean.
func Mean[T any](d numeric.Domain[T], values []T) T {
	return fractional(d, values, mean[decimal.Decimal], mean[T])
}

// GeometricMean returns exp(mean(ln x)). Values must be positive.
func GeometricMean[T any](d numeric.Domain[T], values []T) T {
	return fractional(d, values, geometricMean[decimal.Decimal], geometricMean[T])
}

// QuadraticMean returns the root mean square, sqrt(sum(x^2)/n).
func QuadraticMean[T any](d numeric.Domain[T], values []T) T {
	return fractional(d, values, quadraticMean[decimal.Decimal], quadraticMean[T])
}

// Variance returns the unbiased sample variance, sum((x-mean)^2)/(n-1).
// A single value has zero variance.
func Variance[T any](d numeric.Domain[T], values []T) T {
	return fractional(d, values, sampleVariance[decimal.Decimal], sampleVariance[T])
}

// PopulationVariance returns sum((x-mean)^2)/n.
func PopulationVariance[T any](d numeric.Domain[T], values []T) T {
	return fractional(d, values, populationVariance[decimal.Decimal], populationVariance[T])
}

// Skewness returns the bias corrected sample skewness,
// n/((n-1)(n-2)) * sum(((x-mean)/s)^3). It needs at least three values.
func Skewness[T any](d numeric.Domain[T], values []T) T {
	return fractional(d, values, skewness[decimal.Decimal], skewness[T])
}

// Kurtosis returns the bias corrected sample excess kurtosis. It needs at
// least four values.
func Kurtosis[T any](d numeric.Domain[T], values []T) T {
	return fractional(d, values, kurtosis[decimal.Decimal], kurtosis[T])
}

func mean[T any](d numeric.Domain[T], values []T) T {
	if len(values) == 0 {
		return d.Undefined()
	}
	return d.Div(Sum(d, values), d.FromInt(int64(len(values))))
}

func geometricMean[T any](d numeric.Domain[T], values []T) T {
	if len(values) == 0 {
		return d.Undefined()
	}
	logs := d.Zero()
	for _, v := range values {
		logs = d.Add(logs, d.Log(v))
	}
	return d.Exp(d.Div(logs, d.FromInt(int64(len(values)))))
}

func quadraticMean[T any](d numeric.Domain[T], values []T) T {
	if len(values) == 0 {
		return d.Undefined()
	}
	return d.Sqrt(d.Div(SumOfSquares(d, values), d.FromInt(int64(len(values)))))
}

// squaredDeviations returns sum((x-mean)^2) and the mean.
func squaredDeviations[T any](d numeric.Domain[T], values []T) (T, T) {
	m := mean(d, values)
	ss := d.Zero()
	for _, v := range values {
		dev := d.Sub(v, m)
		ss = d.Add(ss, d.Mul(dev, dev))
	}
	return ss, m
}

func sampleVariance[T any](d numeric.Domain[T], values []T) T {
	switch len(values) {
	case 0:
		return d.Undefined()
	case 1:
		return d.Zero()
	}
	ss, _ := squaredDeviations(d, values)
	return d.Div(ss, d.FromInt(int64(len(values)-1)))
}

func populationVariance[T any](d numeric.Domain[T], values []T) T {
	if len(values) == 0 {
		return d.Undefined()
	}
	ss, _ := squaredDeviations(d, values)
	return d.Div(ss, d.FromInt(int64(len(values))))
}

// standardizedMoment returns sum(((x-mean)/s)^k) with s the sample standard
// deviation, and false when all values are equal.
func standardizedMoment[T any](d numeric.Domain[T], values []T, k int) (T, bool) {
	ss, m := squaredDeviations(d, values)
	if d.IsZero(ss) {
		return d.Zero(), false
	}
	s := d.Sqrt(d.Div(ss, d.FromInt(int64(len(values)-1))))
	sum := d.Zero()
	for _, v := range values {
		z := d.Div(d.Sub(v, m), s)
		p := z
		for range k - 1 {
			p = d.Mul(p, z)
		}
		sum = d.Add(sum, p)
	}
	return sum, true
}

func skewness[T any](d numeric.Domain[T], values []T) T {
	n := int64(len(values))
	if n < 3 {
		return d.Undefined()
	}
	s, ok := standardizedMoment(d, values, 3)
	if !ok {
		return d.Zero()
	}
	return d.Div(d.Mul(s, d.FromInt(n)), d.FromInt((n-1)*(n-2)))
}

func kurtosis[T any](d numeric.Domain[T], values []T) T {
	n := int64(len(values))
	if n < 4 {
		return d.Undefined()
	}
	s, ok := standardizedMoment(d, values, 4)
	if !ok {
		return d.Zero()
	}
	// s*n(n+1)/((n-1)(n-2)(n-3)) - 3(n-1)^2/((n-2)(n-3))
	scaled := d.Div(d.Mul(s, d.FromInt(n*(n+1))), d.FromInt((n-1)*(n-2)*(n-3)))
	offset := d.Div(d.FromInt(3*(n-1)*(n-1)), d.FromInt((n-2)*(n-3)))
	return d.Sub(scaled, offset)
}
