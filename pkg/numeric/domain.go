// Package numeric defines the arithmetic that well data is computed with.
//
// Every container and engine in microflex is generic over the value type T
// and receives a Domain[T] that knows how to add, compare and round values of
// that type. Four domains are provided: Float64, Decimal (arbitrary precision
// decimal with a rounding context), Int32 and BigInt.
package numeric

import (
	"slices"

	"github.com/ansel1/merry"
	"github.com/shopspring/decimal"
)

var (
	// ErrDivisionByZero is returned when an exact domain is asked to divide by zero.
	ErrDivisionByZero = merry.New("division by zero")
	// ErrParse is returned when a textual value can't be read in the domain.
	ErrParse = merry.New("can't parse value")
	// ErrUnknownDomain is returned for unsupported domain names.
	ErrUnknownDomain = merry.New("unknown numeric domain")
)

// Domain is the arithmetic over values of type T.
//
// Operations never modify their operands. Div and Mod expect the divisor to
// have been accepted by CheckDivisor.
type Domain[T any] interface {
	// Name is the domain name used in configuration ("double", "decimal", ...).
	Name() string

	Zero() T
	One() T
	// Undefined is the result of a statistic that has no value (NaN for float64, zero otherwise).
	Undefined() T

	FromInt(v int64) T
	FromFloat(v float64) T
	Float(v T) float64
	Parse(s string) (T, error)
	Format(v T) string

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Mod(a, b T) T
	Neg(a T) T
	Abs(a T) T
	// Scale multiplies a by a real factor, rounding the way the domain rounds.
	Scale(a T, f float64) T

	Sqrt(a T) T
	Log(a T) T
	Exp(a T) T

	Cmp(a, b T) int
	IsZero(a T) bool
	CheckDivisor(b T) error

	Clone(a T) T
}

// Bitwise is implemented by domains with two's complement integer values.
type Bitwise[T any] interface {
	And(a, b T) T
	Or(a, b T) T
	Xor(a, b T) T
	AndNot(a, b T) T
	Not(a T) T
	Lsh(a T, n uint) T
	Rsh(a T, n uint) T
}

// Integral is implemented by domains whose division truncates. Statistics
// with fractional intermediates are evaluated in Real and truncated back.
type Integral[T any] interface {
	Domain[T]
	ToDecimal(a T) decimal.Decimal
	FromDecimal(a decimal.Decimal) T
	Real() Decimal
}

// Min returns the smallest value, or Undefined for an empty slice.
func Min[T any](d Domain[T], values []T) T {
	if len(values) == 0 {
		return d.Undefined()
	}
	m := values[0]
	for _, v := range values[1:] {
		if d.Cmp(v, m) < 0 {
			m = v
		}
	}
	return m
}

// Max returns the largest value, or Undefined for an empty slice.
func Max[T any](d Domain[T], values []T) T {
	if len(values) == 0 {
		return d.Undefined()
	}
	m := values[0]
	for _, v := range values[1:] {
		if d.Cmp(v, m) > 0 {
			m = v
		}
	}
	return m
}

// Equal reports whether two slices hold the same values in the same order.
func Equal[T any](d Domain[T], a, b []T) bool {
	return slices.EqualFunc(a, b, func(x, y T) bool {
		return d.Cmp(x, y) == 0
	})
}

// CloneValues deep copies values.
func CloneValues[T any](d Domain[T], values []T) []T {
	if values == nil {
		return nil
	}
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = d.Clone(v)
	}
	return out
}

// ParseAll parses every string in ss.
func ParseAll[T any](d Domain[T], ss ...string) ([]T, error) {
	out := make([]T, 0, len(ss))
	for _, s := range ss {
		v, err := d.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
