package numeric

import (
	"math"
	"strconv"
)

// Float64 is IEEE-754 double arithmetic. Division by zero yields ±Inf or NaN.
type Float64 struct{}

var _ Domain[float64] = Float64{}

func (Float64) Name() string                { return "double" }
func (Float64) Zero() float64               { return 0 }
func (Float64) One() float64                { return 1 }
func (Float64) Undefined() float64          { return math.NaN() }
func (Float64) FromInt(v int64) float64     { return float64(v) }
func (Float64) FromFloat(v float64) float64 { return v }
func (Float64) Float(v float64) float64     { return v }

func (Float64) Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrParse.Here().Appendf("double %q", s)
	}
	return v, nil
}

func (Float64) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (Float64) Add(a, b float64) float64           { return a + b }
func (Float64) Sub(a, b float64) float64           { return a - b }
func (Float64) Mul(a, b float64) float64           { return a * b }
func (Float64) Div(a, b float64) float64           { return a / b }
func (Float64) Mod(a, b float64) float64           { return math.Mod(a, b) }
func (Float64) Neg(a float64) float64              { return -a }
func (Float64) Abs(a float64) float64              { return math.Abs(a) }
func (Float64) Scale(a float64, f float64) float64 { return a * f }
func (Float64) Sqrt(a float64) float64             { return math.Sqrt(a) }
func (Float64) Log(a float64) float64              { return math.Log(a) }
func (Float64) Exp(a float64) float64              { return math.Exp(a) }

func (Float64) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (Float64) IsZero(a float64) bool      { return a == 0 }
func (Float64) CheckDivisor(float64) error { return nil }
func (Float64) Clone(a float64) float64    { return a }
