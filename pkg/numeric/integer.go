package numeric

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Int32 is 32-bit two's complement arithmetic. Division truncates toward
// zero and overflow wraps.
type Int32 struct{}

var (
	_ Integral[int32] = Int32{}
	_ Bitwise[int32]  = Int32{}
)

func (Int32) Name() string          { return "integer" }
func (Int32) Zero() int32           { return 0 }
func (Int32) One() int32            { return 1 }
func (Int32) Undefined() int32      { return 0 }
func (Int32) FromInt(v int64) int32 { return int32(v) }

func (Int32) FromFloat(v float64) int32 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int32(v)
}

func (Int32) Float(v int32) float64 { return float64(v) }

func (Int32) Parse(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, ErrParse.Here().Appendf("integer %q", s)
	}
	return int32(v), nil
}

func (Int32) Format(v int32) string { return strconv.FormatInt(int64(v), 10) }

func (Int32) Add(a, b int32) int32 { return a + b }
func (Int32) Sub(a, b int32) int32 { return a - b }
func (Int32) Mul(a, b int32) int32 { return a * b }
func (Int32) Div(a, b int32) int32 { return a / b }
func (Int32) Mod(a, b int32) int32 { return a % b }
func (Int32) Neg(a int32) int32    { return -a }

func (Int32) Abs(a int32) int32 {
	if a < 0 {
		return -a
	}
	return a
}

func (d Int32) Scale(a int32, f float64) int32 { return d.FromFloat(float64(a) * f) }

func (d Int32) Sqrt(a int32) int32 {
	if a < 0 {
		return 0
	}
	return int32(math.Sqrt(float64(a)))
}

func (d Int32) Log(a int32) int32 {
	if a <= 0 {
		return 0
	}
	return d.FromFloat(math.Log(float64(a)))
}

func (d Int32) Exp(a int32) int32 { return d.FromFloat(math.Exp(float64(a))) }

func (Int32) Cmp(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (Int32) IsZero(a int32) bool { return a == 0 }

func (Int32) CheckDivisor(b int32) error {
	if b == 0 {
		return ErrDivisionByZero.Here()
	}
	return nil
}

func (Int32) Clone(a int32) int32 { return a }

func (Int32) And(a, b int32) int32      { return a & b }
func (Int32) Or(a, b int32) int32       { return a | b }
func (Int32) Xor(a, b int32) int32      { return a ^ b }
func (Int32) AndNot(a, b int32) int32   { return a &^ b }
func (Int32) Not(a int32) int32         { return ^a }
func (Int32) Lsh(a int32, n uint) int32 { return a << n }
func (Int32) Rsh(a int32, n uint) int32 { return a >> n }

func (Int32) ToDecimal(a int32) decimal.Decimal { return decimal.NewFromInt32(a) }

func (Int32) FromDecimal(a decimal.Decimal) int32 { return int32(a.IntPart()) }

func (Int32) Real() Decimal { return DefaultDecimal }
