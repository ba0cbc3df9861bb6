package numeric

import (
	"math"
	"strings"

	"github.com/ansel1/merry"
	"github.com/shopspring/decimal"
)

// Rounding selects how inexact decimal results are rounded to Decimal.Places.
type Rounding int

const (
	RoundHalfEven Rounding = iota
	RoundHalfUp
	RoundDown
	RoundUp
	RoundCeiling
	RoundFloor
)

// ErrUnknownRounding is returned by ParseRounding.
var ErrUnknownRounding = merry.New("unknown rounding mode")

var roundingNames = map[string]Rounding{
	"half_even": RoundHalfEven,
	"half_up":   RoundHalfUp,
	"down":      RoundDown,
	"up":        RoundUp,
	"ceiling":   RoundCeiling,
	"floor":     RoundFloor,
}

// ParseRounding converts a configuration name (half_even, half_up, down, up,
// ceiling, floor) to a Rounding.
func ParseRounding(s string) (Rounding, error) {
	r, ok := roundingNames[strings.ToLower(s)]
	if !ok {
		return 0, ErrUnknownRounding.Here().Appendf("%q", s)
	}
	return r, nil
}

func (r Rounding) String() string {
	for k, v := range roundingNames {
		if v == r {
			return k
		}
	}
	return "unknown"
}

func (r Rounding) round(d decimal.Decimal, places int32) decimal.Decimal {
	switch r {
	case RoundHalfUp:
		return d.Round(places)
	case RoundDown:
		return d.RoundDown(places)
	case RoundUp:
		return d.RoundUp(places)
	case RoundCeiling:
		return d.RoundCeil(places)
	case RoundFloor:
		return d.RoundFloor(places)
	}
	return d.RoundBank(places)
}

// DefaultDecimalPlaces is the scale used by DefaultDecimal.
const DefaultDecimalPlaces = 16

// guard digits kept on intermediate results before the final rounding.
const guardPlaces = 4

// DefaultDecimal is a Decimal with 16 places and banker's rounding.
var DefaultDecimal = Decimal{Places: DefaultDecimalPlaces, Rounding: RoundHalfEven}

// Decimal is arbitrary precision decimal arithmetic. Addition, subtraction and
// multiplication are exact; division, roots, logarithms, exponentials and
// scaling are rounded to Places digits after the point using Rounding.
type Decimal struct {
	Places   int32
	Rounding Rounding
}

var _ Domain[decimal.Decimal] = Decimal{}

func (Decimal) Name() string                    { return "decimal" }
func (Decimal) Zero() decimal.Decimal           { return decimal.Zero }
func (Decimal) One() decimal.Decimal            { return decimal.NewFromInt(1) }
func (Decimal) Undefined() decimal.Decimal      { return decimal.Zero }
func (Decimal) FromInt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func (c Decimal) FromFloat(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func (Decimal) Float(v decimal.Decimal) float64 { return v.InexactFloat64() }

func (Decimal) Parse(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrParse.Here().Appendf("decimal %q", s)
	}
	return v, nil
}

func (Decimal) Format(v decimal.Decimal) string { return v.String() }

func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func (Decimal) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (Decimal) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }

func (c Decimal) Div(a, b decimal.Decimal) decimal.Decimal {
	return c.Rounding.round(a.DivRound(b, c.Places+guardPlaces), c.Places)
}

func (Decimal) Mod(a, b decimal.Decimal) decimal.Decimal { return a.Mod(b) }
func (Decimal) Neg(a decimal.Decimal) decimal.Decimal    { return a.Neg() }
func (Decimal) Abs(a decimal.Decimal) decimal.Decimal    { return a.Abs() }

func (c Decimal) Scale(a decimal.Decimal, f float64) decimal.Decimal {
	return c.Rounding.round(a.Mul(c.FromFloat(f)), c.Places)
}

// Sqrt uses Newton's method seeded from the float64 root. Negative input is undefined.
func (c Decimal) Sqrt(a decimal.Decimal) decimal.Decimal {
	if a.Sign() <= 0 {
		return decimal.Zero
	}
	x := decimal.NewFromFloat(math.Sqrt(a.InexactFloat64()))
	if x.Sign() <= 0 {
		x = a
	}
	two := decimal.NewFromInt(2)
	prec := c.Places + guardPlaces
	for i := 0; i < 100; i++ {
		next := x.Add(a.DivRound(x, prec)).DivRound(two, prec)
		if next.Equal(x) {
			break
		}
		x = next
	}
	return c.Rounding.round(x, c.Places)
}

// Log is the natural logarithm. Non-positive input is undefined.
func (c Decimal) Log(a decimal.Decimal) decimal.Decimal {
	if a.Sign() <= 0 {
		return decimal.Zero
	}
	v, err := a.Ln(c.Places + guardPlaces)
	if err != nil {
		return decimal.Zero
	}
	return c.Rounding.round(v, c.Places)
}

func (c Decimal) Exp(a decimal.Decimal) decimal.Decimal {
	v, err := a.ExpTaylor(c.Places + guardPlaces)
	if err != nil {
		return decimal.Zero
	}
	return c.Rounding.round(v, c.Places)
}

func (Decimal) Cmp(a, b decimal.Decimal) int  { return a.Cmp(b) }
func (Decimal) IsZero(a decimal.Decimal) bool { return a.IsZero() }

func (Decimal) CheckDivisor(b decimal.Decimal) error {
	if b.IsZero() {
		return ErrDivisionByZero.Here()
	}
	return nil
}

func (Decimal) Clone(a decimal.Decimal) decimal.Decimal { return a.Copy() }
