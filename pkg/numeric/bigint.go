package numeric

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// BigInt is arbitrary precision integer arithmetic. Division and remainder
// truncate toward zero (Quo/Rem). Values are never mutated; every operation
// allocates its result. A nil *big.Int reads as zero.
type BigInt struct{}

var (
	_ Integral[*big.Int] = BigInt{}
	_ Bitwise[*big.Int]  = BigInt{}
)

func nz(a *big.Int) *big.Int {
	if a == nil {
		return new(big.Int)
	}
	return a
}

func (BigInt) Name() string             { return "biginteger" }
func (BigInt) Zero() *big.Int           { return new(big.Int) }
func (BigInt) One() *big.Int            { return big.NewInt(1) }
func (BigInt) Undefined() *big.Int      { return new(big.Int) }
func (BigInt) FromInt(v int64) *big.Int { return big.NewInt(v) }

func (BigInt) FromFloat(v float64) *big.Int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return new(big.Int)
	}
	r, _ := big.NewFloat(v).Int(nil)
	return r
}

func (BigInt) Float(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(nz(v)).Float64()
	return f
}

func (BigInt) Parse(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrParse.Here().Appendf("biginteger %q", s)
	}
	return v, nil
}

func (BigInt) Format(v *big.Int) string { return nz(v).String() }

func (BigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(nz(a), nz(b)) }
func (BigInt) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(nz(a), nz(b)) }
func (BigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(nz(a), nz(b)) }
func (BigInt) Div(a, b *big.Int) *big.Int { return new(big.Int).Quo(nz(a), nz(b)) }
func (BigInt) Mod(a, b *big.Int) *big.Int { return new(big.Int).Rem(nz(a), nz(b)) }
func (BigInt) Neg(a *big.Int) *big.Int    { return new(big.Int).Neg(nz(a)) }
func (BigInt) Abs(a *big.Int) *big.Int    { return new(big.Int).Abs(nz(a)) }

func (d BigInt) Scale(a *big.Int, f float64) *big.Int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return new(big.Int)
	}
	r, _ := new(big.Float).Mul(new(big.Float).SetInt(nz(a)), big.NewFloat(f)).Int(nil)
	return r
}

func (BigInt) Sqrt(a *big.Int) *big.Int {
	if nz(a).Sign() < 0 {
		return new(big.Int)
	}
	return new(big.Int).Sqrt(nz(a))
}

func (d BigInt) Log(a *big.Int) *big.Int {
	if nz(a).Sign() <= 0 {
		return new(big.Int)
	}
	return d.FromFloat(math.Log(d.Float(a)))
}

func (d BigInt) Exp(a *big.Int) *big.Int { return d.FromFloat(math.Exp(d.Float(a))) }

func (BigInt) Cmp(a, b *big.Int) int  { return nz(a).Cmp(nz(b)) }
func (BigInt) IsZero(a *big.Int) bool { return nz(a).Sign() == 0 }

func (BigInt) CheckDivisor(b *big.Int) error {
	if nz(b).Sign() == 0 {
		return ErrDivisionByZero.Here()
	}
	return nil
}

func (BigInt) Clone(a *big.Int) *big.Int { return new(big.Int).Set(nz(a)) }

func (BigInt) And(a, b *big.Int) *big.Int      { return new(big.Int).And(nz(a), nz(b)) }
func (BigInt) Or(a, b *big.Int) *big.Int       { return new(big.Int).Or(nz(a), nz(b)) }
func (BigInt) Xor(a, b *big.Int) *big.Int      { return new(big.Int).Xor(nz(a), nz(b)) }
func (BigInt) AndNot(a, b *big.Int) *big.Int   { return new(big.Int).AndNot(nz(a), nz(b)) }
func (BigInt) Not(a *big.Int) *big.Int         { return new(big.Int).Not(nz(a)) }
func (BigInt) Lsh(a *big.Int, n uint) *big.Int { return new(big.Int).Lsh(nz(a), n) }
func (BigInt) Rsh(a *big.Int, n uint) *big.Int { return new(big.Int).Rsh(nz(a), n) }

func (BigInt) ToDecimal(a *big.Int) decimal.Decimal { return decimal.NewFromBigInt(nz(a), 0) }

func (BigInt) FromDecimal(a decimal.Decimal) *big.Int { return a.BigInt() }

func (BigInt) Real() Decimal { return DefaultDecimal }
