package mathop

import (
	"math"
	"math/big"
	"testing"

	"github.com/ansel1/merry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microflex/microflex/pkg/numeric"
	"github.com/microflex/microflex/pkg/plate"
	"github.com/microflex/microflex/pkg/plate/platetest"
)

var f64 = numeric.Float64{}

func data(t *testing.T, s *plate.WellSet[float64], p plate.Position) []float64 {
	w, ok := s.Get(p)
	require.True(t, ok, "no well at %s", p)
	return w.Data()
}

func TestStandardMergeScenario(t *testing.T) {
	a := plate.NewWellSet("A", plate.MustWell(0, 0, 1.0, 2.0))
	b := plate.NewWellSet("B", plate.MustWell(0, 0, 3.0, 4.0), plate.MustWell(0, 1, 5.0))

	r, err := Add[float64](f64).Sets(a, b)
	require.NoError(t, err)
	assert.Equal(t, "A", r.Label())
	assert.Equal(t, []plate.Position{plate.Pos(0, 0), plate.Pos(0, 1)}, r.Positions())
	assert.Equal(t, []float64{4, 6}, data(t, r, plate.Pos(0, 0)))
	assert.Equal(t, []float64{5}, data(t, r, plate.Pos(0, 1)))

	strict, err := Add[float64](f64).SetsStrict(a, b)
	require.NoError(t, err)
	assert.Equal(t, []plate.Position{plate.Pos(0, 0)}, strict.Positions())
}

func TestValuesPolicies(t *testing.T) {
	sub := Subtract[float64](f64)

	r, err := sub.Values([]float64{5, 5, 5}, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 5}, r)

	r, err = sub.Values([]float64{5}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, -2, -3}, r)

	r, err = sub.ValuesStrict([]float64{5, 5, 5}, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, r)

	_, err = sub.Values(nil, []float64{1})
	assert.True(t, merry.Is(err, plate.ErrNilArgument))
}

func TestWindow(t *testing.T) {
	mul, err := Multiply[float64](f64).Window(1, 2)
	require.NoError(t, err)

	r, err := mul.Values([]float64{1, 2, 3, 4}, []float64{0, 10, 100})
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 300}, r)

	_, err = mul.Values([]float64{1, 2, 3, 4}, []float64{1, 2})
	assert.True(t, merry.Is(err, plate.ErrInvalidIndices))

	a := plate.NewWellSet("A", plate.MustWell(0, 0, 1.0, 2.0, 3.0), plate.MustWell(1, 1, 7.0, 8.0, 9.0))
	b := plate.NewWellSet("B", plate.MustWell(0, 0, 1.0, 2.0, 3.0))
	s, err := mul.Sets(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 9}, data(t, s, plate.Pos(0, 0)))
	assert.Equal(t, []float64{8, 9}, data(t, s, plate.Pos(1, 1)), "passed through wells are cut to the window")

	short := plate.NewWellSet("C", plate.MustWell(2, 2, 1.0))
	_, err = mul.Sets(a, short)
	assert.True(t, merry.Is(err, plate.ErrInvalidIndices))

	_, err = Multiply[float64](f64).Window(0, -1)
	assert.True(t, merry.Is(err, plate.ErrInvalidIndices))
}

func TestMergeLaws(t *testing.T) {
	g := platetest.New[float64](f64, 5)
	g.Fill = 0.6
	add := Add[float64](f64)

	for i := 0; i < 20; i++ {
		a := g.Set("A", 4, 6, 3)
		b := g.Set("B", 4, 6, 2)

		union := a.Clone()
		union.Union(b)
		inter := a.Clone()
		inter.Intersection(b)

		standard, err := add.Sets(a, b)
		require.NoError(t, err)
		assert.Equal(t, union.Positions(), standard.Positions())

		strict, err := add.SetsStrict(a, b)
		require.NoError(t, err)
		assert.Equal(t, inter.Positions(), strict.Positions())

		for w := range standard.All() {
			x, inA := a.Get(w.Position())
			y, inB := b.Get(w.Position())
			switch {
			case inA && !inB:
				assert.Equal(t, x.Data(), w.Data())
			case inB && !inA:
				assert.Equal(t, y.Data(), w.Data())
			default:
				assert.Equal(t, 3, w.Len())
			}
		}
	}

	a := g.Set("A", 4, 6, 3)
	empty := plate.NewWellSet[float64]("E")
	for w := range a.All() {
		require.NoError(t, empty.Add(plate.MustWell[float64](w.Row(), w.Column())))
	}
	standard, err := add.Sets(a, empty)
	require.NoError(t, err)
	for w := range standard.All() {
		assert.Equal(t, data(t, a, w.Position()), w.Data(), "empty wells are zero filled")
	}
	strict, err := add.SetsStrict(a, empty)
	require.NoError(t, err)
	assert.Equal(t, a.Len(), strict.Len())
	for w := range strict.All() {
		assert.Zero(t, w.Len())
	}
}

func TestEmptyWells(t *testing.T) {
	add := Add[float64](f64)
	full := plate.MustWell(0, 0, 1.0, 2.0)
	cleared := plate.MustWell(0, 0, 5.0)
	cleared.Clear()

	r, err := add.Wells(full, plate.MustWell[float64](0, 0))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, r.Data())
	r, err = add.Wells(cleared, full)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, r.Data())
	r, err = add.WellsStrict(full, cleared)
	require.NoError(t, err)
	assert.Zero(t, r.Len())

	s, err := add.Sets(
		plate.NewWellSet("A", plate.MustWell[float64](0, 0)),
		plate.NewWellSet("B", plate.MustWell[float64](0, 0)),
	)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	assert.Empty(t, data(t, s, plate.Pos(0, 0)))

	r, err = add.WellScalar(cleared, 1)
	require.NoError(t, err)
	assert.Zero(t, r.Len())
	r, err = add.WellArray(cleared, []float64{})
	require.NoError(t, err)
	assert.Zero(t, r.Len())

	_, err = add.ValuesScalar(nil, 1)
	assert.True(t, merry.Is(err, plate.ErrNilArgument))
	_, err = add.WellArray(full, nil)
	assert.True(t, merry.Is(err, plate.ErrNilArgument))
}

func TestPassThroughIsACopy(t *testing.T) {
	a := plate.NewWellSet("A", plate.MustWell(0, 0, 1.0))
	b := plate.NewWellSet[float64]("B")

	r, err := Add[float64](f64).Sets(a, b)
	require.NoError(t, err)
	w, _ := r.Get(plate.Pos(0, 0))
	w.Add(2)

	orig, _ := a.Get(plate.Pos(0, 0))
	assert.Equal(t, []float64{1}, orig.Data())
}

func TestPlates(t *testing.T) {
	a := plate.MustPlate(2, 3, "A", plate.MustWell(0, 0, 1.0), plate.MustWell(1, 2, 2.0))
	b := plate.MustPlate(2, 3, "B", plate.MustWell(0, 0, 10.0), plate.MustWell(0, 1, 20.0))
	require.NoError(t, a.AddGroup("controls", plate.Pos(0, 0)))
	require.NoError(t, a.AddGroup("samples", plate.Pos(1, 2)))
	require.NoError(t, b.AddGroup("controls", plate.Pos(0, 1), plate.Pos(0, 0)))
	require.NoError(t, b.AddGroup("blanks", plate.Pos(1, 1)))

	r, err := Add[float64](f64).Plates(a, b)
	require.NoError(t, err)
	assert.Equal(t, "A", r.Label())
	assert.Equal(t, 3, r.Len())
	groups := r.Groups()
	require.Len(t, groups, 3)
	assert.Equal(t, "controls", groups[0].Label)
	assert.Equal(t, []plate.Position{plate.Pos(0, 0), plate.Pos(0, 1)}, groups[0].Positions)
	assert.Equal(t, "samples", groups[1].Label)
	assert.Equal(t, "blanks", groups[2].Label)

	strict, err := Add[float64](f64).PlatesStrict(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1, strict.Len())
	groups = strict.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, []plate.Position{plate.Pos(0, 0)}, groups[0].Positions)

	_, err = Add[float64](f64).Plates(a, plate.MustPlate[float64](8, 12, "big"))
	assert.True(t, merry.Is(err, plate.ErrDimensionMismatch))
	_, err = Add[float64](f64).Plates(a, nil)
	assert.True(t, merry.Is(err, plate.ErrNilArgument))
}

func TestStacks(t *testing.T) {
	g := platetest.New[float64](f64, 9)
	a := g.Stack("A", 3, 2, 2, 2)
	b := g.Stack("B", 2, 2, 2, 2)

	r, err := Subtract[float64](f64).Stacks(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())
	third, err := r.At(2)
	require.NoError(t, err)
	orig, _ := a.At(2)
	platetest.TestPlates(t, f64, third, orig)

	pa, _ := a.At(0)
	pb, _ := b.At(0)
	first, _ := r.At(0)
	wa, _ := pa.Get(plate.Pos(1, 1))
	wb, _ := pb.Get(plate.Pos(1, 1))
	wr, _ := first.Get(plate.Pos(1, 1))
	for i, v := range wr.Data() {
		assert.Equal(t, wa.Values()[i]-wb.Values()[i], v)
	}

	strict, err := Subtract[float64](f64).StacksStrict(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, strict.Len())

	_, err = Subtract[float64](f64).Stacks(a, g.Stack("C", 1, 8, 12, 1))
	assert.True(t, merry.Is(err, plate.ErrDimensionMismatch))
}

func TestScalarAndArray(t *testing.T) {
	p := plate.MustPlate(2, 2, "p", plate.MustWell(0, 0, 1.0, 2.0), plate.MustWell(1, 1, 3.0))
	require.NoError(t, p.AddGroup("g", plate.Pos(1, 1)))

	r, err := Multiply[float64](f64).PlateScalar(p, 10)
	require.NoError(t, err)
	w, _ := r.Get(plate.Pos(0, 0))
	assert.Equal(t, []float64{10, 20}, w.Data())
	assert.Len(t, r.Groups(), 1)

	r, err = Add[float64](f64).PlateArray(p, []float64{100, 200})
	require.NoError(t, err)
	w, _ = r.Get(plate.Pos(0, 0))
	assert.Equal(t, []float64{101, 202}, w.Data())
	w, _ = r.Get(plate.Pos(1, 1))
	assert.Equal(t, []float64{103}, w.Data())

	_, err = Add[float64](f64).PlateArray(p, []float64{1})
	assert.True(t, merry.Is(err, plate.ErrInvalidIndices))
	_, err = Add[float64](f64).PlateArray(p, nil)
	assert.True(t, merry.Is(err, plate.ErrNilArgument))

	s := plate.MustStack(2, 2, "s", p)
	rs, err := Subtract[float64](f64).StackScalar(s, 1)
	require.NoError(t, err)
	rp, _ := rs.At(0)
	w, _ = rp.Get(plate.Pos(0, 0))
	assert.Equal(t, []float64{0, 1}, w.Data())
}

func TestDivision(t *testing.T) {
	r, err := Divide[float64](f64).Values([]float64{1, -1, 0}, []float64{0, 0, 0})
	require.NoError(t, err)
	assert.True(t, math.IsInf(r[0], 1))
	assert.True(t, math.IsInf(r[1], -1))
	assert.True(t, math.IsNaN(r[2]))

	i32 := numeric.Int32{}
	_, err = Divide[int32](i32).Values([]int32{4, 2}, []int32{2, 0})
	assert.True(t, merry.Is(err, numeric.ErrDivisionByZero))
	_, err = Modulus[int32](i32).Values([]int32{4}, []int32{0})
	assert.True(t, merry.Is(err, numeric.ErrDivisionByZero))

	ri, err := Divide[int32](i32).Values([]int32{7, -7}, []int32{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int32{3, -3}, ri)

	_, err = Divide[int32](i32).Values([]int32{4, 2}, []int32{2})
	assert.True(t, merry.Is(err, numeric.ErrDivisionByZero), "zero filled divisor")

	dec := numeric.Decimal{Places: 4, Rounding: numeric.RoundHalfUp}
	rd, err := Divide[decimal.Decimal](dec).Values(
		[]decimal.Decimal{decimal.NewFromInt(2)},
		[]decimal.Decimal{decimal.NewFromInt(3)},
	)
	require.NoError(t, err)
	assert.Equal(t, "0.6667", rd[0].String())
	_, err = Divide[decimal.Decimal](dec).Values([]decimal.Decimal{decimal.NewFromInt(2)}, []decimal.Decimal{decimal.Zero})
	assert.True(t, merry.Is(err, numeric.ErrDivisionByZero))
}

func TestBitwise(t *testing.T) {
	i32 := numeric.Int32{}
	and, err := And[int32](i32)
	require.NoError(t, err)
	r, err := and.Values([]int32{6, 7}, []int32{3})
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 0}, r)

	bi := numeric.BigInt{}
	xor, err := Xor[*big.Int](bi)
	require.NoError(t, err)
	rb, err := xor.Values([]*big.Int{big.NewInt(5)}, []*big.Int{big.NewInt(3)})
	require.NoError(t, err)
	assert.Equal(t, "6", rb[0].String())

	for _, name := range []string{"and", "or", "xor", "andnot"} {
		_, err := LookupBinary[float64](f64, name)
		assert.True(t, merry.Is(err, ErrUnsupportedOperation), name)
	}
	_, err = LookupBinary[float64](f64, "pow")
	assert.True(t, merry.Is(err, ErrUnknownOperation))
}
