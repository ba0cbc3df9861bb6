package mathop

import (
	"math/big"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microflex/microflex/pkg/numeric"
	"github.com/microflex/microflex/pkg/plate"
)

func TestUnary(t *testing.T) {
	i32 := numeric.Int32{}
	values := []int32{1, -8, 5}

	tests := []struct {
		name     string
		shift    uint
		expected []int32
	}{
		{"increment", 0, []int32{2, -7, 6}},
		{"decrement", 0, []int32{0, -9, 4}},
		{"negate", 0, []int32{-1, 8, -5}},
		{"leftshift", 2, []int32{4, -32, 20}},
		{"rightshift", 1, []int32{0, -4, 2}},
		{"complement", 0, []int32{-2, 7, -6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := LookupUnary[int32](i32, tt.name, tt.shift)
			require.NoError(t, err)
			r, err := u.Values(values)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
		})
	}
	assert.Equal(t, []int32{1, -8, 5}, values)
}

func TestUnaryContainers(t *testing.T) {
	bi := numeric.BigInt{}
	p := plate.MustPlate(2, 2, "p", plate.MustWell(0, 1, big.NewInt(1), big.NewInt(2), big.NewInt(3)))
	s := plate.MustStack(2, 2, "s", p)

	lsh, err := LeftShift[*big.Int](bi, 64)
	require.NoError(t, err)
	win, err := lsh.Window(1, 2)
	require.NoError(t, err)

	r, err := win.Stack(s)
	require.NoError(t, err)
	rp, _ := r.At(0)
	w, ok := rp.Get(plate.Pos(0, 1))
	require.True(t, ok)
	assert.Equal(t, "36893488147419103232", w.Values()[0].String())
	assert.Equal(t, 2, w.Len())

	orig, _ := p.Get(plate.Pos(0, 1))
	assert.Equal(t, "1", orig.Values()[0].String())

	_, err = Increment[*big.Int](bi).Plate(nil)
	assert.True(t, merry.Is(err, plate.ErrNilArgument))

	bad, err := lsh.Window(2, 2)
	require.NoError(t, err)
	_, err = bad.Plate(p)
	assert.True(t, merry.Is(err, plate.ErrInvalidIndices))

	require.NoError(t, p.Add(plate.MustWell[*big.Int](1, 0)))
	r, err = Increment[*big.Int](bi).Stack(plate.MustStack(2, 2, "s", p))
	require.NoError(t, err)
	rp, _ = r.At(0)
	w, ok = rp.Get(plate.Pos(1, 0))
	require.True(t, ok)
	assert.Zero(t, w.Len())
	w, ok = rp.Get(plate.Pos(0, 1))
	require.True(t, ok)
	assert.Equal(t, "2", w.Values()[0].String())
}

func TestUnaryUnsupported(t *testing.T) {
	_, err := Complement[float64](f64)
	assert.True(t, merry.Is(err, ErrUnsupportedOperation))
	_, err = LeftShift[float64](f64, 1)
	assert.True(t, merry.Is(err, ErrUnsupportedOperation))
	_, err = LookupUnary[float64](f64, "sqrt", 0)
	assert.True(t, merry.Is(err, ErrUnknownOperation))

	inc := Increment[float64](f64)
	r, err := inc.Set(plate.NewWellSet("s", plate.MustWell(0, 0, 1.5)))
	require.NoError(t, err)
	w, _ := r.Get(plate.Pos(0, 0))
	assert.Equal(t, []float64{2.5}, w.Data())
}
