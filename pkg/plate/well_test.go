package plate

import (
	"math/big"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWellIdentity(t *testing.T) {
	a := MustWell(1, 2, 1.0, 2.0, 3.0)
	b := MustWell(1, 2, 9.0)
	c := MustWell(2, 1, 1.0, 2.0, 3.0)

	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Compare(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, "B3", a.ID())

	w, err := NewWellID("B3", 4.0)
	require.NoError(t, err)
	assert.True(t, w.Equal(a))

	_, err = NewWell[float64](-1, 0)
	assert.True(t, merry.Is(err, ErrInvalidPosition))
}

func TestWellMutation(t *testing.T) {
	w := MustWell(0, 0, 1, 2, 3, 4, 5, 6)

	require.NoError(t, w.Set(0, 10))
	require.NoError(t, w.RemoveAt(1))
	assert.Equal(t, []int{10, 3, 4, 5, 6}, w.Data())

	require.NoError(t, w.RemoveRange(1, 2))
	assert.Equal(t, []int{10, 5, 6}, w.Data())

	w.Add(7, 8)
	require.NoError(t, w.RetainRange(1, 3))
	assert.Equal(t, []int{5, 6, 7}, w.Data())

	assert.Equal(t, 1, w.RemoveFunc(func(v int) bool { return v == 6 }))
	assert.Equal(t, 1, w.RetainFunc(func(v int) bool { return v > 5 }))
	assert.Equal(t, []int{7}, w.Data())

	assert.True(t, merry.Is(w.Set(3, 1), ErrInvalidIndices))
	assert.True(t, merry.Is(w.RemoveRange(0, 2), ErrInvalidIndices))
	_, err := w.At(1)
	assert.True(t, merry.Is(err, ErrInvalidIndices))

	w.Clear()
	assert.Equal(t, 0, w.Len())
}

func TestWellWindow(t *testing.T) {
	w := MustWell(0, 0, 1.0, 2.0, 3.0, 4.0)

	values, err := w.Window(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, values)

	values[0] = 100
	v, _ := w.At(1)
	assert.Equal(t, 2.0, v)

	_, err = w.Window(3, 2)
	assert.True(t, merry.Is(err, ErrInvalidIndices))
}

func TestWellCloneIsDeep(t *testing.T) {
	w := MustWell(0, 0, big.NewInt(1), big.NewInt(2))
	c := w.Clone()
	require.True(t, c.Equal(w))

	c.Values()[0].SetInt64(42)
	c.Add(big.NewInt(3))

	v, _ := w.At(0)
	assert.Equal(t, "1", v.String())
	assert.Equal(t, 2, w.Len())
}
