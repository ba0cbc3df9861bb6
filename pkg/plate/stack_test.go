package plate

import (
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackRejectsDimensionMismatch(t *testing.T) {
	s, err := NewStack[float64](8, 12, "stack")
	require.NoError(t, err)

	err = s.Add(
		MustPlate[float64](8, 12, "Plate1"),
		MustPlate[float64](16, 24, "Big"),
		MustPlate[float64](8, 12, "Plate2"),
	)
	assert.True(t, merry.Is(err, ErrDimensionMismatch))
	assert.Equal(t, 2, s.Len())

	err = s.Add(MustPlate[float64](8, 12, "Plate1"))
	assert.True(t, merry.Is(err, ErrDuplicatePlate))
	assert.Equal(t, 2, s.Len())

	assert.True(t, merry.Is(s.Add(nil), ErrNilArgument))
}

func TestStackOrderAndLookup(t *testing.T) {
	s := MustStack(2, 2, "stack",
		MustPlate[int](2, 2, "Plate10"),
		MustPlate[int](2, 2, "Plate2"),
		MustPlate[int](2, 2, "Plate1"),
	)

	var labels []string
	for p := range s.All() {
		labels = append(labels, p.Label())
	}
	assert.Equal(t, []string{"Plate1", "Plate2", "Plate10"}, labels)

	p, ok := s.Get("Plate2")
	require.True(t, ok)
	assert.True(t, s.Contains(p))

	first, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, "Plate1", first.Label())
	_, err = s.At(3)
	assert.True(t, merry.Is(err, ErrInvalidIndices))

	err = s.Remove("Plate2", "Missing")
	assert.True(t, merry.Is(err, ErrPlateNotFound))
	assert.Equal(t, 2, s.Len())
}

func TestStackCloneRoundTrip(t *testing.T) {
	s := MustStack(2, 2, "stack", MustPlate(2, 2, "Plate1", MustWell(0, 0, 1.0)))
	c := s.Clone()
	assert.True(t, s.Equal(c))

	p, _ := c.Get("Plate1")
	w, _ := p.Get(Pos(0, 0))
	w.Add(2)
	require.NoError(t, c.Add(MustPlate[float64](2, 2, "Plate2")))

	orig, _ := s.Get("Plate1")
	ow, _ := orig.Get(Pos(0, 0))
	assert.Equal(t, []float64{1}, ow.Data())
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Equal(c))
}

func TestStackOwnsItsPlates(t *testing.T) {
	p := MustPlate(2, 2, "Plate2", MustWell(0, 0, 1.0))
	s := MustStack(2, 2, "stack", MustPlate[float64](2, 2, "Plate1"), p, MustPlate[float64](2, 2, "Plate3"))

	p.SetLabel("Plate0")
	require.NoError(t, p.Add(MustWell(1, 1, 2.0)))

	got, ok := s.Get("Plate2")
	require.True(t, ok)
	assert.Equal(t, 1, got.Len())
	_, ok = s.Get("Plate0")
	assert.False(t, ok)

	assert.True(t, s.Contains(MustPlate(2, 2, "Plate2", MustWell(0, 0, 0.0))))
	assert.True(t, merry.Is(s.Add(MustPlate(2, 2, "Plate2", MustWell(0, 0, 5.0))), ErrDuplicatePlate))
	require.NoError(t, s.Add(p))
	first, _ := s.At(0)
	assert.Equal(t, "Plate0", first.Label())
}
