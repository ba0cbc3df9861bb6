package plate

import (
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlateBounds(t *testing.T) {
	p, err := NewPlateFormat[float64](Format96, "Plate1")
	require.NoError(t, err)
	assert.Equal(t, 8, p.Rows())
	assert.Equal(t, 12, p.Columns())
	assert.Equal(t, 96, p.Size())

	require.NoError(t, p.Add(MustWell(7, 11, 1.0)))

	err = p.Add(MustWell(0, 0, 1.0), MustWell(8, 0, 1.0))
	assert.True(t, merry.Is(err, ErrOutOfBounds))
	assert.Equal(t, 1, p.Len(), "nothing is inserted when a well is out of bounds")

	_, err = NewPlate[float64](0, 12, "bad")
	assert.True(t, merry.Is(err, ErrInvalidDimensions))
}

func TestPlateFormats(t *testing.T) {
	tests := []struct {
		wells         int
		rows, columns int
	}{
		{6, 2, 3},
		{12, 3, 4},
		{24, 4, 6},
		{48, 6, 8},
		{96, 8, 12},
		{384, 16, 24},
		{1536, 32, 48},
	}

	for _, tt := range tests {
		f, err := FormatOf(tt.wells)
		require.NoError(t, err)
		assert.Equal(t, tt.rows, f.Rows)
		assert.Equal(t, tt.columns, f.Columns)
		assert.Equal(t, tt.wells, f.Rows*f.Columns)
	}

	_, err := FormatOf(100)
	assert.True(t, merry.Is(err, ErrInvalidDimensions))
}

func TestPlateGroups(t *testing.T) {
	p := MustPlate(8, 12, "Plate1", MustWell(0, 0, 1), MustWell(0, 1, 2), MustWell(1, 0, 3))

	require.NoError(t, p.AddGroup("controls", Pos(0, 1), Pos(0, 0), Pos(5, 5)))
	assert.True(t, merry.Is(p.AddGroup("controls"), ErrDuplicateGroup))
	assert.True(t, merry.Is(p.AddGroup("outside", Pos(8, 0)), ErrOutOfBounds))

	g, err := p.Group("controls")
	require.NoError(t, err)
	assert.Equal(t, []Position{Pos(0, 0), Pos(0, 1), Pos(5, 5)}, g.Positions)
	assert.True(t, g.Contains(Pos(5, 5)))

	s, err := p.GroupWells("controls")
	require.NoError(t, err)
	assert.Equal(t, []Position{Pos(0, 0), Pos(0, 1)}, s.Positions())

	_, err = p.GroupWells("samples")
	assert.True(t, merry.Is(err, ErrGroupNotFound))

	require.NoError(t, p.RemoveGroup("controls"))
	assert.Empty(t, p.Groups())
	assert.Equal(t, 3, p.Len())
}

func TestPlateCloneRoundTrip(t *testing.T) {
	p := MustPlate(8, 12, "Plate1", MustWell(0, 0, 1.0), MustWell(3, 4, 2.0))
	require.NoError(t, p.AddGroup("g", Pos(0, 0)))

	c := p.Clone()
	assert.True(t, p.Equal(c))
	assert.Equal(t, p.Groups(), c.Groups())

	w, _ := c.Get(Pos(0, 0))
	w.Add(5)
	require.NoError(t, c.Remove(Pos(3, 4)))
	require.NoError(t, c.AddGroup("h"))

	orig, _ := p.Get(Pos(0, 0))
	assert.Equal(t, []float64{1}, orig.Data())
	assert.Equal(t, 2, p.Len())
	assert.Len(t, p.Groups(), 1)
}

func TestPlateCompare(t *testing.T) {
	a := MustPlate[int](8, 12, "Plate2")
	b := MustPlate[int](8, 12, "Plate10")
	c := MustPlate[int](16, 24, "Plate1")
	d := MustPlate(8, 12, "Plate2", MustWell[int](0, 0))

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(c))
	assert.Equal(t, -1, a.Compare(d))
	assert.Equal(t, "Plate2[8x12]", a.String())
}

func TestPlateRetain(t *testing.T) {
	p := MustPlate(2, 2, "p", MustWell(0, 0, 1), MustWell(0, 1, 2), MustWell(1, 1, 3))
	p.Retain(Pos(1, 1), Pos(0, 0))
	assert.Equal(t, []Position{Pos(0, 0), Pos(1, 1)}, p.Set().Positions())
}
