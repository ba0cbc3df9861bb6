package helper

import (
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microflex/microflex/pkg/plate"
)

func TestWindow(t *testing.T) {
	var zero Window
	values := []int{1, 2, 3, 4}

	got, err := Slice(zero, values)
	require.NoError(t, err)
	assert.Equal(t, values, got)

	tests := []struct {
		name     string
		begin    int
		length   int
		expected []int
		err      error
	}{
		{name: "middle", begin: 1, length: 2, expected: []int{2, 3}},
		{name: "empty", begin: 4, length: 0, expected: []int{}},
		{name: "whole", begin: 0, length: 4, expected: []int{1, 2, 3, 4}},
		{name: "past end", begin: 3, length: 2, err: plate.ErrInvalidIndices},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win, err := NewWindow(tt.begin, tt.length)
			require.NoError(t, err)
			assert.True(t, win.IsSet())
			got, err := Slice(win, values)
			if tt.err != nil {
				assert.True(t, merry.Is(err, tt.err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err = NewWindow(-1, 2)
	assert.True(t, merry.Is(err, plate.ErrInvalidIndices))
}

func TestFlatten(t *testing.T) {
	wells := []*plate.Well[int]{
		plate.MustWell(0, 0, 1, 2, 3),
		plate.MustWell(0, 1, 4, 5, 6),
	}
	got, err := Flatten(Window{}, wells)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)

	win, _ := NewWindow(2, 1)
	got, err = Flatten(win, wells)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6}, got)

	_, err = Flatten(Window{}, []*plate.Well[int]{nil})
	assert.True(t, merry.Is(err, plate.ErrNilArgument))

	s := plate.MustStack(2, 2, "s",
		plate.MustPlate(2, 2, "P2", plate.MustWell(1, 1, 7)),
		plate.MustPlate(2, 2, "P1", plate.MustWell(0, 0, 8)),
	)
	all, err := StackWells(s)
	require.NoError(t, err)
	got, err = Flatten(Window{}, all)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 7}, got)
}

func sum(a, b *plate.Well[int]) (*plate.Well[int], error) {
	out := make([]int, max(a.Len(), b.Len()))
	for i, v := range a.Values() {
		out[i] += v
	}
	for i, v := range b.Values() {
		out[i] += v
	}
	return a.WithData(out), nil
}

func clone(w *plate.Well[int]) (*plate.Well[int], error) { return w.Clone(), nil }

func TestMergeSets(t *testing.T) {
	a := plate.NewWellSet("A", plate.MustWell(0, 0, 1), plate.MustWell(0, 2, 2), plate.MustWell(1, 0, 3))
	b := plate.NewWellSet("B", plate.MustWell(0, 1, 10), plate.MustWell(0, 2, 20), plate.MustWell(2, 2, 30))

	got, err := MergeSets(Standard, a, b, sum, clone)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Label())
	assert.Equal(t, []plate.Position{
		plate.Pos(0, 0), plate.Pos(0, 1), plate.Pos(0, 2), plate.Pos(1, 0), plate.Pos(2, 2),
	}, got.Positions())
	w, _ := got.Get(plate.Pos(0, 2))
	assert.Equal(t, []int{22}, w.Data())

	got, err = MergeSets(Strict, a, b, sum, clone)
	require.NoError(t, err)
	assert.Equal(t, []plate.Position{plate.Pos(0, 2)}, got.Positions())

	boom := merry.New("boom")
	_, err = MergeSets(Standard, a, b, sum, func(*plate.Well[int]) (*plate.Well[int], error) { return nil, boom })
	assert.True(t, merry.Is(err, boom))

	_, err = MergeSets(Standard, a, nil, sum, clone)
	assert.True(t, merry.Is(err, plate.ErrNilArgument))
}

func TestMergeGroups(t *testing.T) {
	a := []plate.Group{
		{Label: "ctrl", Positions: []plate.Position{plate.Pos(0, 0), plate.Pos(0, 1)}},
		{Label: "only-a", Positions: []plate.Position{plate.Pos(1, 1)}},
	}
	b := []plate.Group{
		{Label: "only-b", Positions: []plate.Position{plate.Pos(2, 2)}},
		{Label: "ctrl", Positions: []plate.Position{plate.Pos(0, 1), plate.Pos(0, 2)}},
	}

	standard := MergeGroups(Standard, a, b)
	require.Len(t, standard, 3)
	assert.Equal(t, "ctrl", standard[0].Label)
	assert.ElementsMatch(t, []plate.Position{plate.Pos(0, 0), plate.Pos(0, 1), plate.Pos(0, 1), plate.Pos(0, 2)}, standard[0].Positions)
	assert.Equal(t, "only-a", standard[1].Label)
	assert.Equal(t, "only-b", standard[2].Label)

	strict := MergeGroups(Strict, a, b)
	require.Len(t, strict, 1)
	assert.Equal(t, []plate.Position{plate.Pos(0, 1)}, strict[0].Positions)

	assert.Equal(t, []plate.Position{plate.Pos(0, 0), plate.Pos(0, 1)}, a[0].Positions, "inputs are not modified")
}

func TestMergePlates(t *testing.T) {
	a := plate.MustPlate(3, 3, "A", plate.MustWell(0, 0, 1))
	b := plate.MustPlate(3, 3, "B", plate.MustWell(0, 0, 2), plate.MustWell(2, 2, 5))
	require.NoError(t, a.AddGroup("ctrl", plate.Pos(0, 0)))
	require.NoError(t, b.AddGroup("ctrl", plate.Pos(2, 2)))

	merge := func(policy Policy) SetFunc[int] {
		return func(x, y *plate.WellSet[int]) (*plate.WellSet[int], error) {
			return MergeSets(policy, x, y, sum, clone)
		}
	}

	got, err := MergePlates(Standard, a, b, merge(Standard))
	require.NoError(t, err)
	assert.Equal(t, "A", got.Label())
	assert.Equal(t, 2, got.Len())
	g, err := got.Group("ctrl")
	require.NoError(t, err)
	assert.Equal(t, []plate.Position{plate.Pos(0, 0), plate.Pos(2, 2)}, g.Positions)

	got, err = MergePlates(Strict, a, b, merge(Strict))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
	g, err = got.Group("ctrl")
	require.NoError(t, err)
	assert.Empty(t, g.Positions)

	_, err = MergePlates(Standard, a, plate.MustPlate[int](2, 3, "C"), merge(Standard))
	assert.True(t, merry.Is(err, plate.ErrDimensionMismatch))
}

func TestMergeStacks(t *testing.T) {
	p := func(label string, v int) *plate.Plate[int] {
		return plate.MustPlate(2, 2, label, plate.MustWell(0, 0, v))
	}
	a := plate.MustStack(2, 2, "A", p("P1", 1), p("P2", 2), p("P3", 3))
	b := plate.MustStack(2, 2, "B", p("Q1", 10))

	merge := func(x, y *plate.Plate[int]) (*plate.Plate[int], error) {
		return MergePlates(Standard, x, y, func(s, o *plate.WellSet[int]) (*plate.WellSet[int], error) {
			return MergeSets(Standard, s, o, sum, clone)
		})
	}
	pass := func(x *plate.Plate[int]) (*plate.Plate[int], error) { return x.Clone(), nil }

	got, err := MergeStacks(Standard, a, b, merge, pass)
	require.NoError(t, err)
	require.Equal(t, 3, got.Len())
	first, _ := got.At(0)
	assert.Equal(t, "P1", first.Label())
	w, _ := first.Get(plate.Pos(0, 0))
	assert.Equal(t, []int{11}, w.Data())

	got, err = MergeStacks(Strict, a, b, merge, pass)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())

	got, err = MergeStacks(Standard, b, a, merge, pass)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Label())
	assert.Equal(t, 3, got.Len())

	_, err = MergeStacks(Standard, a, plate.MustStack[int](3, 3, "C"), merge, pass)
	assert.True(t, merry.Is(err, plate.ErrDimensionMismatch))

	// P1 merged with P0 keeps label P1 and collides with the passed through P1
	c := plate.MustStack(2, 2, "C", p("P1", 1))
	d := plate.MustStack(2, 2, "D", p("P0", 5), p("P1", 7))
	_, err = MergeStacks(Standard, c, d, merge, pass)
	assert.True(t, merry.Is(err, plate.ErrDuplicatePlate))
	got, err = MergeStacks(Strict, c, d, merge, pass)
	require.NoError(t, err)
	first, _ = got.At(0)
	w, _ = first.Get(plate.Pos(0, 0))
	assert.Equal(t, []int{6}, w.Data())
}
