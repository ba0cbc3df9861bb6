// Package plate models laboratory microplates.
//
// A Well holds an ordered series of values at a position, a WellSet is a
// position ordered collection of wells with set algebra, a Plate is a fixed
// grid owning one WellSet plus named groups, and a Stack is an ordered
// collection of plates sharing the same dimensions.
//
// Wells are identified, compared and ordered by position only; their data
// never takes part in equality. Containers are not safe for concurrent
// mutation.
package plate

import (
	"math/big"
	"slices"

	"github.com/ansel1/merry"
)

// Well is a position on a plate holding an ordered series of values.
type Well[T any] struct {
	pos  Position
	data []T
}

// NewWell creates a well at row and column holding a copy of values.
func NewWell[T any](row, column int, values ...T) (*Well[T], error) {
	p := Position{Row: row, Column: column}
	if !p.Valid() {
		return nil, ErrInvalidPosition.Here().Appendf("row=%d column=%d", row, column)
	}
	return &Well[T]{pos: p, data: slices.Clone(values)}, nil
}

// NewWellID creates a well from a spreadsheet style id such as "B3".
func NewWellID[T any](id string, values ...T) (*Well[T], error) {
	p, err := ParsePosition(id)
	if err != nil {
		return nil, err
	}
	return &Well[T]{pos: p, data: slices.Clone(values)}, nil
}

// MustWell is NewWell for positions known to be valid; it panics otherwise.
func MustWell[T any](row, column int, values ...T) *Well[T] {
	w, err := NewWell(row, column, values...)
	if err != nil {
		panic(err)
	}
	return w
}

func (w *Well[T]) Position() Position { return w.pos }
func (w *Well[T]) Row() int           { return w.pos.Row }
func (w *Well[T]) Column() int        { return w.pos.Column }

// ID returns the spreadsheet style id of the well.
func (w *Well[T]) ID() string { return w.pos.String() }

func (w *Well[T]) String() string { return w.pos.String() }

// Len returns the number of values held.
func (w *Well[T]) Len() int { return len(w.data) }

// Data returns a copy of the values.
func (w *Well[T]) Data() []T { return cloneValues(w.data) }

// Values returns the backing slice. Callers must not modify or retain it.
func (w *Well[T]) Values() []T { return w.data }

// At returns the i-th value.
func (w *Well[T]) At(i int) (T, error) {
	if i < 0 || i >= len(w.data) {
		var zero T
		return zero, ErrInvalidIndices.Here().Appendf("index %d, well %s holds %d values", i, w.pos, len(w.data))
	}
	return w.data[i], nil
}

// Window returns a copy of the values in [begin, begin+length).
func (w *Well[T]) Window(begin, length int) ([]T, error) {
	if err := ValidateWindow(len(w.data), begin, length); err != nil {
		return nil, merryWell(err, w)
	}
	return cloneValues(w.data[begin : begin+length]), nil
}

// Add appends values.
func (w *Well[T]) Add(values ...T) {
	w.data = append(w.data, values...)
}

// Set replaces the i-th value.
func (w *Well[T]) Set(i int, v T) error {
	if i < 0 || i >= len(w.data) {
		return ErrInvalidIndices.Here().Appendf("index %d, well %s holds %d values", i, w.pos, len(w.data))
	}
	w.data[i] = v
	return nil
}

// Replace replaces all values with a copy of values.
func (w *Well[T]) Replace(values []T) {
	w.data = slices.Clone(values)
}

// RemoveAt removes the i-th value.
func (w *Well[T]) RemoveAt(i int) error {
	if i < 0 || i >= len(w.data) {
		return ErrInvalidIndices.Here().Appendf("index %d, well %s holds %d values", i, w.pos, len(w.data))
	}
	w.data = slices.Delete(w.data, i, i+1)
	return nil
}

// RemoveRange removes the values in [begin, begin+length).
func (w *Well[T]) RemoveRange(begin, length int) error {
	if err := ValidateWindow(len(w.data), begin, length); err != nil {
		return merryWell(err, w)
	}
	w.data = slices.Delete(w.data, begin, begin+length)
	return nil
}

// RetainRange keeps only the values in [begin, begin+length).
func (w *Well[T]) RetainRange(begin, length int) error {
	if err := ValidateWindow(len(w.data), begin, length); err != nil {
		return merryWell(err, w)
	}
	w.data = slices.Clone(w.data[begin : begin+length])
	return nil
}

// RemoveFunc removes every value for which del returns true and reports how
// many were removed.
func (w *Well[T]) RemoveFunc(del func(T) bool) int {
	n := len(w.data)
	w.data = slices.DeleteFunc(w.data, del)
	return n - len(w.data)
}

// RetainFunc keeps only the values for which keep returns true and reports
// how many were removed.
func (w *Well[T]) RetainFunc(keep func(T) bool) int {
	return w.RemoveFunc(func(v T) bool { return !keep(v) })
}

// Clear removes all values.
func (w *Well[T]) Clear() {
	w.data = nil
}

// Clone returns a deep copy of the well.
func (w *Well[T]) Clone() *Well[T] {
	return &Well[T]{pos: w.pos, data: cloneValues(w.data)}
}

// WithData returns a well at the same position holding values (not copied).
func (w *Well[T]) WithData(values []T) *Well[T] {
	return &Well[T]{pos: w.pos, data: values}
}

// Equal reports whether both wells are at the same position.
func (w *Well[T]) Equal(o *Well[T]) bool {
	if w == nil || o == nil {
		return w == o
	}
	return w.pos == o.pos
}

// Compare orders wells by position.
func (w *Well[T]) Compare(o *Well[T]) int {
	return w.pos.Compare(o.pos)
}

// cloneValues copies values; *big.Int elements are copied too since they are
// the only supported value type with shared mutable state.
func cloneValues[T any](values []T) []T {
	if values == nil {
		return nil
	}
	out := slices.Clone(values)
	if ints, ok := any(out).([]*big.Int); ok {
		for i, v := range ints {
			if v != nil {
				ints[i] = new(big.Int).Set(v)
			}
		}
	}
	return out
}

func merryWell[T any](err error, w *Well[T]) error {
	return merry.Appendf(err, "well %s", w.pos)
}
