// Package helper holds the traversal templates shared by the statistic and
// math engines: index windows over well data, flattening of containers and
// the standard and strict merges of two containers.
package helper

import (
	"github.com/ansel1/merry"

	"github.com/microflex/microflex/pkg/plate"
)

// Window restricts a computation to values [Begin, Begin+Length) of every
// well. The zero Window covers all values.
type Window struct {
	Begin  int
	Length int
	set    bool
}

// NewWindow returns the window [begin, begin+length).
func NewWindow(begin, length int) (Window, error) {
	if begin < 0 || length < 0 {
		return Window{}, plate.ErrInvalidIndices.Here().Appendf("begin=%d length=%d", begin, length)
	}
	return Window{Begin: begin, Length: length, set: true}, nil
}

// IsSet reports whether the window restricts anything.
func (w Window) IsSet() bool { return w.set }

// Slice returns the part of values covered by win. The result shares storage
// with values.
func Slice[T any](win Window, values []T) ([]T, error) {
	if !win.set {
		return values, nil
	}
	if err := plate.ValidateWindow(len(values), win.Begin, win.Length); err != nil {
		return nil, err
	}
	return values[win.Begin : win.Begin+win.Length], nil
}

// WellValues returns the part of the data of w covered by win.
func WellValues[T any](win Window, w *plate.Well[T]) ([]T, error) {
	if w == nil {
		return nil, plate.ErrNilArgument.Here().Append("well")
	}
	values, err := Slice(win, w.Values())
	if err != nil {
		return nil, merry.Appendf(err, "well %s", w.ID())
	}
	return values, nil
}

// Flatten concatenates the windowed data of wells in order.
func Flatten[T any](win Window, wells []*plate.Well[T]) ([]T, error) {
	n := 0
	for _, w := range wells {
		if w == nil {
			return nil, plate.ErrNilArgument.Here().Append("well")
		}
		n += w.Len()
	}
	out := make([]T, 0, n)
	for _, w := range wells {
		values, err := WellValues(win, w)
		if err != nil {
			return nil, err
		}
		out = append(out, values...)
	}
	return out, nil
}

// SetWells returns the wells of s, failing for a nil set.
func SetWells[T any](s *plate.WellSet[T]) ([]*plate.Well[T], error) {
	if s == nil {
		return nil, plate.ErrNilArgument.Here().Append("well set")
	}
	return s.Wells(), nil
}

// PlateWells returns the wells of p, failing for a nil plate.
func PlateWells[T any](p *plate.Plate[T]) ([]*plate.Well[T], error) {
	if p == nil {
		return nil, plate.ErrNilArgument.Here().Append("plate")
	}
	return p.Wells(), nil
}

// StackWells returns the wells of every plate of s in stack order.
func StackWells[T any](s *plate.Stack[T]) ([]*plate.Well[T], error) {
	if s == nil {
		return nil, plate.ErrNilArgument.Here().Append("stack")
	}
	var out []*plate.Well[T]
	for p := range s.All() {
		out = append(out, p.Wells()...)
	}
	return out, nil
}
