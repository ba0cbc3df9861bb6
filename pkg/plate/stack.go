package plate

import (
	"cmp"
	"iter"
	"slices"
	"strings"
)

// Stack is an ordered collection of unique plates sharing the same
// dimensions, kept in natural order. The stack stores copies of the plates
// added to it. Plates returned by At, Get, Plates and All are the members
// themselves: changing their values is fine, changing their label or well
// positions breaks the order.
type Stack[T any] struct {
	rows    int
	columns int
	label   string
	plates  []*Plate[T]
}

// NewStack creates an empty stack for rows x columns plates.
func NewStack[T any](rows, columns int, label string) (*Stack[T], error) {
	if err := ValidateDimensions(rows, columns); err != nil {
		return nil, err
	}
	return &Stack[T]{rows: rows, columns: columns, label: label}, nil
}

// MustStack is NewStack followed by Add; it panics on error.
func MustStack[T any](rows, columns int, label string, plates ...*Plate[T]) *Stack[T] {
	s, err := NewStack[T](rows, columns, label)
	if err != nil {
		panic(err)
	}
	if err := s.Add(plates...); err != nil {
		panic(err)
	}
	return s
}

func (s *Stack[T]) Rows() int             { return s.rows }
func (s *Stack[T]) Columns() int          { return s.columns }
func (s *Stack[T]) Label() string         { return s.label }
func (s *Stack[T]) SetLabel(label string) { s.label = label }
func (s *Stack[T]) Len() int              { return len(s.plates) }

// Plates returns the plates in stack order. The slice is a copy, the plates
// are not.
func (s *Stack[T]) Plates() []*Plate[T] { return slices.Clone(s.plates) }

// All iterates over the plates in stack order.
func (s *Stack[T]) All() iter.Seq[*Plate[T]] {
	return func(yield func(*Plate[T]) bool) {
		for _, p := range s.plates {
			if !yield(p) {
				return
			}
		}
	}
}

// Add inserts plates. Plates with other dimensions fail with
// ErrDimensionMismatch and plates equal to a member with ErrDuplicatePlate;
// the remaining plates of the call are inserted regardless. Each plate is
// cloned, so later changes to it do not reach the stack.
func (s *Stack[T]) Add(plates ...*Plate[T]) error {
	var mismatched, dups []string
	for _, p := range plates {
		if p == nil {
			return ErrNilArgument.Here().Append("plate")
		}
		if ValidateSameDimensions(s.rows, s.columns, p.rows, p.columns) != nil {
			mismatched = append(mismatched, p.String())
			continue
		}
		i, found := slices.BinarySearchFunc(s.plates, p, (*Plate[T]).Compare)
		if found {
			dups = append(dups, p.String())
			continue
		}
		s.plates = slices.Insert(s.plates, i, p.Clone())
	}
	if len(mismatched) > 0 {
		return ErrDimensionMismatch.Here().Appendf("stack %q is %dx%d: %s", s.label, s.rows, s.columns, strings.Join(mismatched, ","))
	}
	if len(dups) > 0 {
		return ErrDuplicatePlate.Here().Appendf("stack %q: %s", s.label, strings.Join(dups, ","))
	}
	return nil
}

// Get returns the first plate labeled label.
func (s *Stack[T]) Get(label string) (*Plate[T], bool) {
	i := slices.IndexFunc(s.plates, func(p *Plate[T]) bool { return p.label == label })
	if i < 0 {
		return nil, false
	}
	return s.plates[i], true
}

// At returns the i-th plate in stack order.
func (s *Stack[T]) At(i int) (*Plate[T], error) {
	if i < 0 || i >= len(s.plates) {
		return nil, ErrInvalidIndices.Here().Appendf("index %d, stack %q holds %d plates", i, s.label, len(s.plates))
	}
	return s.plates[i], nil
}

// Remove deletes the plates labeled labels. Missing labels are reported
// with ErrPlateNotFound after the present ones have been removed.
func (s *Stack[T]) Remove(labels ...string) error {
	var missing []string
	for _, label := range labels {
		n := len(s.plates)
		s.plates = slices.DeleteFunc(s.plates, func(p *Plate[T]) bool { return p.label == label })
		if len(s.plates) == n {
			missing = append(missing, label)
		}
	}
	if len(missing) > 0 {
		return ErrPlateNotFound.Here().Appendf("stack %q: %s", s.label, strings.Join(missing, ","))
	}
	return nil
}

// Contains reports whether a plate equal to p is a member.
func (s *Stack[T]) Contains(p *Plate[T]) bool {
	_, found := slices.BinarySearchFunc(s.plates, p, (*Plate[T]).Compare)
	return found
}

// Clear removes all plates.
func (s *Stack[T]) Clear() { s.plates = nil }

// Clone returns a deep copy of the stack and its plates.
func (s *Stack[T]) Clone() *Stack[T] {
	c := &Stack[T]{rows: s.rows, columns: s.columns, label: s.label, plates: make([]*Plate[T], len(s.plates))}
	for i, p := range s.plates {
		c.plates[i] = p.Clone()
	}
	return c
}

// Equal reports whether both stacks have the same dimensions, label and
// plates.
func (s *Stack[T]) Equal(o *Stack[T]) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Compare(o) == 0
}

// Compare orders stacks by rows, columns, natural label order, then plates.
func (s *Stack[T]) Compare(o *Stack[T]) int {
	if c := cmp.Compare(s.rows, o.rows); c != 0 {
		return c
	}
	if c := cmp.Compare(s.columns, o.columns); c != 0 {
		return c
	}
	if c := compareLabels(s.label, o.label); c != 0 {
		return c
	}
	return slices.CompareFunc(s.plates, o.plates, (*Plate[T]).Compare)
}
