package plate

import (
	"iter"
	"slices"
	"strings"

	"github.com/maruel/natural"
)

// WellSet is a labeled collection of wells, unique and ordered by position.
type WellSet[T any] struct {
	label string
	wells []*Well[T]
}

// NewWellSet creates a set holding wells. Later wells at a position already
// taken are ignored.
func NewWellSet[T any](label string, wells ...*Well[T]) *WellSet[T] {
	s := &WellSet[T]{label: label}
	for _, w := range wells {
		if w != nil {
			s.insert(w, false)
		}
	}
	return s
}

func (s *WellSet[T]) Label() string         { return s.label }
func (s *WellSet[T]) SetLabel(label string) { s.label = label }

// Len returns the number of wells.
func (s *WellSet[T]) Len() int { return len(s.wells) }

func (s *WellSet[T]) search(p Position) (int, bool) {
	return slices.BinarySearchFunc(s.wells, p, func(w *Well[T], p Position) int {
		return w.pos.Compare(p)
	})
}

// insert adds w, replacing an existing well at the same position when
// replace is set. It reports whether w was stored.
func (s *WellSet[T]) insert(w *Well[T], replace bool) bool {
	i, found := s.search(w.pos)
	if found {
		if replace {
			s.wells[i] = w
		}
		return replace
	}
	s.wells = slices.Insert(s.wells, i, w)
	return true
}

// Add inserts wells. Wells at positions already present are not inserted and
// reported with ErrDuplicateWell; the others are still added.
func (s *WellSet[T]) Add(wells ...*Well[T]) error {
	var dups []string
	for _, w := range wells {
		if w == nil {
			return ErrNilArgument.Here().Append("well")
		}
		if !s.insert(w, false) {
			dups = append(dups, w.ID())
		}
	}
	if len(dups) > 0 {
		return ErrDuplicateWell.Here().Appendf("set %q: %s", s.label, strings.Join(dups, ","))
	}
	return nil
}

// Replace inserts wells, replacing any well already at the same position.
func (s *WellSet[T]) Replace(wells ...*Well[T]) error {
	for _, w := range wells {
		if w == nil {
			return ErrNilArgument.Here().Append("well")
		}
		s.insert(w, true)
	}
	return nil
}

// Remove deletes the wells at positions. Missing positions are reported with
// ErrWellNotFound after the present ones have been removed.
func (s *WellSet[T]) Remove(positions ...Position) error {
	var missing []string
	for _, p := range positions {
		i, found := s.search(p)
		if !found {
			missing = append(missing, p.String())
			continue
		}
		s.wells = slices.Delete(s.wells, i, i+1)
	}
	if len(missing) > 0 {
		return ErrWellNotFound.Here().Appendf("set %q: %s", s.label, strings.Join(missing, ","))
	}
	return nil
}

// Get returns the well at p.
func (s *WellSet[T]) Get(p Position) (*Well[T], bool) {
	i, found := s.search(p)
	if !found {
		return nil, false
	}
	return s.wells[i], true
}

// GetID returns the well with the given spreadsheet style id.
func (s *WellSet[T]) GetID(id string) (*Well[T], bool) {
	p, err := ParsePosition(id)
	if err != nil {
		return nil, false
	}
	return s.Get(p)
}

// Contains reports whether a well is stored at p.
func (s *WellSet[T]) Contains(p Position) bool {
	_, found := s.search(p)
	return found
}

// Wells returns the wells in position order. The slice is a copy, the wells
// are not.
func (s *WellSet[T]) Wells() []*Well[T] { return slices.Clone(s.wells) }

// All iterates over the wells in position order.
func (s *WellSet[T]) All() iter.Seq[*Well[T]] {
	return func(yield func(*Well[T]) bool) {
		for _, w := range s.wells {
			if !yield(w) {
				return
			}
		}
	}
}

// Positions returns the positions of all wells in order.
func (s *WellSet[T]) Positions() []Position {
	out := make([]Position, len(s.wells))
	for i, w := range s.wells {
		out[i] = w.pos
	}
	return out
}

// Union adds the wells of o at positions not yet present. Wells are shared,
// not cloned.
func (s *WellSet[T]) Union(o *WellSet[T]) {
	for _, w := range o.wells {
		s.insert(w, false)
	}
}

// Difference removes every well whose position is present in o.
func (s *WellSet[T]) Difference(o *WellSet[T]) {
	s.wells = slices.DeleteFunc(s.wells, func(w *Well[T]) bool {
		return o.Contains(w.pos)
	})
}

// Intersection keeps only the wells whose position is present in o.
func (s *WellSet[T]) Intersection(o *WellSet[T]) {
	s.wells = slices.DeleteFunc(s.wells, func(w *Well[T]) bool {
		return !o.Contains(w.pos)
	})
}

// Clear removes all wells.
func (s *WellSet[T]) Clear() { s.wells = nil }

// Clone returns a deep copy of the set and its wells.
func (s *WellSet[T]) Clone() *WellSet[T] {
	c := &WellSet[T]{label: s.label, wells: make([]*Well[T], len(s.wells))}
	for i, w := range s.wells {
		c.wells[i] = w.Clone()
	}
	return c
}

// Equal reports whether both sets have the same label and well positions.
func (s *WellSet[T]) Equal(o *WellSet[T]) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.label == o.label && slices.Equal(s.Positions(), o.Positions())
}

// Compare orders sets by natural label order, then by well positions.
func (s *WellSet[T]) Compare(o *WellSet[T]) int {
	if c := compareLabels(s.label, o.label); c != 0 {
		return c
	}
	return comparePositions(s.wells, o.wells)
}

func compareLabels(a, b string) int {
	switch {
	case a == b:
		return 0
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	}
	return strings.Compare(a, b)
}

func comparePositions[T any](a, b []*Well[T]) int {
	return slices.CompareFunc(a, b, func(x, y *Well[T]) int {
		return x.pos.Compare(y.pos)
	})
}
