package plate

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/ansel1/merry"
)

// Format is a standard plate layout.
type Format struct {
	Wells   int
	Rows    int
	Columns int
}

// Standard plate formats.
var (
	Format6    = Format{Wells: 6, Rows: 2, Columns: 3}
	Format12   = Format{Wells: 12, Rows: 3, Columns: 4}
	Format24   = Format{Wells: 24, Rows: 4, Columns: 6}
	Format48   = Format{Wells: 48, Rows: 6, Columns: 8}
	Format96   = Format{Wells: 96, Rows: 8, Columns: 12}
	Format384  = Format{Wells: 384, Rows: 16, Columns: 24}
	Format1536 = Format{Wells: 1536, Rows: 32, Columns: 48}
)

var formats = []Format{Format6, Format12, Format24, Format48, Format96, Format384, Format1536}

// FormatOf returns the standard format holding wells wells.
func FormatOf(wells int) (Format, error) {
	for _, f := range formats {
		if f.Wells == wells {
			return f, nil
		}
	}
	return Format{}, ErrInvalidDimensions.Here().Appendf("no standard format with %d wells", wells)
}

// Group is a named subset of plate positions. It references positions, not
// wells, so it may name positions that hold no well yet.
type Group struct {
	Label     string
	Positions []Position
}

// Clone returns a copy of the group.
func (g Group) Clone() Group {
	return Group{Label: g.Label, Positions: slices.Clone(g.Positions)}
}

// Contains reports whether p belongs to the group.
func (g Group) Contains(p Position) bool {
	_, found := slices.BinarySearchFunc(g.Positions, p, Position.Compare)
	return found
}

func normalizePositions(ps []Position) []Position {
	out := slices.Clone(ps)
	slices.SortFunc(out, Position.Compare)
	return slices.Compact(out)
}

// Plate is a rows x columns grid of wells plus named groups of positions.
type Plate[T any] struct {
	rows    int
	columns int
	label   string
	wells   *WellSet[T]
	groups  []Group
}

// NewPlate creates an empty plate.
func NewPlate[T any](rows, columns int, label string) (*Plate[T], error) {
	if err := ValidateDimensions(rows, columns); err != nil {
		return nil, err
	}
	return &Plate[T]{
		rows:    rows,
		columns: columns,
		label:   label,
		wells:   NewWellSet[T](label),
	}, nil
}

// NewPlateFormat creates an empty plate of a standard format.
func NewPlateFormat[T any](f Format, label string) (*Plate[T], error) {
	return NewPlate[T](f.Rows, f.Columns, label)
}

// MustPlate is NewPlate for dimensions known to be valid; it panics otherwise.
func MustPlate[T any](rows, columns int, label string, wells ...*Well[T]) *Plate[T] {
	p, err := NewPlate[T](rows, columns, label)
	if err != nil {
		panic(err)
	}
	if err := p.Add(wells...); err != nil {
		panic(err)
	}
	return p
}

func (p *Plate[T]) Rows() int     { return p.rows }
func (p *Plate[T]) Columns() int  { return p.columns }
func (p *Plate[T]) Size() int     { return p.rows * p.columns }
func (p *Plate[T]) Label() string { return p.label }

func (p *Plate[T]) SetLabel(label string) {
	p.label = label
	p.wells.SetLabel(label)
}

// Len returns the number of wells holding data.
func (p *Plate[T]) Len() int { return p.wells.Len() }

// Set returns the data set of the plate. Changes to it bypass bounds checks.
func (p *Plate[T]) Set() *WellSet[T] { return p.wells }

// Wells returns the wells in position order.
func (p *Plate[T]) Wells() []*Well[T] { return p.wells.Wells() }

func (p *Plate[T]) Get(pos Position) (*Well[T], bool) { return p.wells.Get(pos) }
func (p *Plate[T]) GetID(id string) (*Well[T], bool)  { return p.wells.GetID(id) }
func (p *Plate[T]) Contains(pos Position) bool        { return p.wells.Contains(pos) }

func (p *Plate[T]) checkBounds(wells []*Well[T]) error {
	for _, w := range wells {
		if w == nil {
			return ErrNilArgument.Here().Append("well")
		}
		if err := ValidatePosition(p.rows, p.columns, w.pos); err != nil {
			return merryPlate(err, p)
		}
	}
	return nil
}

// Add inserts wells after checking all of them against the plate bounds.
func (p *Plate[T]) Add(wells ...*Well[T]) error {
	if err := p.checkBounds(wells); err != nil {
		return err
	}
	return p.wells.Add(wells...)
}

// AddSet inserts the wells of s.
func (p *Plate[T]) AddSet(s *WellSet[T]) error {
	if s == nil {
		return ErrNilArgument.Here().Append("well set")
	}
	return p.Add(s.wells...)
}

// Replace inserts wells, replacing any well already at the same position.
func (p *Plate[T]) Replace(wells ...*Well[T]) error {
	if err := p.checkBounds(wells); err != nil {
		return err
	}
	return p.wells.Replace(wells...)
}

// Remove deletes the wells at positions.
func (p *Plate[T]) Remove(positions ...Position) error {
	return p.wells.Remove(positions...)
}

// Retain keeps only the wells at positions.
func (p *Plate[T]) Retain(positions ...Position) {
	keep := normalizePositions(positions)
	p.wells.wells = slices.DeleteFunc(p.wells.wells, func(w *Well[T]) bool {
		_, found := slices.BinarySearchFunc(keep, w.pos, Position.Compare)
		return !found
	})
}

// Clear removes all wells; groups are kept.
func (p *Plate[T]) Clear() { p.wells.Clear() }

// AddGroup defines a named group of positions.
func (p *Plate[T]) AddGroup(label string, positions ...Position) error {
	if _, ok := p.groupIndex(label); ok {
		return ErrDuplicateGroup.Here().Appendf("group %q on plate %q", label, p.label)
	}
	for _, pos := range positions {
		if err := ValidatePosition(p.rows, p.columns, pos); err != nil {
			return merryPlate(err, p)
		}
	}
	p.groups = append(p.groups, Group{Label: label, Positions: normalizePositions(positions)})
	return nil
}

func (p *Plate[T]) groupIndex(label string) (int, bool) {
	i := slices.IndexFunc(p.groups, func(g Group) bool { return g.Label == label })
	return i, i >= 0
}

// Group returns the group named label.
func (p *Plate[T]) Group(label string) (Group, error) {
	i, ok := p.groupIndex(label)
	if !ok {
		return Group{}, ErrGroupNotFound.Here().Appendf("group %q on plate %q", label, p.label)
	}
	return p.groups[i].Clone(), nil
}

// Groups returns copies of all groups in definition order.
func (p *Plate[T]) Groups() []Group {
	out := make([]Group, len(p.groups))
	for i, g := range p.groups {
		out[i] = g.Clone()
	}
	return out
}

// RemoveGroup deletes the group named label. Wells are not affected.
func (p *Plate[T]) RemoveGroup(label string) error {
	i, ok := p.groupIndex(label)
	if !ok {
		return ErrGroupNotFound.Here().Appendf("group %q on plate %q", label, p.label)
	}
	p.groups = slices.Delete(p.groups, i, i+1)
	return nil
}

// GroupWells returns a set of the wells present at the positions of the group
// named label. The wells are shared with the plate.
func (p *Plate[T]) GroupWells(label string) (*WellSet[T], error) {
	i, ok := p.groupIndex(label)
	if !ok {
		return nil, ErrGroupNotFound.Here().Appendf("group %q on plate %q", label, p.label)
	}
	s := NewWellSet[T](label)
	for _, pos := range p.groups[i].Positions {
		if w, ok := p.wells.Get(pos); ok {
			s.wells = append(s.wells, w)
		}
	}
	return s, nil
}

// Clone returns a deep copy of the plate, its wells and its groups.
func (p *Plate[T]) Clone() *Plate[T] {
	return p.WithSet(p.wells.Clone())
}

// WithSet returns a plate with the dimensions, label and groups of p holding
// the wells of s. s is used as is and must fit the plate.
func (p *Plate[T]) WithSet(s *WellSet[T]) *Plate[T] {
	c := &Plate[T]{
		rows:    p.rows,
		columns: p.columns,
		label:   p.label,
		wells:   s,
		groups:  make([]Group, len(p.groups)),
	}
	s.SetLabel(p.label)
	for i, g := range p.groups {
		c.groups[i] = g.Clone()
	}
	return c
}

// SetGroups replaces all groups. Positions must lie on the plate.
func (p *Plate[T]) SetGroups(groups []Group) error {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		if slices.ContainsFunc(out, func(o Group) bool { return o.Label == g.Label }) {
			return ErrDuplicateGroup.Here().Appendf("group %q on plate %q", g.Label, p.label)
		}
		for _, pos := range g.Positions {
			if err := ValidatePosition(p.rows, p.columns, pos); err != nil {
				return merryPlate(err, p)
			}
		}
		out = append(out, Group{Label: g.Label, Positions: normalizePositions(g.Positions)})
	}
	p.groups = out
	return nil
}

// Equal reports whether both plates have the same dimensions, label and well
// positions.
func (p *Plate[T]) Equal(o *Plate[T]) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Compare(o) == 0
}

// Compare orders plates by rows, columns, natural label order, then well
// positions.
func (p *Plate[T]) Compare(o *Plate[T]) int {
	if c := cmp.Compare(p.rows, o.rows); c != 0 {
		return c
	}
	if c := cmp.Compare(p.columns, o.columns); c != 0 {
		return c
	}
	if c := compareLabels(p.label, o.label); c != 0 {
		return c
	}
	return comparePositions(p.wells.wells, o.wells.wells)
}

func (p *Plate[T]) String() string {
	return p.label + "[" + strconv.Itoa(p.rows) + "x" + strconv.Itoa(p.columns) + "]"
}

func merryPlate[T any](err error, p *Plate[T]) error {
	return merry.Appendf(err, "plate %q", p.label)
}
