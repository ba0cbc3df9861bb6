package helper

import (
	"slices"

	"github.com/ansel1/merry"

	"github.com/microflex/microflex/pkg/plate"
)

// Policy decides how two containers of different shape are combined.
type Policy int

const (
	// Standard zero-fills missing values and passes through wells and
	// plates present in only one operand.
	Standard Policy = iota
	// Strict combines only what both operands hold and drops the rest.
	Strict
)

func (p Policy) String() string {
	if p == Strict {
		return "strict"
	}
	return "standard"
}

// WellFunc combines the data of two wells at the same position.
type WellFunc[T any] func(a, b *plate.Well[T]) (*plate.Well[T], error)

// PassFunc produces the result for a well present in only one operand.
type PassFunc[T any] func(w *plate.Well[T]) (*plate.Well[T], error)

// MergeSets combines the wells of a and b position by position. Under
// Standard wells found in only one set are handed to pass; under Strict they
// are dropped. The result carries the label of a.
func MergeSets[T any](policy Policy, a, b *plate.WellSet[T], combine WellFunc[T], pass PassFunc[T]) (*plate.WellSet[T], error) {
	if a == nil || b == nil {
		return nil, plate.ErrNilArgument.Here().Append("well set")
	}
	x, y := a.Wells(), b.Wells()
	out := make([]*plate.Well[T], 0, max(len(x), len(y)))

	emit := func(w *plate.Well[T], err error) error {
		if err != nil {
			return err
		}
		out = append(out, w)
		return nil
	}

	i, j := 0, 0
	for i < len(x) || j < len(y) {
		var err error
		switch {
		case j == len(y) || (i < len(x) && x[i].Compare(y[j]) < 0):
			if policy == Standard {
				err = emit(pass(x[i]))
			}
			i++
		case i == len(x) || x[i].Compare(y[j]) > 0:
			if policy == Standard {
				err = emit(pass(y[j]))
			}
			j++
		default:
			err = emit(combine(x[i], y[j]))
			i++
			j++
		}
		if err != nil {
			return nil, err
		}
	}
	return plate.NewWellSet(a.Label(), out...), nil
}

// MergeGroups merges the groups of two plates. Standard keeps every label
// with the union of the positions, Strict keeps labels defined on both
// plates with the intersection of the positions.
func MergeGroups(policy Policy, a, b []plate.Group) []plate.Group {
	var out []plate.Group
	for _, g := range a {
		i := slices.IndexFunc(b, func(o plate.Group) bool { return o.Label == g.Label })
		switch {
		case i >= 0 && policy == Standard:
			out = append(out, plate.Group{Label: g.Label, Positions: append(slices.Clone(g.Positions), b[i].Positions...)})
		case i >= 0:
			out = append(out, plate.Group{Label: g.Label, Positions: slices.DeleteFunc(slices.Clone(g.Positions), func(p plate.Position) bool {
				return !b[i].Contains(p)
			})})
		case policy == Standard:
			out = append(out, g.Clone())
		}
	}
	if policy == Standard {
		for _, g := range b {
			if !slices.ContainsFunc(a, func(o plate.Group) bool { return o.Label == g.Label }) {
				out = append(out, g.Clone())
			}
		}
	}
	return out
}

// SetFunc combines the data sets of two plates.
type SetFunc[T any] func(a, b *plate.WellSet[T]) (*plate.WellSet[T], error)

// MergePlates combines two plates of the same dimensions. The result has the
// dimensions and label of a and the merged groups of both.
func MergePlates[T any](policy Policy, a, b *plate.Plate[T], merge SetFunc[T]) (*plate.Plate[T], error) {
	if a == nil || b == nil {
		return nil, plate.ErrNilArgument.Here().Append("plate")
	}
	if err := plate.ValidateSameDimensions(a.Rows(), a.Columns(), b.Rows(), b.Columns()); err != nil {
		return nil, merry.Appendf(err, "plates %q and %q", a.Label(), b.Label())
	}
	s, err := merge(a.Set(), b.Set())
	if err != nil {
		return nil, merry.Appendf(err, "plate %q", a.Label())
	}
	p := a.WithSet(s)
	if err := p.SetGroups(MergeGroups(policy, a.Groups(), b.Groups())); err != nil {
		return nil, err
	}
	return p, nil
}

// PlateFunc combines two plates.
type PlateFunc[T any] func(a, b *plate.Plate[T]) (*plate.Plate[T], error)

// PlatePassFunc produces the result for a plate present in only one stack.
type PlatePassFunc[T any] func(p *plate.Plate[T]) (*plate.Plate[T], error)

// MergeStacks pairs the plates of a and b by their index in stack order.
// Under Standard the plates beyond the shorter stack are handed to pass;
// under Strict they are dropped. Two results comparing equal fail with
// ErrDuplicatePlate rather than losing one of them.
func MergeStacks[T any](policy Policy, a, b *plate.Stack[T], merge PlateFunc[T], pass PlatePassFunc[T]) (*plate.Stack[T], error) {
	if a == nil || b == nil {
		return nil, plate.ErrNilArgument.Here().Append("stack")
	}
	if err := plate.ValidateSameDimensions(a.Rows(), a.Columns(), b.Rows(), b.Columns()); err != nil {
		return nil, merry.Appendf(err, "stacks %q and %q", a.Label(), b.Label())
	}
	x, y := a.Plates(), b.Plates()
	out, err := plate.NewStack[T](a.Rows(), a.Columns(), a.Label())
	if err != nil {
		return nil, err
	}

	add := func(p *plate.Plate[T], err error) error {
		if err != nil {
			return err
		}
		return out.Add(p)
	}

	for i := range max(len(x), len(y)) {
		switch {
		case i < len(x) && i < len(y):
			err = add(merge(x[i], y[i]))
		case policy == Strict:
			return out, nil
		case i < len(x):
			err = add(pass(x[i]))
		default:
			err = add(pass(y[i]))
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
