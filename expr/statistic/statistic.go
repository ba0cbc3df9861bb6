// Package statistic lifts the sequence statistics of package stats over
// wells, well sets, plates and stacks.
//
// A Calculator either computes one value per well (Well, Set, Plate, Stack)
// or flattens the data of every well of a container into one sequence first
// (the Aggregated forms). Windows and weights apply to the data of every well
// before anything else happens.
package statistic

import (
	"slices"

	"github.com/ansel1/merry"

	"github.com/microflex/microflex/expr/helper"
	"github.com/microflex/microflex/expr/stats"
	"github.com/microflex/microflex/expr/types"
	"github.com/microflex/microflex/pkg/numeric"
	"github.com/microflex/microflex/pkg/plate"
)

// Func computes a statistic over a sequence of values.
type Func[T any] func(d numeric.Domain[T], values []T) (T, error)

// Calculator computes one statistic at every container level. It is
// immutable; Window and Weighted return configured copies.
type Calculator[T any] struct {
	d       numeric.Domain[T]
	name    string
	fn      Func[T]
	window  helper.Window
	weights []T
}

// New returns a calculator for fn.
func New[T any](d numeric.Domain[T], name string, fn Func[T]) *Calculator[T] {
	return &Calculator[T]{d: d, name: name, fn: fn}
}

func (c *Calculator[T]) Name() string               { return c.name }
func (c *Calculator[T]) Domain() numeric.Domain[T]  { return c.d }
func (c *Calculator[T]) WindowRange() helper.Window { return c.window }

// Window returns a calculator restricted to values [begin, begin+length) of
// every well.
func (c *Calculator[T]) Window(begin, length int) (*Calculator[T], error) {
	win, err := helper.NewWindow(begin, length)
	if err != nil {
		return nil, err
	}
	cc := *c
	cc.window = win
	return &cc, nil
}

// Weighted returns a calculator multiplying the values of every well by
// weights, indexed from the start of the window.
func (c *Calculator[T]) Weighted(weights []T) (*Calculator[T], error) {
	if weights == nil {
		return nil, plate.ErrNilArgument.Here().Append("weights")
	}
	cc := *c
	cc.weights = numeric.CloneValues(c.d, weights)
	return &cc, nil
}

func (c *Calculator[T]) prepare(values []T) ([]T, error) {
	values, err := helper.Slice(c.window, values)
	if err != nil {
		return nil, err
	}
	if c.weights != nil {
		return stats.Weighted(c.d, values, c.weights)
	}
	return values, nil
}

func (c *Calculator[T]) wellValues(w *plate.Well[T]) ([]T, error) {
	values, err := helper.WellValues(c.window, w)
	if err != nil || c.weights == nil {
		return values, err
	}
	if values, err = stats.Weighted(c.d, values, c.weights); err != nil {
		return nil, merry.Appendf(err, "well %s", w.ID())
	}
	return values, nil
}

func (c *Calculator[T]) compute(values []T) (T, error) {
	v, err := c.fn(c.d, values)
	if err != nil {
		return c.d.Undefined(), merry.Appendf(err, "statistic %s", c.name)
	}
	return v, nil
}

// Values computes the statistic over values.
func (c *Calculator[T]) Values(values []T) (T, error) {
	if values == nil {
		return c.d.Undefined(), plate.ErrNilArgument.Here().Append("values")
	}
	values, err := c.prepare(values)
	if err != nil {
		return c.d.Undefined(), err
	}
	return c.compute(values)
}

// Well computes the statistic over the data of w.
func (c *Calculator[T]) Well(w *plate.Well[T]) (T, error) {
	values, err := c.wellValues(w)
	if err != nil {
		return c.d.Undefined(), err
	}
	return c.compute(values)
}

func (c *Calculator[T]) perWell(wells []*plate.Well[T]) (types.WellValues[T], error) {
	out := make(types.WellValues[T], 0, len(wells))
	for _, w := range wells {
		v, err := c.Well(w)
		if err != nil {
			return nil, err
		}
		out = append(out, types.WellValue[T]{Well: w.Clone(), Value: v})
	}
	return out, nil
}

func (c *Calculator[T]) aggregate(wells []*plate.Well[T]) (T, error) {
	if c.weights == nil {
		all, err := helper.Flatten(c.window, wells)
		if err != nil {
			return c.d.Undefined(), err
		}
		return c.compute(all)
	}

	// weights index the window of each well, so they apply before flattening
	var all []T
	for _, w := range wells {
		values, err := c.wellValues(w)
		if err != nil {
			return c.d.Undefined(), err
		}
		all = append(all, values...)
	}
	return c.compute(all)
}

// Set computes the statistic for every well of s.
func (c *Calculator[T]) Set(s *plate.WellSet[T]) (types.WellValues[T], error) {
	wells, err := helper.SetWells(s)
	if err != nil {
		return nil, err
	}
	return c.perWell(wells)
}

// Plate computes the statistic for every well of p.
func (c *Calculator[T]) Plate(p *plate.Plate[T]) (types.WellValues[T], error) {
	wells, err := helper.PlateWells(p)
	if err != nil {
		return nil, err
	}
	return c.perWell(wells)
}

// Stack computes the statistic for every well of every plate of s.
func (c *Calculator[T]) Stack(s *plate.Stack[T]) (types.StackWellValues[T], error) {
	if s == nil {
		return nil, plate.ErrNilArgument.Here().Append("stack")
	}
	out := make(types.StackWellValues[T], 0, s.Len())
	for p := range s.All() {
		r, err := c.Plate(p)
		if err != nil {
			return nil, merry.Appendf(err, "plate %q", p.Label())
		}
		out = append(out, types.PlateWellValues[T]{Plate: p.Label(), Wells: r})
	}
	return out, nil
}

// SetAggregated computes the statistic once over the data of all wells of s.
func (c *Calculator[T]) SetAggregated(s *plate.WellSet[T]) (T, error) {
	wells, err := helper.SetWells(s)
	if err != nil {
		return c.d.Undefined(), err
	}
	return c.aggregate(wells)
}

// PlateAggregated computes the statistic once over the data of all wells of p.
func (c *Calculator[T]) PlateAggregated(p *plate.Plate[T]) (T, error) {
	wells, err := helper.PlateWells(p)
	if err != nil {
		return c.d.Undefined(), err
	}
	return c.aggregate(wells)
}

// StackAggregated computes one aggregated value per plate of s, in stack
// order.
func (c *Calculator[T]) StackAggregated(s *plate.Stack[T]) (types.LabeledValues[T], error) {
	if s == nil {
		return nil, plate.ErrNilArgument.Here().Append("stack")
	}
	return c.PlatesAggregated(s.Plates()...)
}

// SetsAggregated computes one aggregated value per set, ordered by the
// natural order of the sets.
func (c *Calculator[T]) SetsAggregated(sets ...*plate.WellSet[T]) (types.LabeledValues[T], error) {
	if slices.Contains(sets, nil) {
		return nil, plate.ErrNilArgument.Here().Append("well set")
	}
	sorted := slices.Clone(sets)
	slices.SortStableFunc(sorted, (*plate.WellSet[T]).Compare)

	out := make(types.LabeledValues[T], 0, len(sorted))
	for _, s := range sorted {
		v, err := c.SetAggregated(s)
		if err != nil {
			return nil, merry.Appendf(err, "set %q", s.Label())
		}
		out = append(out, types.LabeledValue[T]{Label: s.Label(), Value: v})
	}
	return out, nil
}

// PlatesAggregated computes one aggregated value per plate, ordered by the
// natural order of the plates.
func (c *Calculator[T]) PlatesAggregated(plates ...*plate.Plate[T]) (types.LabeledValues[T], error) {
	if slices.Contains(plates, nil) {
		return nil, plate.ErrNilArgument.Here().Append("plate")
	}
	sorted := slices.Clone(plates)
	slices.SortStableFunc(sorted, (*plate.Plate[T]).Compare)

	out := make(types.LabeledValues[T], 0, len(sorted))
	for _, p := range sorted {
		v, err := c.PlateAggregated(p)
		if err != nil {
			return nil, merry.Appendf(err, "plate %q", p.Label())
		}
		out = append(out, types.LabeledValue[T]{Label: p.Label(), Value: v})
	}
	return out, nil
}

// StacksAggregated computes one value per stack over the data of all its
// wells, ordered by the natural order of the stacks.
func (c *Calculator[T]) StacksAggregated(stacks ...*plate.Stack[T]) (types.LabeledValues[T], error) {
	if slices.Contains(stacks, nil) {
		return nil, plate.ErrNilArgument.Here().Append("stack")
	}
	sorted := slices.Clone(stacks)
	slices.SortStableFunc(sorted, (*plate.Stack[T]).Compare)

	out := make(types.LabeledValues[T], 0, len(sorted))
	for _, s := range sorted {
		wells, err := helper.StackWells(s)
		if err != nil {
			return nil, err
		}
		v, err := c.aggregate(wells)
		if err != nil {
			return nil, merry.Appendf(err, "stack %q", s.Label())
		}
		out = append(out, types.LabeledValue[T]{Label: s.Label(), Value: v})
	}
	return out, nil
}
