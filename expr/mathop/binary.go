package mathop

import (
	"github.com/ansel1/merry"

	"github.com/microflex/microflex/expr/helper"
	"github.com/microflex/microflex/pkg/numeric"
	"github.com/microflex/microflex/pkg/plate"
)

// Binary is an elementwise operation on two operands lifted over every
// container level. It is immutable; Window returns a configured copy.
type Binary[T any] struct {
	d      numeric.Domain[T]
	name   string
	op     Op[T]
	window helper.Window
}

// NewBinary returns a binary operation applying op.
func NewBinary[T any](d numeric.Domain[T], name string, op Op[T]) *Binary[T] {
	return &Binary[T]{d: d, name: name, op: op}
}

func Add[T any](d numeric.Domain[T]) *Binary[T]      { return NewBinary(d, "add", addOp(d)) }
func Subtract[T any](d numeric.Domain[T]) *Binary[T] { return NewBinary(d, "subtract", subOp(d)) }
func Multiply[T any](d numeric.Domain[T]) *Binary[T] { return NewBinary(d, "multiply", mulOp(d)) }

// Divide fails with ErrDivisionByZero for a zero divisor in exact domains;
// float64 division follows IEEE 754.
func Divide[T any](d numeric.Domain[T]) *Binary[T] { return NewBinary(d, "divide", divOp(d)) }

// Modulus returns the remainder of truncated division, with the sign of the
// dividend.
func Modulus[T any](d numeric.Domain[T]) *Binary[T] { return NewBinary(d, "modulus", modOp(d)) }

// And is only available in bitwise domains.
func And[T any](d numeric.Domain[T]) (*Binary[T], error) {
	b, err := bitwise(d, "and")
	if err != nil {
		return nil, err
	}
	return NewBinary(d, "and", func(x, y T) (T, error) { return b.And(x, y), nil }), nil
}

func Or[T any](d numeric.Domain[T]) (*Binary[T], error) {
	b, err := bitwise(d, "or")
	if err != nil {
		return nil, err
	}
	return NewBinary(d, "or", func(x, y T) (T, error) { return b.Or(x, y), nil }), nil
}

func Xor[T any](d numeric.Domain[T]) (*Binary[T], error) {
	b, err := bitwise(d, "xor")
	if err != nil {
		return nil, err
	}
	return NewBinary(d, "xor", func(x, y T) (T, error) { return b.Xor(x, y), nil }), nil
}

func AndNot[T any](d numeric.Domain[T]) (*Binary[T], error) {
	b, err := bitwise(d, "andnot")
	if err != nil {
		return nil, err
	}
	return NewBinary(d, "andnot", func(x, y T) (T, error) { return b.AndNot(x, y), nil }), nil
}

func (b *Binary[T]) Name() string { return b.name }

// Window returns an operation restricted to values [begin, begin+length) of
// every well. Both operands must hold the whole window.
func (b *Binary[T]) Window(begin, length int) (*Binary[T], error) {
	win, err := helper.NewWindow(begin, length)
	if err != nil {
		return nil, err
	}
	c := *b
	c.window = win
	return &c, nil
}

func (b *Binary[T]) apply(x, y []T) ([]T, error) {
	out := make([]T, len(x))
	for i := range x {
		v, err := b.op(x[i], y[i])
		if err != nil {
			return nil, merry.Appendf(err, "%s at index %d", b.name, i+b.window.Begin)
		}
		out[i] = v
	}
	return out, nil
}

func (b *Binary[T]) values(policy helper.Policy, x, y []T) ([]T, error) {
	if x == nil || y == nil {
		return nil, plate.ErrNilArgument.Here().Append("values")
	}
	return b.combine(policy, x, y)
}

// combine is values without the argument check; well data may be empty.
func (b *Binary[T]) combine(policy helper.Policy, x, y []T) ([]T, error) {
	if b.window.IsSet() {
		var err error
		if x, err = helper.Slice(b.window, x); err != nil {
			return nil, err
		}
		if y, err = helper.Slice(b.window, y); err != nil {
			return nil, err
		}
		return b.apply(x, y)
	}

	n := min(len(x), len(y))
	if policy == helper.Strict {
		return b.apply(x[:n], y[:n])
	}
	out, err := b.apply(x[:n], y[:n])
	if err != nil {
		return nil, err
	}
	longer := x
	if len(y) > len(x) {
		longer = y
	}
	for i, v := range longer[n:] {
		var r T
		if len(x) > len(y) {
			r, err = b.op(v, b.d.Zero())
		} else {
			r, err = b.op(b.d.Zero(), v)
		}
		if err != nil {
			return nil, merry.Appendf(err, "%s at index %d", b.name, n+i)
		}
		out = append(out, r)
	}
	return out, nil
}

// Values combines x and y element by element, treating the values missing
// from the shorter one as zero.
func (b *Binary[T]) Values(x, y []T) ([]T, error) { return b.values(helper.Standard, x, y) }

// ValuesStrict combines the first min(len(x), len(y)) values.
func (b *Binary[T]) ValuesStrict(x, y []T) ([]T, error) { return b.values(helper.Strict, x, y) }

// ValuesScalar combines every value of x with c.
func (b *Binary[T]) ValuesScalar(x []T, c T) ([]T, error) {
	if x == nil {
		return nil, plate.ErrNilArgument.Here().Append("values")
	}
	return b.scalar(x, c)
}

func (b *Binary[T]) scalar(x []T, c T) ([]T, error) {
	x, err := helper.Slice(b.window, x)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(x))
	for i, v := range x {
		if out[i], err = b.op(v, c); err != nil {
			return nil, merry.Appendf(err, "%s at index %d", b.name, i+b.window.Begin)
		}
	}
	return out, nil
}

// ValuesArray combines x with array index by index. array must hold at least
// as many values as x, or as the window.
func (b *Binary[T]) ValuesArray(x, array []T) ([]T, error) {
	if x == nil {
		return nil, plate.ErrNilArgument.Here().Append("values")
	}
	return b.array(x, array)
}

func (b *Binary[T]) array(x, array []T) ([]T, error) {
	if array == nil {
		return nil, plate.ErrNilArgument.Here().Append("array")
	}
	x, err := helper.Slice(b.window, x)
	if err != nil {
		return nil, err
	}
	if len(array) < len(x) {
		return nil, plate.ErrInvalidIndices.Here().Appendf("array holds %d values, need %d", len(array), len(x))
	}
	return b.apply(x, array[:len(x)])
}

func (b *Binary[T]) wells(policy helper.Policy, x, y *plate.Well[T]) (*plate.Well[T], error) {
	if x == nil || y == nil {
		return nil, plate.ErrNilArgument.Here().Append("well")
	}
	values, err := b.combine(policy, x.Values(), y.Values())
	if err != nil {
		return nil, merry.Appendf(err, "well %s", x.ID())
	}
	return x.WithData(values), nil
}

// pass returns the result for a well found in one operand only.
func (b *Binary[T]) pass(w *plate.Well[T]) (*plate.Well[T], error) {
	if !b.window.IsSet() {
		return w.Clone(), nil
	}
	values, err := w.Window(b.window.Begin, b.window.Length)
	if err != nil {
		return nil, err
	}
	return w.WithData(values), nil
}

// Wells combines two wells. The result is at the position of x.
func (b *Binary[T]) Wells(x, y *plate.Well[T]) (*plate.Well[T], error) {
	return b.wells(helper.Standard, x, y)
}

func (b *Binary[T]) WellsStrict(x, y *plate.Well[T]) (*plate.Well[T], error) {
	return b.wells(helper.Strict, x, y)
}

func (b *Binary[T]) WellScalar(w *plate.Well[T], c T) (*plate.Well[T], error) {
	if w == nil {
		return nil, plate.ErrNilArgument.Here().Append("well")
	}
	values, err := b.scalar(w.Values(), c)
	if err != nil {
		return nil, merry.Appendf(err, "well %s", w.ID())
	}
	return w.WithData(values), nil
}

func (b *Binary[T]) WellArray(w *plate.Well[T], array []T) (*plate.Well[T], error) {
	if w == nil {
		return nil, plate.ErrNilArgument.Here().Append("well")
	}
	values, err := b.array(w.Values(), array)
	if err != nil {
		return nil, merry.Appendf(err, "well %s", w.ID())
	}
	return w.WithData(values), nil
}

func (b *Binary[T]) sets(policy helper.Policy, x, y *plate.WellSet[T]) (*plate.WellSet[T], error) {
	return helper.MergeSets(policy, x, y, func(p, q *plate.Well[T]) (*plate.Well[T], error) {
		return b.wells(policy, p, q)
	}, b.pass)
}

// Sets combines the wells at the same positions of x and y; wells present
// in only one set are passed through.
func (b *Binary[T]) Sets(x, y *plate.WellSet[T]) (*plate.WellSet[T], error) {
	return b.sets(helper.Standard, x, y)
}

// SetsStrict combines only the positions present in both sets.
func (b *Binary[T]) SetsStrict(x, y *plate.WellSet[T]) (*plate.WellSet[T], error) {
	return b.sets(helper.Strict, x, y)
}

func (b *Binary[T]) eachWell(s *plate.WellSet[T], f func(*plate.Well[T]) (*plate.Well[T], error)) (*plate.WellSet[T], error) {
	if s == nil {
		return nil, plate.ErrNilArgument.Here().Append("well set")
	}
	out := make([]*plate.Well[T], 0, s.Len())
	for w := range s.All() {
		r, err := f(w)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return plate.NewWellSet(s.Label(), out...), nil
}

func (b *Binary[T]) SetScalar(s *plate.WellSet[T], c T) (*plate.WellSet[T], error) {
	return b.eachWell(s, func(w *plate.Well[T]) (*plate.Well[T], error) { return b.WellScalar(w, c) })
}

func (b *Binary[T]) SetArray(s *plate.WellSet[T], array []T) (*plate.WellSet[T], error) {
	if array == nil {
		return nil, plate.ErrNilArgument.Here().Append("array")
	}
	return b.eachWell(s, func(w *plate.Well[T]) (*plate.Well[T], error) { return b.WellArray(w, array) })
}

func (b *Binary[T]) plates(policy helper.Policy, x, y *plate.Plate[T]) (*plate.Plate[T], error) {
	return helper.MergePlates(policy, x, y, func(p, q *plate.WellSet[T]) (*plate.WellSet[T], error) {
		return b.sets(policy, p, q)
	})
}

// Plates combines two plates of the same dimensions well by well and merges
// their groups.
func (b *Binary[T]) Plates(x, y *plate.Plate[T]) (*plate.Plate[T], error) {
	return b.plates(helper.Standard, x, y)
}

func (b *Binary[T]) PlatesStrict(x, y *plate.Plate[T]) (*plate.Plate[T], error) {
	return b.plates(helper.Strict, x, y)
}

func (b *Binary[T]) eachPlateWell(p *plate.Plate[T], f func(*plate.Well[T]) (*plate.Well[T], error)) (*plate.Plate[T], error) {
	if p == nil {
		return nil, plate.ErrNilArgument.Here().Append("plate")
	}
	s, err := b.eachWell(p.Set(), f)
	if err != nil {
		return nil, merry.Appendf(err, "plate %q", p.Label())
	}
	return p.WithSet(s), nil
}

func (b *Binary[T]) PlateScalar(p *plate.Plate[T], c T) (*plate.Plate[T], error) {
	return b.eachPlateWell(p, func(w *plate.Well[T]) (*plate.Well[T], error) { return b.WellScalar(w, c) })
}

func (b *Binary[T]) PlateArray(p *plate.Plate[T], array []T) (*plate.Plate[T], error) {
	if array == nil {
		return nil, plate.ErrNilArgument.Here().Append("array")
	}
	return b.eachPlateWell(p, func(w *plate.Well[T]) (*plate.Well[T], error) { return b.WellArray(w, array) })
}

// passPlate returns the result for a plate found in one stack only.
func (b *Binary[T]) passPlate(p *plate.Plate[T]) (*plate.Plate[T], error) {
	return b.eachPlateWell(p, b.pass)
}

func (b *Binary[T]) stacks(policy helper.Policy, x, y *plate.Stack[T]) (*plate.Stack[T], error) {
	return helper.MergeStacks(policy, x, y, func(p, q *plate.Plate[T]) (*plate.Plate[T], error) {
		return b.plates(policy, p, q)
	}, b.passPlate)
}

// Stacks pairs the plates of x and y in stack order and combines each pair;
// plates beyond the shorter stack are passed through. Results that would
// compare equal fail with plate.ErrDuplicatePlate.
func (b *Binary[T]) Stacks(x, y *plate.Stack[T]) (*plate.Stack[T], error) {
	return b.stacks(helper.Standard, x, y)
}

// StacksStrict drops the plates beyond the shorter stack.
func (b *Binary[T]) StacksStrict(x, y *plate.Stack[T]) (*plate.Stack[T], error) {
	return b.stacks(helper.Strict, x, y)
}

func (b *Binary[T]) eachPlate(s *plate.Stack[T], f func(*plate.Plate[T]) (*plate.Plate[T], error)) (*plate.Stack[T], error) {
	if s == nil {
		return nil, plate.ErrNilArgument.Here().Append("stack")
	}
	out, err := plate.NewStack[T](s.Rows(), s.Columns(), s.Label())
	if err != nil {
		return nil, err
	}
	for p := range s.All() {
		r, err := f(p)
		if err != nil {
			return nil, err
		}
		if err := out.Add(r); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (b *Binary[T]) StackScalar(s *plate.Stack[T], c T) (*plate.Stack[T], error) {
	return b.eachPlate(s, func(p *plate.Plate[T]) (*plate.Plate[T], error) { return b.PlateScalar(p, c) })
}

func (b *Binary[T]) StackArray(s *plate.Stack[T], array []T) (*plate.Stack[T], error) {
	return b.eachPlate(s, func(p *plate.Plate[T]) (*plate.Plate[T], error) { return b.PlateArray(p, array) })
}
