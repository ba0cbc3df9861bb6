package mathop

import (
	"github.com/ansel1/merry"

	"github.com/microflex/microflex/expr/helper"
	"github.com/microflex/microflex/pkg/numeric"
	"github.com/microflex/microflex/pkg/plate"
)

// Unary transforms every value of a container. It is immutable; Window
// returns a configured copy.
type Unary[T any] struct {
	d      numeric.Domain[T]
	name   string
	fn     func(T) (T, error)
	window helper.Window
}

// NewUnary returns a unary operation applying fn.
func NewUnary[T any](d numeric.Domain[T], name string, fn func(T) (T, error)) *Unary[T] {
	return &Unary[T]{d: d, name: name, fn: fn}
}

func Increment[T any](d numeric.Domain[T]) *Unary[T] {
	return NewUnary(d, "increment", func(v T) (T, error) { return d.Add(v, d.One()), nil })
}

func Decrement[T any](d numeric.Domain[T]) *Unary[T] {
	return NewUnary(d, "decrement", func(v T) (T, error) { return d.Sub(v, d.One()), nil })
}

func Negate[T any](d numeric.Domain[T]) *Unary[T] {
	return NewUnary(d, "negate", func(v T) (T, error) { return d.Neg(v), nil })
}

// LeftShift shifts every value n bits to the left. Bitwise domains only.
func LeftShift[T any](d numeric.Domain[T], n uint) (*Unary[T], error) {
	b, err := bitwise(d, "leftshift")
	if err != nil {
		return nil, err
	}
	return NewUnary(d, "leftshift", func(v T) (T, error) { return b.Lsh(v, n), nil }), nil
}

// RightShift is an arithmetic shift, keeping the sign. Bitwise domains only.
func RightShift[T any](d numeric.Domain[T], n uint) (*Unary[T], error) {
	b, err := bitwise(d, "rightshift")
	if err != nil {
		return nil, err
	}
	return NewUnary(d, "rightshift", func(v T) (T, error) { return b.Rsh(v, n), nil }), nil
}

// Complement flips every bit. Bitwise domains only.
func Complement[T any](d numeric.Domain[T]) (*Unary[T], error) {
	b, err := bitwise(d, "complement")
	if err != nil {
		return nil, err
	}
	return NewUnary(d, "complement", func(v T) (T, error) { return b.Not(v), nil }), nil
}

func (u *Unary[T]) Name() string { return u.name }

// Window returns an operation transforming only values [begin,
// begin+length) of every well; the results hold just those values.
func (u *Unary[T]) Window(begin, length int) (*Unary[T], error) {
	win, err := helper.NewWindow(begin, length)
	if err != nil {
		return nil, err
	}
	c := *u
	c.window = win
	return &c, nil
}

// Values transforms values.
func (u *Unary[T]) Values(values []T) ([]T, error) {
	if values == nil {
		return nil, plate.ErrNilArgument.Here().Append("values")
	}
	return u.transform(values)
}

func (u *Unary[T]) transform(values []T) ([]T, error) {
	values, err := helper.Slice(u.window, values)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(values))
	for i, v := range values {
		if out[i], err = u.fn(v); err != nil {
			return nil, merry.Appendf(err, "%s at index %d", u.name, i+u.window.Begin)
		}
	}
	return out, nil
}

func (u *Unary[T]) Well(w *plate.Well[T]) (*plate.Well[T], error) {
	if w == nil {
		return nil, plate.ErrNilArgument.Here().Append("well")
	}
	values, err := u.transform(w.Values())
	if err != nil {
		return nil, merry.Appendf(err, "well %s", w.ID())
	}
	return w.WithData(values), nil
}

func (u *Unary[T]) Set(s *plate.WellSet[T]) (*plate.WellSet[T], error) {
	if s == nil {
		return nil, plate.ErrNilArgument.Here().Append("well set")
	}
	out := make([]*plate.Well[T], 0, s.Len())
	for w := range s.All() {
		r, err := u.Well(w)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return plate.NewWellSet(s.Label(), out...), nil
}

func (u *Unary[T]) Plate(p *plate.Plate[T]) (*plate.Plate[T], error) {
	if p == nil {
		return nil, plate.ErrNilArgument.Here().Append("plate")
	}
	s, err := u.Set(p.Set())
	if err != nil {
		return nil, merry.Appendf(err, "plate %q", p.Label())
	}
	return p.WithSet(s), nil
}

func (u *Unary[T]) Stack(s *plate.Stack[T]) (*plate.Stack[T], error) {
	if s == nil {
		return nil, plate.ErrNilArgument.Here().Append("stack")
	}
	out, err := plate.NewStack[T](s.Rows(), s.Columns(), s.Label())
	if err != nil {
		return nil, err
	}
	for p := range s.All() {
		r, err := u.Plate(p)
		if err != nil {
			return nil, err
		}
		if err := out.Add(r); err != nil {
			return nil, err
		}
	}
	return out, nil
}
