// Package mathop applies elementwise arithmetic to wells, well sets, plates
// and stacks.
//
// Binary operations combine two containers under one of two policies.
// Standard treats missing values as zero and passes wells and plates found
// in only one operand through unchanged. Strict combines only what both
// operands hold and drops the rest.
package mathop

import (
	"github.com/ansel1/merry"

	"github.com/microflex/microflex/pkg/numeric"
)

var (
	// ErrUnsupportedOperation is returned for bitwise operations in a domain without bitwise arithmetic.
	ErrUnsupportedOperation = merry.New("unsupported operation")
	// ErrUnknownOperation is returned for names no operation is registered for.
	ErrUnknownOperation = merry.New("unknown operation")
)

// Op combines two values.
type Op[T any] func(a, b T) (T, error)

func addOp[T any](d numeric.Domain[T]) Op[T] {
	return func(a, b T) (T, error) { return d.Add(a, b), nil }
}

func subOp[T any](d numeric.Domain[T]) Op[T] {
	return func(a, b T) (T, error) { return d.Sub(a, b), nil }
}

func mulOp[T any](d numeric.Domain[T]) Op[T] {
	return func(a, b T) (T, error) { return d.Mul(a, b), nil }
}

func divOp[T any](d numeric.Domain[T]) Op[T] {
	return func(a, b T) (T, error) {
		if err := d.CheckDivisor(b); err != nil {
			return d.Undefined(), err
		}
		return d.Div(a, b), nil
	}
}

func modOp[T any](d numeric.Domain[T]) Op[T] {
	return func(a, b T) (T, error) {
		if err := d.CheckDivisor(b); err != nil {
			return d.Undefined(), err
		}
		return d.Mod(a, b), nil
	}
}

func bitwise[T any](d numeric.Domain[T], name string) (numeric.Bitwise[T], error) {
	b, ok := d.(numeric.Bitwise[T])
	if !ok {
		return nil, ErrUnsupportedOperation.Here().Appendf("%s in domain %s", name, d.Name())
	}
	return b, nil
}
