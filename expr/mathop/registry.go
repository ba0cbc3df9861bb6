package mathop

import (
	"slices"

	"github.com/microflex/microflex/expr/types"
	"github.com/microflex/microflex/pkg/numeric"
)

var descriptions = []types.Description{
	{Name: "add", Group: "Arithmetic", Description: "Sum of the values at the same index."},
	{Name: "subtract", Group: "Arithmetic", Description: "Difference of the values at the same index."},
	{Name: "multiply", Group: "Arithmetic", Description: "Product of the values at the same index."},
	{Name: "divide", Group: "Arithmetic", Description: "Quotient of the values at the same index. Integer domains truncate; exact domains fail on a zero divisor."},
	{Name: "modulus", Group: "Arithmetic", Description: "Remainder of truncated division, signed like the dividend."},
	{Name: "and", Group: "Bitwise", Bitwise: true, Description: "Bitwise and."},
	{Name: "or", Group: "Bitwise", Bitwise: true, Description: "Bitwise or."},
	{Name: "xor", Group: "Bitwise", Bitwise: true, Description: "Bitwise exclusive or."},
	{Name: "andnot", Group: "Bitwise", Bitwise: true, Description: "Bitwise and of the first operand with the complement of the second."},
	{Name: "increment", Group: "Unary", Description: "Adds one to every value."},
	{Name: "decrement", Group: "Unary", Description: "Subtracts one from every value."},
	{Name: "negate", Group: "Unary", Description: "Changes the sign of every value."},
	{
		Name: "leftshift", Group: "Unary", Bitwise: true, Description: "Shifts every value left by n bits.",
		Params: []types.Param{{Name: "n", Required: true, Type: types.Integer}},
	},
	{
		Name: "rightshift", Group: "Unary", Bitwise: true, Description: "Arithmetic shift of every value right by n bits.",
		Params: []types.Param{{Name: "n", Required: true, Type: types.Integer}},
	},
	{Name: "complement", Group: "Unary", Bitwise: true, Description: "Flips every bit."},
}

var binaryParams = []types.Param{
	{Name: "policy", Type: types.Policy, Options: []string{"standard", "strict"}, Default: "standard"},
}

// Descriptions lists every operation known to LookupBinary and LookupUnary.
func Descriptions() []types.Description {
	out := slices.Clone(descriptions)
	for i := range out {
		if out[i].Group != "Unary" {
			out[i].Params = binaryParams
		}
	}
	return out
}

// IsBinary reports whether name is a binary operation.
func IsBinary(name string) bool {
	i := slices.IndexFunc(descriptions, func(d types.Description) bool { return d.Name == name })
	return i >= 0 && descriptions[i].Group != "Unary"
}

// LookupBinary returns the binary operation called name in domain d.
func LookupBinary[T any](d numeric.Domain[T], name string) (*Binary[T], error) {
	switch name {
	case "add":
		return Add(d), nil
	case "subtract":
		return Subtract(d), nil
	case "multiply":
		return Multiply(d), nil
	case "divide":
		return Divide(d), nil
	case "modulus":
		return Modulus(d), nil
	case "and":
		return And(d)
	case "or":
		return Or(d)
	case "xor":
		return Xor(d)
	case "andnot":
		return AndNot(d)
	}
	return nil, ErrUnknownOperation.Here().Append(name)
}

// LookupUnary returns the unary operation called name in domain d. n is the
// shift distance of leftshift and rightshift.
func LookupUnary[T any](d numeric.Domain[T], name string, n uint) (*Unary[T], error) {
	switch name {
	case "increment":
		return Increment(d), nil
	case "decrement":
		return Decrement(d), nil
	case "negate":
		return Negate(d), nil
	case "leftshift":
		return LeftShift(d, n)
	case "rightshift":
		return RightShift(d, n)
	case "complement":
		return Complement(d)
	}
	return nil, ErrUnknownOperation.Here().Append(name)
}
