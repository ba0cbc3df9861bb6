// Package platetest generates random plates, stacks and well sets for tests.
package platetest

import (
	"math/rand/v2"
	"strconv"

	"github.com/microflex/microflex/pkg/numeric"
	"github.com/microflex/microflex/pkg/plate"
)

// Generator produces random containers with values drawn uniformly from
// [Min, Max). The same seed always yields the same containers.
type Generator[T any] struct {
	Domain numeric.Domain[T]
	Min    int64
	Max    int64
	// Fill is the probability that a position holds a well.
	Fill float64

	rnd *rand.Rand
}

// New returns a generator filling every position with values in [0, 100).
func New[T any](d numeric.Domain[T], seed uint64) *Generator[T] {
	return &Generator[T]{
		Domain: d,
		Min:    0,
		Max:    100,
		Fill:   1,
		rnd:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Value returns one random value.
func (g *Generator[T]) Value() T {
	span := g.Max - g.Min
	if span <= 0 {
		return g.Domain.FromInt(g.Min)
	}
	return g.Domain.FromInt(g.Min + g.rnd.Int64N(span))
}

// Values returns n random values.
func (g *Generator[T]) Values(n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = g.Value()
	}
	return out
}

// Well returns a well at row, column holding n random values.
func (g *Generator[T]) Well(row, column, n int) *plate.Well[T] {
	return plate.MustWell(row, column, g.Values(n)...)
}

// Set returns a set of wells placed on a rows x columns grid, each holding n
// values.
func (g *Generator[T]) Set(label string, rows, columns, n int) *plate.WellSet[T] {
	s := plate.NewWellSet[T](label)
	for r := range rows {
		for c := range columns {
			if g.Fill < 1 && g.rnd.Float64() >= g.Fill {
				continue
			}
			_ = s.Add(g.Well(r, c, n))
		}
	}
	return s
}

// Plate returns a rows x columns plate whose wells each hold n values.
func (g *Generator[T]) Plate(label string, rows, columns, n int) *plate.Plate[T] {
	p := plate.MustPlate[T](rows, columns, label)
	_ = p.AddSet(g.Set(label, rows, columns, n))
	return p
}

// Stack returns a stack of plates labeled Plate1, Plate2 and so on.
func (g *Generator[T]) Stack(label string, plates, rows, columns, n int) *plate.Stack[T] {
	s := plate.MustStack[T](rows, columns, label)
	for i := range plates {
		_ = s.Add(g.Plate("Plate"+strconv.Itoa(i+1), rows, columns, n))
	}
	return s
}
