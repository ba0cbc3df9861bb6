package platetest

import (
	"math"
	"slices"
	"testing"

	"github.com/microflex/microflex/pkg/numeric"
	"github.com/microflex/microflex/pkg/plate"
)

const eps = 0.0000000001

func nearlyEqual[T any](d numeric.Domain[T], a, b T) bool {
	x, y := d.Float(a), d.Float(b)
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}
	if d.Cmp(a, b) == 0 {
		return true
	}
	if _, ok := any(d).(numeric.Float64); ok {
		return math.Abs(x-y) < eps
	}
	return false
}

// NearlyEqual reports whether a and b hold the same values. NaN matches NaN
// and doubles match within a small epsilon; other domains must be exact.
func NearlyEqual[T any](d numeric.Domain[T], a, b []T) bool {
	return slices.EqualFunc(a, b, func(x, y T) bool { return nearlyEqual(d, x, y) })
}

// TestPlates reports every difference between got and want: dimensions,
// label, groups, well positions and values.
func TestPlates[T any](t testing.TB, d numeric.Domain[T], got, want *plate.Plate[T]) {
	t.Helper()
	if got == nil || want == nil {
		if got != want {
			t.Errorf("got plate %v, want %v", got, want)
		}
		return
	}
	if got.Rows() != want.Rows() || got.Columns() != want.Columns() {
		t.Errorf("plate %s: got %dx%d, want %dx%d", want.Label(), got.Rows(), got.Columns(), want.Rows(), want.Columns())
	}
	if got.Label() != want.Label() {
		t.Errorf("bad plate label: got %s, want %s", got.Label(), want.Label())
	}
	gg, wg := got.Groups(), want.Groups()
	if !slices.EqualFunc(gg, wg, func(a, b plate.Group) bool {
		return a.Label == b.Label && slices.Equal(a.Positions, b.Positions)
	}) {
		t.Errorf("plate %s: different groups: got %v, want %v", want.Label(), gg, wg)
	}

	gw, ww := got.Wells(), want.Wells()
	for i := 0; i < max(len(gw), len(ww)); i++ {
		switch {
		case i >= len(gw):
			t.Errorf("plate %s:\n-[%s] = %v", want.Label(), ww[i].ID(), ww[i].Values())
		case i >= len(ww):
			t.Errorf("plate %s:\n+[%s] = %v", want.Label(), gw[i].ID(), gw[i].Values())
		case gw[i].Position() != ww[i].Position():
			t.Errorf("plate %s: well[%d] at %s, want %s", want.Label(), i, gw[i].ID(), ww[i].ID())
		case !NearlyEqual(d, gw[i].Values(), ww[i].Values()):
			t.Errorf("plate %s: different values well %s: got %v, want %v", want.Label(), gw[i].ID(), format(d, gw[i].Values()), format(d, ww[i].Values()))
		}
	}
}

// TestStacks compares two stacks plate by plate in stack order.
func TestStacks[T any](t testing.TB, d numeric.Domain[T], got, want *plate.Stack[T]) {
	t.Helper()
	if got.Label() != want.Label() {
		t.Errorf("bad stack label: got %s, want %s", got.Label(), want.Label())
	}
	gp, wp := got.Plates(), want.Plates()
	for i := 0; i < max(len(gp), len(wp)); i++ {
		switch {
		case i >= len(gp):
			t.Errorf("\n-[%d] = %s", i, wp[i])
		case i >= len(wp):
			t.Errorf("\n+[%d] = %s", i, gp[i])
		default:
			TestPlates(t, d, gp[i], wp[i])
		}
	}
}

func format[T any](d numeric.Domain[T], values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = d.Format(v)
	}
	return out
}
