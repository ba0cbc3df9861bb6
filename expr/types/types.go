// Package types holds the results produced by the statistic and math engines
// and their JSON and CSV renderings.
package types

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/ansel1/merry"

	"github.com/microflex/microflex/pkg/numeric"
	"github.com/microflex/microflex/pkg/plate"
)

var (
	// ErrInvalidDocument is returned when a plate or stack document can't be read.
	ErrInvalidDocument = merry.New("invalid plate document")
)

// WellValue pairs a copy of an input well with the statistic computed over
// its data.
type WellValue[T any] struct {
	Well  *plate.Well[T]
	Value T
}

// WellValues are ordered by well position.
type WellValues[T any] []WellValue[T]

// Get returns the value computed for the well at p.
func (r WellValues[T]) Get(p plate.Position) (T, bool) {
	i, found := slices.BinarySearchFunc(r, p, func(v WellValue[T], p plate.Position) int {
		return v.Well.Position().Compare(p)
	})
	if !found {
		var zero T
		return zero, false
	}
	return r[i].Value, true
}

// Positions returns the well positions in result order.
func (r WellValues[T]) Positions() []plate.Position {
	out := make([]plate.Position, len(r))
	for i, v := range r {
		out[i] = v.Well.Position()
	}
	return out
}

// Records renders the results, labeling each with label.
func (r WellValues[T]) Records(d numeric.Domain[T], label string) []Record {
	out := make([]Record, 0, len(r))
	for _, v := range r {
		out = append(out, Record{Label: label, Well: v.Well.ID(), Value: d.Format(v.Value)})
	}
	return out
}

// PlateWellValues are the per well results of one plate of a stack.
type PlateWellValues[T any] struct {
	Plate string
	Wells WellValues[T]
}

// StackWellValues are ordered like the plates of the stack.
type StackWellValues[T any] []PlateWellValues[T]

func (r StackWellValues[T]) Records(d numeric.Domain[T]) []Record {
	var out []Record
	for _, p := range r {
		out = append(out, p.Wells.Records(d, p.Plate)...)
	}
	return out
}

// LabeledValue is a statistic aggregated over a whole container.
type LabeledValue[T any] struct {
	Label string
	Value T
}

// LabeledValues are ordered by the natural order of their containers.
type LabeledValues[T any] []LabeledValue[T]

func (r LabeledValues[T]) Records(d numeric.Domain[T]) []Record {
	out := make([]Record, 0, len(r))
	for _, v := range r {
		out = append(out, Record{Label: v.Label, Value: d.Format(v.Value)})
	}
	return out
}

// Record is one formatted result line. Well is empty for aggregated values.
type Record struct {
	Label string
	Well  string
	Value string
}

// appendNumber appends a formatted domain value as a JSON number, or null
// when the value has no finite representation.
func appendNumber(b []byte, s string) []byte {
	if s == "" {
		return append(b, "null"...)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return append(b, "null"...)
	}
	return append(b, s...)
}

// MarshalJSON marshals records to a JSON array of objects.
func MarshalJSON(records []Record) []byte {
	var b []byte
	b = append(b, '[')

	for i, r := range records {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, `{"label":`...)
		b = strconv.AppendQuoteToASCII(b, r.Label)
		if r.Well != "" {
			b = append(b, `,"well":`...)
			b = strconv.AppendQuoteToASCII(b, r.Well)
		}
		b = append(b, `,"value":`...)
		b = appendNumber(b, r.Value)
		b = append(b, '}')
	}

	b = append(b, ']')
	return b
}

// appendCSVQuoted appends s as a quoted CSV field, doubling inner quotes.
func appendCSVQuoted(b []byte, s string) []byte {
	b = append(b, '"')
	b = append(b, strings.ReplaceAll(s, `"`, `""`)...)
	return append(b, '"')
}

// MarshalCSV marshals records to label,well,value lines.
func MarshalCSV(records []Record) []byte {
	var b []byte
	for _, r := range records {
		b = appendCSVQuoted(b, r.Label)
		b = append(b, ","+r.Well+","...)
		if r.Value != "NaN" {
			b = append(b, r.Value...)
		}
		b = append(b, '\n')
	}
	return b
}
