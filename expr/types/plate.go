package types

import (
	"strconv"

	"github.com/microflex/microflex/pkg/numeric"
	"github.com/microflex/microflex/pkg/plate"
)

// MarshalPlateJSON renders a plate in the document format read by ParsePlate.
func MarshalPlateJSON[T any](d numeric.Domain[T], p *plate.Plate[T]) []byte {
	return appendPlateJSON(nil, d, p)
}

// MarshalStackJSON renders a stack in the document format read by ParseStack.
func MarshalStackJSON[T any](d numeric.Domain[T], s *plate.Stack[T]) []byte {
	var b []byte
	b = append(b, `{"label":`...)
	b = strconv.AppendQuoteToASCII(b, s.Label())
	b = append(b, `,"rows":`...)
	b = strconv.AppendInt(b, int64(s.Rows()), 10)
	b = append(b, `,"columns":`...)
	b = strconv.AppendInt(b, int64(s.Columns()), 10)
	b = append(b, `,"plates":[`...)
	for i, p := range s.Plates() {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendPlateJSON(b, d, p)
	}
	b = append(b, "]}"...)
	return b
}

func appendPlateJSON[T any](b []byte, d numeric.Domain[T], p *plate.Plate[T]) []byte {
	b = append(b, `{"label":`...)
	b = strconv.AppendQuoteToASCII(b, p.Label())
	b = append(b, `,"rows":`...)
	b = strconv.AppendInt(b, int64(p.Rows()), 10)
	b = append(b, `,"columns":`...)
	b = strconv.AppendInt(b, int64(p.Columns()), 10)

	if groups := p.Groups(); len(groups) > 0 {
		b = append(b, `,"groups":{`...)
		for i, g := range groups {
			if i > 0 {
				b = append(b, ',')
			}
			b = strconv.AppendQuoteToASCII(b, g.Label)
			b = append(b, ":["...)
			for j, pos := range g.Positions {
				if j > 0 {
					b = append(b, ',')
				}
				b = strconv.AppendQuote(b, pos.String())
			}
			b = append(b, ']')
		}
		b = append(b, '}')
	}

	b = append(b, `,"wells":{`...)
	var comma bool
	for w := range p.Set().All() {
		if comma {
			b = append(b, ',')
		}
		comma = true
		b = strconv.AppendQuote(b, w.ID())
		b = append(b, ":["...)
		for i, v := range w.Values() {
			if i > 0 {
				b = append(b, ',')
			}
			b = appendNumber(b, d.Format(v))
		}
		b = append(b, ']')
	}
	b = append(b, "}}"...)
	return b
}

// MarshalPlateCSV renders one line per well: plate label, well id, values.
func MarshalPlateCSV[T any](d numeric.Domain[T], plates ...*plate.Plate[T]) []byte {
	var b []byte
	for _, p := range plates {
		for w := range p.Set().All() {
			b = appendCSVQuoted(b, p.Label())
			b = append(b, ","+w.ID()...)
			for _, v := range w.Values() {
				b = append(b, ',')
				b = append(b, d.Format(v)...)
			}
			b = append(b, '\n')
		}
	}
	return b
}
