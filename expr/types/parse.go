package types

import (
	"github.com/ansel1/merry"
	"github.com/valyala/fastjson"

	"github.com/microflex/microflex/pkg/numeric"
	"github.com/microflex/microflex/pkg/plate"
)

var parserPool fastjson.ParserPool

// ParseStack reads a stack document:
//
//	{"label": "run1", "rows": 8, "columns": 12, "plates": [<plate>, ...]}
//
// A single plate document or an array of plate documents is accepted as
// well and yields a stack holding those plates; a single plate also lends
// the stack its label. Dimensions default to those of the first plate.
func ParseStack[T any](d numeric.Domain[T], data []byte) (*plate.Stack[T], error) {
	parser := parserPool.Get()
	defer parserPool.Put(parser)

	v, err := parser.ParseBytes(data)
	if err != nil {
		return nil, ErrInvalidDocument.Here().WithCause(err)
	}

	var label string
	var docs []*fastjson.Value
	single := false
	switch {
	case v.Type() == fastjson.TypeArray:
		docs, _ = v.Array()
	case v.Exists("plates"):
		label = string(v.GetStringBytes("label"))
		docs = v.GetArray("plates")
	default:
		docs = []*fastjson.Value{v}
		single = true
	}

	plates := make([]*plate.Plate[T], 0, len(docs))
	for _, doc := range docs {
		p, err := plateFromValue(d, doc)
		if err != nil {
			return nil, err
		}
		plates = append(plates, p)
	}

	if single {
		label = plates[0].Label()
	}
	rows, columns := v.GetInt("rows"), v.GetInt("columns")
	if len(plates) > 0 && rows == 0 && columns == 0 {
		rows, columns = plates[0].Rows(), plates[0].Columns()
	}
	s, err := plate.NewStack[T](rows, columns, label)
	if err != nil {
		return nil, merry.Wrap(err).WithValue("stack", label)
	}
	if err := s.Add(plates...); err != nil {
		return nil, err
	}
	return s, nil
}

// ParsePlate reads a plate document:
//
//	{"label": "Plate1", "rows": 8, "columns": 12,
//	 "groups": {"controls": ["A1", "A2"]},
//	 "wells": {"A1": [1.5, 2], "B3": ["12345678901234567890"]}}
//
// "format": 96 may replace rows and columns. Values may be numbers or
// strings and are parsed in domain d; null is the undefined value of d.
func ParsePlate[T any](d numeric.Domain[T], data []byte) (*plate.Plate[T], error) {
	parser := parserPool.Get()
	defer parserPool.Put(parser)

	v, err := parser.ParseBytes(data)
	if err != nil {
		return nil, ErrInvalidDocument.Here().WithCause(err)
	}
	return plateFromValue(d, v)
}

func plateFromValue[T any](d numeric.Domain[T], v *fastjson.Value) (*plate.Plate[T], error) {
	if v.Type() != fastjson.TypeObject {
		return nil, ErrInvalidDocument.Here().Appendf("plate must be an object, got %s", v.Type())
	}
	label := string(v.GetStringBytes("label"))
	rows, columns := v.GetInt("rows"), v.GetInt("columns")
	if n := v.GetInt("format"); n != 0 {
		f, err := plate.FormatOf(n)
		if err != nil {
			return nil, merry.Wrap(err).WithValue("plate", label)
		}
		rows, columns = f.Rows, f.Columns
	}

	p, err := plate.NewPlate[T](rows, columns, label)
	if err != nil {
		return nil, merry.Wrap(err).WithValue("plate", label)
	}

	var wells []*plate.Well[T]
	if o := v.GetObject("wells"); o != nil {
		o.Visit(func(key []byte, vals *fastjson.Value) {
			if err != nil {
				return
			}
			var w *plate.Well[T]
			w, err = wellFromValue(d, string(key), vals)
			wells = append(wells, w)
		})
		if err != nil {
			return nil, merry.Wrap(err).WithValue("plate", label)
		}
	}
	if err := p.Add(wells...); err != nil {
		return nil, err
	}

	if o := v.GetObject("groups"); o != nil {
		o.Visit(func(key []byte, ids *fastjson.Value) {
			if err != nil {
				return
			}
			var positions []plate.Position
			positions, err = positionsFromValue(ids)
			if err == nil {
				err = p.AddGroup(string(key), positions...)
			}
		})
		if err != nil {
			return nil, merry.Wrap(err).WithValue("plate", label)
		}
	}
	return p, nil
}

func wellFromValue[T any](d numeric.Domain[T], id string, v *fastjson.Value) (*plate.Well[T], error) {
	items, err := v.Array()
	if err != nil {
		return nil, ErrInvalidDocument.Here().Appendf("well %s: values must be an array", id)
	}
	values := make([]T, 0, len(items))
	for _, item := range items {
		var s string
		switch item.Type() {
		case fastjson.TypeNull:
			values = append(values, d.Undefined())
			continue
		case fastjson.TypeNumber:
			s = item.String()
		case fastjson.TypeString:
			s = string(item.GetStringBytes())
		default:
			return nil, ErrInvalidDocument.Here().Appendf("well %s: unexpected %s value", id, item.Type())
		}
		x, err := d.Parse(s)
		if err != nil {
			return nil, merry.Appendf(err, "well %s", id)
		}
		values = append(values, x)
	}
	return plate.NewWellID(id, values...)
}

func positionsFromValue(v *fastjson.Value) ([]plate.Position, error) {
	items, err := v.Array()
	if err != nil {
		return nil, ErrInvalidDocument.Here().Append("group positions must be an array of well ids")
	}
	out := make([]plate.Position, 0, len(items))
	for _, item := range items {
		p, err := plate.ParsePosition(string(item.GetStringBytes()))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
