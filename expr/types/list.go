package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParamType is the kind of value a statistic or operation parameter takes.
type ParamType int

const (
	// Container is a well set, plate or stack document
	Container ParamType = iota
	// Float is a real number
	Float
	// Integer is a whole number
	Integer
	// Percent is a percentile in 1..100
	Percent
	// Policy is the merge policy, standard or strict
	Policy
	// Values is a list of domain values
	Values
)

var strToParamType = map[string]ParamType{
	"container": Container,
	"float":     Float,
	"integer":   Integer,
	"percent":   Percent,
	"policy":    Policy,
	"values":    Values,
}

var paramTypeToStr = map[ParamType]string{
	Container: "container",
	Float:     "float",
	Integer:   "integer",
	Percent:   "percent",
	Policy:    "policy",
	Values:    "values",
}

func (t ParamType) String() string { return paramTypeToStr[t] }

// MarshalJSON marshals the type name
func (t ParamType) MarshalJSON() ([]byte, error) {
	v, ok := paramTypeToStr[t]
	if ok {
		return json.Marshal(v)
	}

	return nil, fmt.Errorf("unknown type specified: %v", int(t))
}

func (t *ParamType) UnmarshalJSON(d []byte) error {
	var err error
	s := strings.Trim(string(d), "\n\t \"")
	v, ok := strToParamType[s]
	if ok {
		*t = v
	} else {
		err = fmt.Errorf("failed to parse value '%v'", string(d))
	}

	return err
}

// Param describes one parameter of a statistic or operation.
type Param struct {
	Name     string    `json:"name"`
	Multiple bool      `json:"multiple,omitempty"`
	Required bool      `json:"required,omitempty"`
	Type     ParamType `json:"type"`
	Options  []string  `json:"options,omitempty"`
	Default  string    `json:"default,omitempty"`
}

// Description documents a statistic or operation for `microflex describe`.
type Description struct {
	Name        string  `json:"name"`
	Group       string  `json:"group"`
	Description string  `json:"description"`
	Bitwise     bool    `json:"bitwise,omitempty"`
	Params      []Param `json:"params,omitempty"`
}
