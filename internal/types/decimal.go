package types

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/shopspring/decimal"
)

// Amounts go over the wire as JSON numbers, not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Number is a request-side decimal that only decodes from a JSON number
// literal. decimal.Decimal on its own also accepts "12", which request
// bodies must not.
type Number struct {
	decimal.Decimal
}

// NewNumber wraps d
func NewNumber(d decimal.Decimal) Number {
	return Number{Decimal: d}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || raw[0] == '"' || raw[0] == '{' || raw[0] == '[' || raw[0] == 't' || raw[0] == 'f' {
		return &json.UnmarshalTypeError{
			Value: jsonKind(raw),
			Type:  reflect.TypeOf(n.Decimal),
		}
	}
	return n.Decimal.UnmarshalJSON(raw)
}

// ApplyNumber copies a present, non-null number into dst
func ApplyNumber(dst *decimal.Decimal, o Optional[Number]) {
	if v, ok := o.Get(); ok {
		*dst = v.Decimal
	}
}

func jsonKind(raw []byte) string {
	if len(raw) == 0 {
		return "empty"
	}
	switch raw[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	default:
		return "bool"
	}
}
