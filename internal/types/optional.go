package types

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Optional is a request field that tells apart three states: the key was
// absent, the key was present with null, or the key carried a value.
// The zero value is "absent".
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Some returns a present, non-null Optional
func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}

// Null returns a present Optional holding JSON null
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true, Null: true}
}

// HasValue reports whether the key was present with a non-null value
func (o Optional[T]) HasValue() bool {
	return o.Present && !o.Null
}

// Get returns the value and whether it is usable
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.HasValue()
}

// UnmarshalJSON is only invoked when the key exists in the payload,
// which is what makes Present meaningful.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.HasValue() {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}

// Apply copies a present, non-null value into dst
func Apply[T any](dst *T, o Optional[T]) {
	if v, ok := o.Get(); ok {
		*dst = v
	}
}

// ApplyNullableString merges o into a nullable text field: absent keeps
// the current value, null or "" clears it, anything else replaces it.
func ApplyNullableString(dst **string, o Optional[string]) {
	if !o.Present {
		return
	}
	*dst = NullableString(o.Value)
}

// NullableString collapses the empty string to nil
func NullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CopyString returns a new pointer holding the same string, nil for nil
func CopyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
