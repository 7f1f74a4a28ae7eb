package dto

import "encoding/json"

// Optional distinguishes a JSON field that was absent from one that was set
// to an explicit null. Absent fields leave the stored value untouched during
// partial updates; explicit nulls clear it.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// NewOptional returns a set Optional holding the given value.
func NewOptional[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Value: &value}
}

// NullOptional returns a set Optional holding an explicit null.
func NullOptional[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only invoked for fields present in the payload, so Set
// records field presence.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	o.Value = &value
	return nil
}

// MarshalJSON renders the held value, or null when unset or explicitly null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
