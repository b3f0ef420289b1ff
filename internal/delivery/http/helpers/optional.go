package helpers

import (
	"bytes"
	"encoding/json"
)

// Optional is a request field that tells an omitted key apart from an explicit null.
// Set is true when the key was present; Null is true when its value was null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON implements json.Unmarshaler. It only runs for keys present in the body.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Ptr returns the value, or nil when the key was omitted or null.
func (o Optional[T]) Ptr() *T {
	if !o.Set || o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// NullFields adds msg for every named field that was sent as an explicit null.
func NullFields(errs map[string]string, msg string, fields map[string]bool) map[string]string {
	for name, isNull := range fields {
		if !isNull {
			continue
		}
		if errs == nil {
			errs = make(map[string]string)
		}
		errs[name] = msg
	}
	return errs
}
