package util

import (
	"encoding/json"

	"github.com/kbukum/utilkit/errors"
)

// ParseJSON decodes s into a new T. It returns nil when s is not valid JSON
// for T and also when s is the literal null, so callers cannot tell the two
// apart. No error information is kept. Use DecodeJSON when the difference
// matters.
//
// With T = any the result is the structural value: objects decode to
// map[string]any, arrays to []any and numbers to float64.
func ParseJSON[T any](s string) *T {
	v, _ := DecodeJSON[T](s)
	return v
}

// DecodeJSON decodes s into a new T. A literal null yields (nil, nil);
// malformed input yields an INVALID_FORMAT AppError wrapping the decoder
// error.
func DecodeJSON[T any](s string) (*T, error) {
	var v *T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, errors.InvalidFormat("json", "JSON value").WithCause(err)
	}
	return v, nil
}
