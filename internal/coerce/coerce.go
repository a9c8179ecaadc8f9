// Package coerce normalizes raw stored field values before merging. Stored
// values arrive loosely typed: a collection column may hold a native
// sequence, a JSON-encoded string, or nothing at all, depending on how the
// record was loaded.
package coerce

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// IsPresent reports whether a raw value counts as present for merging.
// Nil and the empty string are absent; everything else, including zero
// numbers and false, is a real value.
func IsPresent(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	return true
}

// ToSequence normalizes a stored collection value into an ordered slice of
// T. A []T passes through unchanged; a string or []byte is decoded as JSON;
// any other value (for example a []any from decoded JSON) is converted
// through a JSON round trip. Nil, non-sequence, and malformed inputs all
// degrade to an empty sequence — bad stored data means "no data", it never
// fails the merge.
func ToSequence[T any](v any) []T {
	switch s := v.(type) {
	case nil:
		return nil
	case []T:
		return s
	case string:
		return decodeSequence[T]([]byte(s))
	case []byte:
		return decodeSequence[T](s)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		return decodeSequence[T](raw)
	}
}

func decodeSequence[T any](raw []byte) []T {
	var seq []T
	if err := json.Unmarshal(raw, &seq); err != nil {
		return nil
	}
	return seq
}
