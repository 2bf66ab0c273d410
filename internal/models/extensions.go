package models

import (
	"fmt"
)

// Extensions is an open attribute map restricted to primitive values.
// Units carry capabilities in it (e.g. "armed", "medical"); alerts carry
// intake metadata.
type Extensions map[string]any

// Validate rejects nested or non-primitive values.
func (x Extensions) Validate() error {
	for k, v := range x {
		if k == "" {
			return fmt.Errorf("extensions: empty key")
		}
		switch v.(type) {
		case string, bool, float64, float32, int, int32, int64, nil:
		default:
			return fmt.Errorf("extensions: key %q has unsupported type %T", k, v)
		}
	}
	return nil
}

// Matches reports whether every required key is present with an equal value.
// Numbers compare by value regardless of their Go type.
func (x Extensions) Matches(required map[string]any) bool {
	for k, want := range required {
		got, ok := x[k]
		if !ok || !primitiveEqual(got, want) {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy; values are primitives so it is a full copy.
func (x Extensions) Clone() Extensions {
	if x == nil {
		return nil
	}
	out := make(Extensions, len(x))
	for k, v := range x {
		out[k] = v
	}
	return out
}

func primitiveEqual(a, b any) bool {
	fa, aNum := asFloat(a)
	fb, bNum := asFloat(b)
	if aNum || bNum {
		return aNum && bNum && fa == fb
	}
	return a == b
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
