// Package domutil provides typed accessors over the generic
// map[string]any/[]any tree encoding/json produces. The JSON lexer and
// parser are treated as a pre-existing external collaborator (spec.md §5);
// this package only narrows its untyped output to the types the JSON
// section readers need, the same narrow-and-validate role internal/wire
// plays for the binary cursor.
package domutil

import "fmt"

// Object is one decoded JSON object.
type Object = map[string]any

// Array is one decoded JSON array.
type Array = []any

// Obj narrows m[key] to an Object. Returns ok=false (not an error) when the
// key is absent, matching every field in a spine JSON document being
// individually optional.
func Obj(m Object, key string) (Object, bool) {
	v, present := m[key]
	if !present {
		return nil, false
	}
	o, ok := v.(Object)
	return o, ok
}

// Arr narrows m[key] to an Array.
func Arr(m Object, key string) (Array, bool) {
	v, present := m[key]
	if !present {
		return nil, false
	}
	a, ok := v.(Array)
	return a, ok
}

// Str returns m[key] as a string, or def if the key is absent.
func Str(m Object, key, def string) string {
	v, present := m[key]
	if !present {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

// Float returns m[key] as a float32, or def if the key is absent.
// encoding/json decodes every JSON number into float64; this truncates once,
// at the boundary, rather than scattering float64(...) casts through the
// section readers.
func Float(m Object, key string, def float32) float32 {
	v, present := m[key]
	if !present {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return float32(f)
}

// Int returns m[key] truncated to an int, or def if the key is absent.
func Int(m Object, key string, def int) int {
	v, present := m[key]
	if !present {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return int(f)
}

// Bool returns m[key] as a bool, or def if the key is absent.
func Bool(m Object, key string, def bool) bool {
	v, present := m[key]
	if !present {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

// RequireObj is like Obj but returns a decode error when the key is absent
// or not an object, for the handful of fields (e.g. the root "skeleton"
// object) a document cannot be read without.
func RequireObj(m Object, key, context string) (Object, error) {
	o, ok := Obj(m, key)
	if !ok {
		return nil, fmt.Errorf("%s: missing object %q", context, key)
	}
	return o, nil
}

// FloatArray decodes every element of arr as a float32, scaling each by
// scale. Non-numeric elements are treated as zero.
func FloatArray(arr Array, scale float32) []float32 {
	out := make([]float32, len(arr))
	for i, v := range arr {
		if f, ok := v.(float64); ok {
			out[i] = float32(f) * scale
		}
	}
	return out
}

// IntArray decodes every element of arr truncated to int32. Non-numeric
// elements are treated as zero.
func IntArray(arr Array) []int32 {
	out := make([]int32, len(arr))
	for i, v := range arr {
		if f, ok := v.(float64); ok {
			out[i] = int32(f)
		}
	}
	return out
}
