package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type state uint8

const (
	stateAbsent state = iota
	stateClear
	stateSet
)

// Value is a tri-state patch field: Absent (not mentioned in the request),
// Clear (explicit null, reset the field), or Set (replace with a new value).
// The zero value is Absent, so a plain struct literal leaves every field
// untouched.
//
// Value distinguishes "key missing" from "key: null" when decoded with
// encoding/json, which two-state representations like *T cannot:
//
//	type UpdateUserRequest struct {
//		Name patch.Value[string] `json:"name,omitzero"`
//		Bio  patch.Value[string] `json:"bio,omitzero"`
//	}
//
//	// {"name": "Alice", "bio": null} decodes to
//	// Name: Set("Alice"), Bio: Clear, everything else Absent.
type Value[T any] struct {
	value T
	state state
}

// Absent returns a value representing an untouched field. Equivalent to the
// zero value.
func Absent[T any]() Value[T] { return Value[T]{} }

// Clear returns a value representing an explicit reset.
func Clear[T any]() Value[T] { return Value[T]{state: stateClear} }

// Set returns a value carrying a replacement payload.
func Set[T any](v T) Value[T] { return Value[T]{value: v, state: stateSet} }

// IsAbsent reports whether the field was not mentioned.
func (v Value[T]) IsAbsent() bool { return v.state == stateAbsent }

// IsClear reports whether the field was explicitly reset.
func (v Value[T]) IsClear() bool { return v.state == stateClear }

// IsSet reports whether the field carries a replacement value.
func (v Value[T]) IsSet() bool { return v.state == stateSet }

// IsProvided reports whether the field was mentioned at all, either as a
// reset or as a replacement. Absent is the only unprovided state.
func (v Value[T]) IsProvided() bool { return v.state != stateAbsent }

// Get returns the replacement payload. The second return is false unless
// the value is Set.
func (v Value[T]) Get() (T, bool) {
	if v.state != stateSet {
		var zero T
		return zero, false
	}
	return v.value, true
}

// Or returns the replacement payload under Set and old otherwise. It is the
// merge primitive for hand-rolled patch application:
//
//	user.Name = req.Name.Or(user.Name)
func (v Value[T]) Or(old T) T {
	if v.state == stateSet {
		return v.value
	}
	return old
}

// Map transforms the payload of a Set value and preserves Absent and Clear
// unchanged.
func Map[T, U any](v Value[T], fn func(T) U) Value[U] {
	switch v.state {
	case stateSet:
		return Set(fn(v.value))
	case stateClear:
		return Clear[U]()
	default:
		return Absent[U]()
	}
}

var jsonNull = []byte("null")

// UnmarshalJSON decodes a present key: null becomes Clear, any other value
// decodes as T and becomes Set. Missing keys never reach UnmarshalJSON, so
// the zero value (Absent) survives untouched.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*v = Clear[T]()
		return nil
	}
	var inner T
	if err := json.Unmarshal(data, &inner); err != nil {
		return err
	}
	*v = Set(inner)
	return nil
}

// MarshalJSON encodes Set as the payload and Clear as null. Absent also
// encodes as null when forced to marshal; tag fields with ",omitzero" so
// absent values are omitted instead.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if v.state == stateSet {
		return json.Marshal(v.value)
	}
	return jsonNull, nil
}

// IsZero reports Absent, wiring Value into encoding/json's ",omitzero"
// handling for round-trips that preserve the absent/null distinction.
func (v Value[T]) IsZero() bool { return v.state == stateAbsent }

// String implements fmt.Stringer for readable test output and logs.
func (v Value[T]) String() string {
	switch v.state {
	case stateSet:
		return fmt.Sprintf("Set(%v)", v.value)
	case stateClear:
		return "Clear"
	default:
		return "Absent"
	}
}
