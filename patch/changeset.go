package patch

import (
	"encoding/json"
	"sort"

	"github.com/dmitrymomot/apikit/apierror"
)

// ChangeSet is one decoded patch payload: a tri-state entry for every field
// the schema declares, Absent for keys the payload omitted. Change sets are
// bound to the schema that decoded them and are immutable.
type ChangeSet[R any] struct {
	schema  *Schema[R]
	changes map[string]fieldChange[R]
}

// Decode parses one wire payload into a change set. Failures are occurrences
// of the package taxonomy: malformed JSON and type-invalid field values
// yield decode_error; undeclared keys yield unknown_field unless the schema
// allows them. Decoding never touches a record.
func (s *Schema[R]) Decode(data []byte) (*ChangeSet[R], error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ErrDecode.New(apierror.Cause(err))
	}

	if !s.allowUnknown {
		var unknown []string
		for key := range raw {
			if _, ok := s.index[key]; !ok {
				unknown = append(unknown, key)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return nil, ErrUnknownField.New(
				apierror.Details(FieldDetail{Field: unknown[0], Reason: "unknown field"}),
			)
		}
	}

	changes := make(map[string]fieldChange[R], len(s.fields))
	for _, def := range s.fields {
		rawValue, present := raw[def.name]
		change, err := def.decode(rawValue, present)
		if err != nil {
			return nil, err
		}
		changes[def.name] = change
	}
	return &ChangeSet[R]{schema: s, changes: changes}, nil
}

// IsProvided reports whether the payload mentioned the field, either as
// null or with a value.
func (cs *ChangeSet[R]) IsProvided(field string) bool {
	return cs.changes[field].state != stateAbsent
}

// IsClear reports whether the payload reset the field with explicit null.
func (cs *ChangeSet[R]) IsClear(field string) bool {
	return cs.changes[field].state == stateClear
}

// IsSet reports whether the payload carries a replacement value for the
// field.
func (cs *ChangeSet[R]) IsSet(field string) bool {
	return cs.changes[field].state == stateSet
}

// Provided returns the mentioned fields in schema declaration order.
func (cs *ChangeSet[R]) Provided() []string {
	var provided []string
	for _, def := range cs.schema.fields {
		if cs.changes[def.name].state != stateAbsent {
			provided = append(provided, def.name)
		}
	}
	return provided
}

// Empty reports whether the payload mentioned no declared field at all.
// Applying an empty change set is the identity.
func (cs *ChangeSet[R]) Empty() bool {
	for _, change := range cs.changes {
		if change.state != stateAbsent {
			return false
		}
	}
	return true
}
