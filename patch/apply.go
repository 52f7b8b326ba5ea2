package patch

import (
	"github.com/dmitrymomot/apikit/apierror"
)

// Apply merges a change set into rec and returns the patched copy. The
// input record is never mutated: all updates run against a working copy
// (through Clone when R implements Cloner), so a failing validation or
// invariant simply returns the original record alongside the occurrence.
// All-or-nothing is structural, not undo-based.
//
// Per field: Absent is a no-op; Clear resets to the declared default (or
// rejects with non_clearable_field); Set runs the field's validators and
// assigns, or rejects with validation_failed carrying {field, reason}
// details. Cross-field invariants run last against the fully updated copy
// and reject with cross_field_invariant_violated.
func (s *Schema[R]) Apply(rec R, cs *ChangeSet[R]) (R, error) {
	if cs == nil {
		return rec, nil
	}

	working := cloneRecord(rec)
	for _, def := range s.fields {
		change, ok := cs.changes[def.name]
		if !ok || change.state == stateAbsent {
			continue
		}
		if change.state == stateClear && !def.clearable {
			return rec, ErrNonClearable.New(
				apierror.Details(FieldDetail{Field: def.name, Reason: "field cannot be cleared"}),
			)
		}
		if err := change.mutate(&working); err != nil {
			return rec, ErrValidation.New(
				apierror.Details(FieldDetail{Field: def.name, Reason: err.Error()}),
				apierror.Cause(err),
			)
		}
	}

	for _, inv := range s.invariants {
		if err := inv.check(&working); err != nil {
			return rec, ErrInvariant.New(
				apierror.Details(InvariantDetail{Invariant: inv.name, Reason: err.Error()}),
				apierror.Cause(err),
			)
		}
	}
	return working, nil
}

// Patch decodes data and applies the result to rec in one step.
func (s *Schema[R]) Patch(rec R, data []byte) (R, error) {
	cs, err := s.Decode(data)
	if err != nil {
		return rec, err
	}
	return s.Apply(rec, cs)
}

// Columns projects the provided fields' final values out of an applied
// record, keyed by wire name: the shape a partial UPDATE statement needs.
// Call it with the record returned by Apply; fields the payload never
// mentioned are excluded, cleared fields carry their reset value.
func (s *Schema[R]) Columns(rec *R, cs *ChangeSet[R]) map[string]any {
	cols := make(map[string]any)
	if rec == nil || cs == nil {
		return cols
	}
	for _, def := range s.fields {
		change, ok := cs.changes[def.name]
		if !ok || change.state == stateAbsent {
			continue
		}
		cols[def.name] = def.current(rec)
	}
	return cols
}

func cloneRecord[R any](rec R) R {
	if c, ok := any(rec).(Cloner[R]); ok {
		return c.Clone()
	}
	return rec
}
