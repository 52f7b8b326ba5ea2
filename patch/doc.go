// Package patch implements tri-state partial updates over JSON: every field
// of a PATCH payload is either Absent (not mentioned), Clear (explicit
// null), or Set (a replacement value), and application is all-or-nothing.
//
// Two-state representations like *T conflate "leave this field alone" with
// "reset this field", which corrupts data on PATCH endpoints. Value[T]
// keeps the three states apart through encoding/json: a missing key leaves
// the zero value (Absent), null decodes to Clear, and anything else decodes
// to Set. Tag fields with ",omitzero" so marshaling omits Absent values and
// round-trips preserve the distinction.
//
// # Direct use
//
// Value works standalone in request structs:
//
//	type UpdateUserRequest struct {
//		Name patch.Value[string] `json:"name,omitzero"`
//		Bio  patch.Value[string] `json:"bio,omitzero"`
//		Age  patch.Value[int]    `json:"age,omitzero"`
//	}
//
//	if name, ok := req.Name.Get(); ok {
//		user.Name = name
//	}
//	user.Bio = req.Bio.Or(user.Bio)
//
// # Schemas
//
// Schema[R] lifts the per-field plumbing into a declaration: wire names,
// record accessors, validators, clearing rules, defaults, and cross-field
// invariants. Decode turns a payload into a ChangeSet (rejecting unknown
// keys unless AllowUnknownFields is declared), Apply merges a change set
// into a record copy-then-commit, and Patch does both:
//
//	updated, err := userSchema.Patch(user, body)
//	if err != nil {
//		mapper.Write(w, r, err) // decode_error, validation_failed, ...
//		return
//	}
//
// Apply never mutates its input. Updates run on a working copy and the
// original record is returned unchanged on any failure, so a patch that
// trips a validator or invariant leaves no partial writes behind. Records
// holding slices, maps, or pointers should implement Cloner so the working
// copy does not share their backing storage.
//
// Every request-time failure is an occurrence of the package taxonomy
// (Errors): decode_error and unknown_field at 400, non_clearable_field,
// validation_failed, and cross_field_invariant_violated at 422 with
// structured details. Handlers pass them to a respond.Mapper untouched.
//
// # Persistence
//
// Columns projects the provided fields of an applied change set into a
// map keyed by wire name for partial UPDATE statements; pg.BuildUpdate
// turns that map into a parameterized query.
//
// # Concurrency
//
// Schemas and change sets are immutable after construction and safe for
// concurrent use. Apply is stateless; distinct requests may share one
// schema without synchronization.
package patch
