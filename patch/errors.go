package patch

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/apikit/apierror"
)

// FieldDetail is the structured details payload for field-level failures.
type FieldDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// InvariantDetail is the structured details payload for cross-field
// invariant violations.
type InvariantDetail struct {
	Invariant string `json:"invariant"`
	Reason    string `json:"reason"`
}

// Request-time failures of decoding and applying patches. All of them are
// occurrences of the package taxonomy, so services compose them into their
// response documentation alongside their own variants.
var (
	ErrDecode = apierror.Define("decode_error", http.StatusBadRequest,
		"request body could not be decoded",
		apierror.WithDetailsType[FieldDetail](),
		apierror.WithDescription("malformed JSON or a field value of the wrong type"))

	ErrUnknownField = apierror.Define("unknown_field", http.StatusBadRequest,
		"{field} is not a known field",
		apierror.WithDetailsType[FieldDetail](),
		apierror.WithDescription("the payload mentions a field the schema does not declare"))

	ErrNonClearable = apierror.Define("non_clearable_field", http.StatusUnprocessableEntity,
		"{field} cannot be cleared",
		apierror.WithDetailsType[FieldDetail](),
		apierror.WithDescription("null was submitted for a field that does not permit clearing"))

	ErrValidation = apierror.Define("validation_failed", http.StatusUnprocessableEntity,
		"{field} is invalid: {reason}",
		apierror.WithDetailsType[FieldDetail](),
		apierror.WithDescription("a submitted value failed the field's validation"))

	ErrInvariant = apierror.Define("cross_field_invariant_violated", http.StatusUnprocessableEntity,
		"{invariant} does not hold: {reason}",
		apierror.WithDetailsType[InvariantDetail](),
		apierror.WithDescription("the patched record violates a cross-field invariant; nothing was applied"))
)

// Errors is the package taxonomy covering every request-time patch failure.
var Errors = apierror.MustNew("patch",
	ErrDecode,
	ErrUnknownField,
	ErrNonClearable,
	ErrValidation,
	ErrInvariant,
)

// ErrSchemaConflict reports an invalid schema definition: an empty or
// duplicate field name, a nil accessor, or a nil invariant check. Schema
// construction is the only patch operation that can fail this way, and it
// fails at process startup.
var ErrSchemaConflict = errors.New("patch: schema conflict")
