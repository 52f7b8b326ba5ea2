package respond

import (
	"net/http"

	"github.com/dmitrymomot/apikit/apierror"
)

// Body is the fixed wire contract for error responses:
//
//	{"code": string, "message": string, "details"?: object}
//
// Code is the stable machine-readable discriminator clients match on,
// Message is human-readable, and Details carries optional structured data
// described by the descriptor's details type.
type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrInternal is the built-in fallback variant. Errors that do not belong
// to any taxonomy resolve to it, with a deliberately generic message so no
// internal detail leaks to clients. Include it in a service's taxonomy so
// generated documentation enumerates the 500 response.
var ErrInternal = apierror.Define(
	"internal_error",
	http.StatusInternalServerError,
	"An error occurred processing your request",
	apierror.WithDescription("unexpected internal fault; safe generic body, details only in server logs"),
)
