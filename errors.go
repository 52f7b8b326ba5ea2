package apikit

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/apikit/apierror"
	"github.com/dmitrymomot/apikit/respond"
)

// ErrNilResponse is reported when a handler returns a nil Response.
var ErrNilResponse = errors.New("handler returned nil response")

// Built-in descriptors for common HTTP failures. Raise them directly or
// wrap domain causes:
//
//	return apikit.Error(apikit.ErrNotFound.New())
//	return apikit.Error(apikit.ErrConflict.New(apierror.Cause(err)))
var (
	ErrBadRequest       = apierror.Define("bad_request", http.StatusBadRequest, "The request could not be understood")
	ErrUnauthorized     = apierror.Define("unauthorized", http.StatusUnauthorized, "Authentication is required")
	ErrForbidden        = apierror.Define("forbidden", http.StatusForbidden, "You do not have access to this resource")
	ErrNotFound         = apierror.Define("not_found", http.StatusNotFound, "The requested resource was not found")
	ErrMethodNotAllowed = apierror.Define("method_not_allowed", http.StatusMethodNotAllowed, "The method is not allowed for this resource")
	ErrRequestTimeout   = apierror.Define("request_timeout", http.StatusRequestTimeout, "The request took too long to complete")
	ErrConflict         = apierror.Define("conflict", http.StatusConflict, "The request conflicts with the current state of the resource")
	ErrUnsupportedMedia = apierror.Define("unsupported_media_type", http.StatusUnsupportedMediaType, "The request media type is not supported")
	ErrUnprocessable    = apierror.Define("unprocessable_entity", http.StatusUnprocessableEntity, "The request could not be processed")
	ErrTooManyRequests  = apierror.Define("too_many_requests", http.StatusTooManyRequests, "Too many requests were received, slow down")
	ErrNotImplemented   = apierror.Define("not_implemented", http.StatusNotImplemented, "This functionality is not implemented")
	ErrUnavailable      = apierror.Define("service_unavailable", http.StatusServiceUnavailable, "The service is temporarily unavailable")
)

// Errors is the taxonomy of built-in descriptors. Merge it with your own
// taxonomies when generating documentation:
//
//	docs := respond.Docs(apikit.Errors, users.Errors)
var Errors = apierror.MustNew("apikit",
	ErrBadRequest,
	ErrUnauthorized,
	ErrForbidden,
	ErrNotFound,
	ErrMethodNotAllowed,
	ErrRequestTimeout,
	ErrConflict,
	ErrUnsupportedMedia,
	ErrUnprocessable,
	ErrTooManyRequests,
	respond.ErrInternal,
	ErrNotImplemented,
	ErrUnavailable,
)
