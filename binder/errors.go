package binder

import "errors"

// Common binding errors. Wrappers can match them with errors.Is to map
// binding failures onto client error responses.
var (
	// ErrBinderNotApplicable signals that a binder does not apply to the
	// request and should be skipped by the wrapper.
	ErrBinderNotApplicable = errors.New("binder not applicable to this request")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrFailedToParsePath    = errors.New("failed to parse path parameters")
)
