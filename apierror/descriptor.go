package apierror

import (
	"reflect"
)

// Descriptor is the static definition of one error variant: a stable
// machine-readable code, a fixed HTTP status, and a human-readable message
// template. Descriptors are declared once as package-level variables and
// never change at runtime; occurrences are created per failed operation
// with New.
//
// The code is part of the API contract: clients match on it, and it must
// stay stable across releases. The message may reference fields of the
// occurrence details using {field} placeholders, resolved by the response
// mapper when a template engine is configured.
type Descriptor struct {
	code        string
	status      int
	message     string
	description string
	detailsType reflect.Type
}

// DescriptorOption configures a Descriptor at definition time.
type DescriptorOption func(*Descriptor)

// WithDetailsType declares the shape of the structured details payload
// attached to occurrences of this descriptor. The type is only used for
// documentation metadata (see respond.Docs); it does not constrain what
// Details accepts at raise time.
func WithDetailsType[T any]() DescriptorOption {
	return func(d *Descriptor) {
		d.detailsType = reflect.TypeOf((*T)(nil)).Elem()
	}
}

// WithDescription sets the human-readable description used in generated
// documentation. It defaults to the message template.
func WithDescription(description string) DescriptorOption {
	return func(d *Descriptor) {
		d.description = description
	}
}

// Define declares an error variant. It is intended for package-level use:
//
//	var ErrNotFound = apierror.Define("not_found", http.StatusNotFound, "user does not exist")
//
// Define performs no validation; descriptors are validated when they are
// registered in a Taxonomy, so that misdeclarations fail at process startup
// rather than at request time.
func Define(code string, status int, message string, opts ...DescriptorOption) *Descriptor {
	d := &Descriptor{
		code:    code,
		status:  status,
		message: message,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.description == "" {
		d.description = message
	}
	return d
}

// Code returns the stable machine-readable code.
func (d *Descriptor) Code() string { return d.code }

// Status returns the HTTP status code fixed for this variant.
func (d *Descriptor) Status() int { return d.status }

// Message returns the raw message template.
func (d *Descriptor) Message() string { return d.message }

// Description returns the documentation description.
func (d *Descriptor) Description() string { return d.description }

// DetailsType returns the declared details shape, or nil when the
// descriptor carries no structured details.
func (d *Descriptor) DetailsType() reflect.Type { return d.detailsType }

// Error implements the error interface so descriptors can be used as
// match targets with errors.Is:
//
//	if errors.Is(err, users.ErrNotFound) { ... }
func (d *Descriptor) Error() string {
	return d.code + ": " + d.message
}

// New creates an occurrence of this variant. It never fails: raising an
// error is pure construction. Options attach per-occurrence details and an
// underlying cause.
func (d *Descriptor) New(opts ...ErrorOption) *Error {
	e := &Error{desc: d}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
