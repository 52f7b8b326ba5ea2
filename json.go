package apikit

import (
	"encoding/json"
	"net/http"
)

// jsonResponse implements Response for JSON rendering.
type jsonResponse struct {
	status int
	header http.Header
	body   any
}

func (j *jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for key, values := range j.header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	if j.body == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithStatus sets a custom HTTP status code.
func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithHeader adds a response header.
func WithHeader(key, value string) JSONOption {
	return func(r *jsonResponse) {
		if r.header == nil {
			r.header = make(http.Header)
		}
		r.header.Add(key, value)
	}
}

// JSON creates a 200 response encoding v as a JSON body.
//
//	return apikit.JSON(user)
//	return apikit.JSON(user, apikit.WithStatus(http.StatusCreated))
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   v,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NoContent creates an empty 204 response.
func NoContent() Response {
	return &jsonResponse{status: http.StatusNoContent}
}

// errorResponse defers rendering to the wrapper's error handler.
type errorResponse struct {
	err error
}

func (e *errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.err
}

// Error creates a Response that surfaces err to the configured error
// handler, which resolves it to a deterministic JSON error body.
//
//	user, err := svc.Update(ctx, id, req)
//	if err != nil {
//		return apikit.Error(err)
//	}
//	return apikit.JSON(user)
func Error(err error) Response {
	if err == nil {
		err = ErrNilResponse
	}
	return &errorResponse{err: err}
}
