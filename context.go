package apikit

import (
	"context"
	"net/http"
	"time"
)

// Context is what handlers receive instead of a bare context.Context. It
// behaves exactly like the request's context, so it can be passed to
// anything taking a context.Context, and it exposes the raw request and
// response writer for handlers that need headers, streaming, or direct
// control of the response.
type Context interface {
	context.Context

	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

// NewContext wraps a request/response pair in a Context. Wrap calls it
// once per request; it is exported for tests and custom adapters.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &requestContext{w: w, r: r}
}

// requestContext delegates every context.Context method to the request's
// context, so cancellation and deadlines follow the request.
type requestContext struct {
	w http.ResponseWriter
	r *http.Request
}

func (c *requestContext) Request() *http.Request              { return c.r }
func (c *requestContext) ResponseWriter() http.ResponseWriter { return c.w }

func (c *requestContext) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *requestContext) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *requestContext) Err() error                  { return c.r.Context().Err() }
func (c *requestContext) Value(key any) any           { return c.r.Context().Value(key) }

// ContextKey is a collision-safe key for request-scoped values. Create
// one per value as a package-level variable:
//
//	var principalKey = apikit.NewContextKey("principal")
type ContextKey struct{ name string }

// NewContextKey allocates a key. The name only shows up in debug output;
// identity comes from the allocation.
func NewContextKey(name string) *ContextKey {
	return &ContextKey{name: name}
}

func (k *ContextKey) String() string { return "apikit context key " + k.name }

// ContextValue reads a typed value from ctx, returning T's zero value
// when the key is absent or holds a different type.
//
//	principal := apikit.ContextValue[string](ctx, principalKey)
func ContextValue[T any](ctx context.Context, key any) T {
	v, _ := ctx.Value(key).(T)
	return v
}
