package apikit

import (
	"context"
	"net/http"
)

// Shield detaches the request context from client cancellation so the
// handler always runs to completion, even when the connection closes
// mid-request. Deadlines and cancellation from the client no longer
// propagate; values such as the request ID are preserved.
//
// Use it on endpoints whose side effects must not be interrupted halfway,
// like multi-step updates that are not wrapped in a transaction.
//
//	r.With(apikit.Shield).Patch("/users/{id}", updateUser)
func Shield(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithoutCancel(r.Context())))
	})
}
