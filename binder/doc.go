// Package binder parses HTTP requests into typed values.
//
// Binders are plain functions with the signature func(r *http.Request, v any) error,
// designed to be composed by apikit.Wrap. Each binder reads one source
// (JSON body, query string, path parameters) and fills the struct fields
// tagged for it, so a single request type can collect values from several
// sources:
//
//	type UpdateUserRequest struct {
//		UserID string `path:"id"`
//		Expand bool   `query:"expand"`
//	}
//
//	r.Patch("/users/{id}", apikit.Wrap(handler,
//		apikit.WithBinders(
//			binder.Path(chi.URLParam),
//			binder.Query(),
//		),
//	))
//
// A binder that does not apply to a request returns ErrBinderNotApplicable
// and the wrapper moves on to the next one. All other failures abort the
// request and surface as 400-level responses.
package binder
