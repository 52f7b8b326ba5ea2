package binder

import (
	"net/http"
)

// Query returns a binder that fills struct fields from the URL query
// string. Fields bind by `query:"name"` tag, or by lowercased field
// name when untagged; `query:"-"` skips a field. Strings, integers,
// floats, bools, pointers to those, and slices (repeated keys or one
// comma-separated value) are supported.
//
//	type listUsersRequest struct {
//		Cursor string   `query:"cursor"`
//		Limit  int      `query:"limit"`
//		Roles  []string `query:"roles"`  // ?roles=admin&roles=ops or ?roles=admin,ops
//		Active *bool    `query:"active"` // optional
//	}
//
//	r.Get("/users", apikit.Wrap(listUsers,
//		apikit.WithBinders[apikit.Context, listUsersRequest](binder.Query()),
//	))
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
