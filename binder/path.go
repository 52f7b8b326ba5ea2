package binder

import (
	"fmt"
	"net/http"
)

// Path returns a binder that fills struct fields tagged `path:"name"`
// from route parameters. The extractor adapts whatever router is in
// use; it is called once per tagged field. Fields without a path tag,
// or tagged `path:"-"`, never participate, and empty parameter values
// leave the field untouched.
//
// With chi:
//
//	type getUserRequest struct {
//		ID string `path:"id"`
//	}
//
//	r.Get("/users/{id}", apikit.Wrap(getUser,
//		apikit.WithBinders[apikit.Context, getUserRequest](binder.Path(chi.URLParam)),
//	))
//
// With net/http 1.22+ route patterns:
//
//	mux.HandleFunc("GET /users/{id}", apikit.Wrap(getUser,
//		apikit.WithBinders[apikit.Context, getUserRequest](
//			binder.Path(func(r *http.Request, name string) string { return r.PathValue(name) }),
//		),
//	))
func Path(extract func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extract == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrFailedToParsePath)
		}

		rv, err := structElem(v, ErrFailedToParsePath)
		if err != nil {
			return err
		}
		rt := rv.Type()

		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			// Path binding is opt-in per field, unlike query binding.
			if tag := sf.Tag.Get("path"); tag == "" || tag == "-" {
				continue
			}
			if !rv.Field(i).CanSet() {
				continue
			}

			name, _ := parseFieldTag(sf, "path")
			raw := extract(r, name)
			if raw == "" {
				continue
			}

			if err := setFieldValue(rv.Field(i), []string{raw}); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrFailedToParsePath, sf.Name, err)
			}
		}

		return nil
	}
}
