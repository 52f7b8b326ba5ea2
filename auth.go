package apikit

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrymomot/apikit/apierror"
	"github.com/dmitrymomot/apikit/respond"
)

// BearerCheck authorizes a bearer token. It may return a derived context
// carrying the authenticated identity; returning a nil context keeps the
// request context unchanged. A returned error aborts the request:
// an *apierror.Error or *apierror.Descriptor is written as-is, any other
// error becomes a 403 forbidden response.
type BearerCheck func(ctx context.Context, token string) (context.Context, error)

// RequireBearer guards routes with bearer token authorization.
// Requests without a token receive 401 unauthorized; requests whose
// token fails the check receive the check's error response.
//
//	var userKey = apikit.NewContextKey("user")
//
//	auth := apikit.RequireBearer(func(ctx context.Context, token string) (context.Context, error) {
//		user, err := sessions.ByToken(ctx, token)
//		if err != nil {
//			return nil, err
//		}
//		return context.WithValue(ctx, userKey, user), nil
//	}, mapper)
//
//	r.With(auth).Patch("/users/{id}", updateUser)
func RequireBearer(check BearerCheck, m *respond.Mapper) func(http.Handler) http.Handler {
	if m == nil {
		m = respond.NewMapper()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				m.Write(w, r, ErrUnauthorized.New())
				return
			}

			ctx, err := check(r.Context(), token)
			if err != nil {
				if resolved, ok := apierror.From(err); ok {
					m.Write(w, r, resolved)
					return
				}
				m.Write(w, r, ErrForbidden.New(apierror.Cause(err)))
				return
			}

			if ctx != nil {
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer ..." header.
func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(auth, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
