package apikit_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit"
	"github.com/dmitrymomot/apikit/binder"
)

// stubResponse renders a fixed status and body, or fails on demand.
type stubResponse struct {
	status int
	body   string
	fail   error
}

func (s stubResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if s.fail != nil {
		return s.fail
	}
	w.WriteHeader(s.status)
	w.Write([]byte(s.body))
	return nil
}

func ok(body string) apikit.Response {
	return stubResponse{status: http.StatusOK, body: body}
}

// do runs the wrapped handler against r and captures the response.
func do(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, r)
	return rec
}

func getReq() *http.Request {
	return httptest.NewRequest(http.MethodGet, "/widgets", nil)
}

func TestWrap(t *testing.T) {
	t.Run("zero-config handler serves", func(t *testing.T) {
		var sawCtx apikit.Context
		var sawReq string
		h := apikit.HandlerFunc[apikit.Context, string](func(ctx apikit.Context, req string) apikit.Response {
			sawCtx, sawReq = ctx, req
			return ok("served")
		})

		rec := do(apikit.Wrap(h), getReq())

		require.NotNil(t, sawCtx)
		assert.Empty(t, sawReq, "no binders leave the request at its zero value")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "served", rec.Body.String())
	})

	t.Run("binder fills the request", func(t *testing.T) {
		type createWidget struct{ Name string }
		fromHeader := func(r *http.Request, v any) error {
			v.(*createWidget).Name = r.Header.Get("X-Widget-Name")
			return nil
		}

		h := apikit.HandlerFunc[apikit.Context, createWidget](func(ctx apikit.Context, req createWidget) apikit.Response {
			return ok(req.Name)
		})
		wrapped := apikit.Wrap(h, apikit.WithBinder[apikit.Context, createWidget](fromHeader))

		r := getReq()
		r.Header.Set("X-Widget-Name", "sprocket")
		rec := do(wrapped, r)

		assert.Equal(t, "sprocket", rec.Body.String())
	})

	t.Run("binders run in order, inapplicable ones skipped", func(t *testing.T) {
		type twoStep struct{ First, Second string }
		first := func(r *http.Request, v any) error {
			v.(*twoStep).First = "one"
			return nil
		}
		skipped := func(r *http.Request, v any) error {
			return fmt.Errorf("form binder: %w", binder.ErrBinderNotApplicable)
		}
		second := func(r *http.Request, v any) error {
			v.(*twoStep).Second = v.(*twoStep).First + "-two"
			return nil
		}

		h := apikit.HandlerFunc[apikit.Context, twoStep](func(ctx apikit.Context, req twoStep) apikit.Response {
			return ok(req.Second)
		})
		wrapped := apikit.Wrap(h, apikit.WithBinders[apikit.Context, twoStep](first, skipped, second))

		rec := do(wrapped, getReq())
		assert.Equal(t, "one-two", rec.Body.String())
	})

	t.Run("decorators wrap first-outermost", func(t *testing.T) {
		var order []string
		tag := func(name string) apikit.Decorator[apikit.Context, string] {
			return func(next apikit.HandlerFunc[apikit.Context, string]) apikit.HandlerFunc[apikit.Context, string] {
				return func(ctx apikit.Context, req string) apikit.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := apikit.HandlerFunc[apikit.Context, string](func(ctx apikit.Context, req string) apikit.Response {
			order = append(order, "handler")
			return ok("")
		})

		do(apikit.Wrap(h, apikit.WithDecorators(tag("outer"), tag("inner"))), getReq())

		assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	})

	t.Run("nil option values are ignored", func(t *testing.T) {
		h := apikit.HandlerFunc[apikit.Context, string](func(ctx apikit.Context, req string) apikit.Response {
			return ok("still fine")
		})
		wrapped := apikit.Wrap(h,
			apikit.WithBinder[apikit.Context, string](nil),
			apikit.WithErrorHandler[apikit.Context, string](nil),
			apikit.WithContextFactory[apikit.Context, string](nil),
			apikit.WithMapper[apikit.Context, string](nil),
		)

		var rec *httptest.ResponseRecorder
		require.NotPanics(t, func() { rec = do(wrapped, getReq()) })
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestWrapErrorPaths(t *testing.T) {
	t.Run("render failure answers with masked internal error", func(t *testing.T) {
		h := apikit.HandlerFunc[apikit.Context, string](func(ctx apikit.Context, req string) apikit.Response {
			return stubResponse{fail: errors.New("render failed")}
		})

		rec := do(apikit.Wrap(h), getReq())

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"code":"internal_error","message":"An error occurred processing your request"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "render failed")
	})

	t.Run("nil response answers with internal error", func(t *testing.T) {
		h := apikit.HandlerFunc[apikit.Context, string](func(ctx apikit.Context, req string) apikit.Response {
			return nil
		})

		rec := do(apikit.Wrap(h), getReq())

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "internal_error")
	})

	t.Run("malformed JSON body becomes bad_request", func(t *testing.T) {
		type createWidget struct {
			Name string `json:"name"`
		}
		h := apikit.HandlerFunc[apikit.Context, createWidget](func(ctx apikit.Context, req createWidget) apikit.Response {
			t.Fatal("handler must not run after a bind failure")
			return nil
		})
		wrapped := apikit.Wrap(h, apikit.WithBinder[apikit.Context, createWidget](binder.JSON()))

		r := httptest.NewRequest(http.MethodPost, "/widgets", strings.NewReader(`{"name":`))
		r.Header.Set("Content-Type", "application/json")
		rec := do(wrapped, r)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"bad_request"`)
	})

	t.Run("wrong content type becomes unsupported_media_type", func(t *testing.T) {
		type createWidget struct {
			Name string `json:"name"`
		}
		h := apikit.HandlerFunc[apikit.Context, createWidget](func(ctx apikit.Context, req createWidget) apikit.Response {
			return ok("")
		})
		wrapped := apikit.Wrap(h, apikit.WithBinder[apikit.Context, createWidget](binder.JSON()))

		r := httptest.NewRequest(http.MethodPost, "/widgets", strings.NewReader("name=x"))
		r.Header.Set("Content-Type", "text/plain")
		rec := do(wrapped, r)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"unsupported_media_type"`)
	})

	t.Run("custom error handler sees the raw binder error", func(t *testing.T) {
		bindErr := errors.New("binding failed")
		var seen error

		failing := func(r *http.Request, v any) error { return bindErr }
		onError := func(ctx apikit.Context, err error) {
			seen = err
			ctx.ResponseWriter().WriteHeader(http.StatusBadRequest)
			ctx.ResponseWriter().Write([]byte("custom error: " + err.Error()))
		}
		h := apikit.HandlerFunc[apikit.Context, string](func(ctx apikit.Context, req string) apikit.Response {
			t.Fatal("handler must not run after a bind failure")
			return nil
		})

		rec := do(apikit.Wrap(h,
			apikit.WithBinder[apikit.Context, string](failing),
			apikit.WithErrorHandler[apikit.Context, string](onError),
		), getReq())

		assert.Equal(t, bindErr, seen)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "custom error: binding failed", rec.Body.String())
	})

	t.Run("descriptor occurrences map to their status and body", func(t *testing.T) {
		h := apikit.HandlerFunc[apikit.Context, string](func(ctx apikit.Context, req string) apikit.Response {
			return apikit.Error(apikit.ErrNotFound.New())
		})

		rec := do(apikit.Wrap(h), getReq())

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"code":"not_found","message":"The requested resource was not found"}`, rec.Body.String())
	})

	t.Run("bare descriptors map too", func(t *testing.T) {
		h := apikit.HandlerFunc[apikit.Context, string](func(ctx apikit.Context, req string) apikit.Response {
			return apikit.Error(apikit.ErrForbidden)
		})

		rec := do(apikit.Wrap(h), getReq())

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"forbidden"`)
	})

	t.Run("descriptors survive wrapping", func(t *testing.T) {
		h := apikit.HandlerFunc[apikit.Context, string](func(ctx apikit.Context, req string) apikit.Response {
			return stubResponse{fail: fmt.Errorf("validation failed: %w", apikit.ErrUnprocessable.New())}
		})

		rec := do(apikit.Wrap(h), getReq())

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"unprocessable_entity"`)
	})

	t.Run("unknown errors fall back to masked internal error", func(t *testing.T) {
		h := apikit.HandlerFunc[apikit.Context, string](func(ctx apikit.Context, req string) apikit.Response {
			return apikit.Error(errors.New("database connection failed"))
		})

		rec := do(apikit.Wrap(h), getReq())

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"internal_error"`)
		assert.NotContains(t, rec.Body.String(), "database connection failed")
	})
}

// sessionContext narrows handlers to requests with an authenticated user.
type sessionContext interface {
	apikit.Context
	UserID() string
}

type testSessionContext struct {
	apikit.Context
	userID string
}

func (c *testSessionContext) UserID() string { return c.userID }

func newSessionContext(w http.ResponseWriter, r *http.Request) sessionContext {
	return &testSessionContext{Context: apikit.NewContext(w, r), userID: "user-123"}
}

func TestWrapCustomContext(t *testing.T) {
	t.Run("factory builds the custom context", func(t *testing.T) {
		h := apikit.HandlerFunc[sessionContext, string](func(ctx sessionContext, req string) apikit.Response {
			return ok(ctx.UserID())
		})
		wrapped := apikit.Wrap(h, apikit.WithContextFactory[sessionContext, string](newSessionContext))

		rec := do(wrapped, getReq())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-123", rec.Body.String())
	})

	t.Run("plain Context works without a factory", func(t *testing.T) {
		var factoryUsed bool
		h := apikit.HandlerFunc[apikit.Context, string](func(ctx apikit.Context, req string) apikit.Response {
			require.NotNil(t, ctx.Request())
			require.NotNil(t, ctx.ResponseWriter())
			return ok("")
		})

		wrapped := apikit.Wrap(h, apikit.WithContextFactory[apikit.Context, string](
			func(w http.ResponseWriter, r *http.Request) apikit.Context {
				factoryUsed = true
				return apikit.NewContext(w, r)
			},
		))
		do(wrapped, getReq())
		assert.True(t, factoryUsed)

		rec := do(apikit.Wrap(h), getReq())
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("custom context without a factory panics with a hint", func(t *testing.T) {
		h := apikit.HandlerFunc[sessionContext, string](func(ctx sessionContext, req string) apikit.Response {
			t.Fatal("handler must not run")
			return nil
		})
		wrapped := apikit.Wrap(h)

		var msg string
		func() {
			defer func() {
				if r := recover(); r != nil {
					msg = fmt.Sprint(r)
				}
			}()
			do(wrapped, getReq())
		}()

		require.NotEmpty(t, msg, "expected a panic without a context factory")
		assert.Contains(t, msg, "WithContextFactory")
	})
}
