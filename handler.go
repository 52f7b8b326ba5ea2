package apikit

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/apikit/apierror"
	"github.com/dmitrymomot/apikit/binder"
	"github.com/dmitrymomot/apikit/respond"
)

// HandlerFunc is a typed HTTP handler: the request arrives already bound
// into R, and the returned Response knows how to render itself. C is the
// context type handlers receive; use the plain Context unless the
// application defines a richer one.
//
//	patchUser := apikit.HandlerFunc[apikit.Context, PatchUserRequest](
//		func(ctx apikit.Context, req PatchUserRequest) apikit.Response {
//			user, err := users.Patch(ctx, req.ID, req.Body)
//			if err != nil {
//				return apikit.Error(err)
//			}
//			return apikit.JSON(user)
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response is anything that can write itself to the client. Render
// errors go to the wrapper's error handler, which turns them into
// taxonomy-shaped JSON bodies.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses one aspect of a request (path, query, body) into v.
type Bind func(r *http.Request, v any) error

// ErrorHandler receives binding, handler, and render failures.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc with cross-cutting behavior. The first
// decorator passed to WithDecorators ends up outermost.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*wrapSettings[C, R])

type wrapSettings[C Context, R any] struct {
	binders      []Bind
	errorHandler ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	decorators   []Decorator[C, R]
}

// WithBinder sets a single request binder, replacing any configured
// before it.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(s *wrapSettings[C, R]) {
		if b != nil {
			s.binders = []Bind{b}
		}
	}
}

// WithBinders appends binders applied in order. Each binder reads only
// its own struct tags, so one request type can combine several sources:
//
//	r.Patch("/users/{id}", apikit.Wrap(patchUser,
//		apikit.WithBinders[apikit.Context, PatchUserRequest](
//			binder.Path(chiParams), // path: tags
//			binder.Query(),         // query: tags
//			binder.JSON(),          // json: tags
//		),
//	))
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(s *wrapSettings[C, R]) {
		s.binders = append(s.binders, binders...)
	}
}

// WithErrorHandler replaces the default error handling. Most services
// want WithMapper instead so all errors flow through one taxonomy
// mapper.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(s *wrapSettings[C, R]) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithMapper routes binding and rendering failures through m, producing
// the same wire shape and leveled diagnostics as handler-returned
// errors.
func WithMapper[C Context, R any](m *respond.Mapper) WrapOption[C, R] {
	return func(s *wrapSettings[C, R]) {
		if m != nil {
			s.errorHandler = func(ctx C, err error) {
				m.Write(ctx.ResponseWriter(), ctx.Request(), err)
			}
		}
	}
}

// WithContextFactory supplies the constructor for custom context types.
// Required whenever C is not the plain Context interface.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(s *wrapSettings[C, R]) {
		if f != nil {
			s.newContext = f
		}
	}
}

// WithDecorators wraps the handler, first decorator outermost.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(s *wrapSettings[C, R]) {
		s.decorators = append(s.decorators, decorators...)
	}
}

// Wrap adapts a typed HandlerFunc to http.HandlerFunc: it builds the
// context, runs the binders, invokes the (decorated) handler, and
// renders the response. Any failure on the way is passed to the error
// handler, which defaults to a fresh respond.Mapper on the process
// logger, so even an unconfigured handler answers with a well-formed
// error body.
//
//	r.Get("/users/{id}", apikit.Wrap(getUser,
//		apikit.WithBinders[apikit.Context, GetUserRequest](pathParams),
//		apikit.WithMapper[apikit.Context, GetUserRequest](mapper),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	s := &wrapSettings[C, R]{}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = func(ctx C, err error) {
			respond.NewMapper().Write(ctx.ResponseWriter(), ctx.Request(), err)
		}
	}
	if s.newContext == nil {
		s.newContext = defaultContextFactory[C]
	}

	// First decorator outermost means wrapping back to front.
	invoke := h
	for i := len(s.decorators) - 1; i >= 0; i-- {
		invoke = s.decorators[i](invoke)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := s.newContext(w, r)

		var req R
		for _, bind := range s.binders {
			err := bind(r, &req)
			if err == nil || errors.Is(err, binder.ErrBinderNotApplicable) {
				continue
			}
			s.errorHandler(ctx, asRequestError(err))
			return
		}

		resp := invoke(ctx, req)
		if resp == nil {
			s.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			s.errorHandler(ctx, err)
		}
	}
}

// defaultContextFactory covers the common case where C is the plain
// Context interface. Custom context types must bring their own factory.
func defaultContextFactory[C Context](w http.ResponseWriter, r *http.Request) C {
	if c, ok := any(NewContext(w, r)).(C); ok {
		return c
	}
	panic("apikit: custom context types need WithContextFactory")
}

// asRequestError maps binder failures onto the builtin taxonomy so
// malformed input surfaces as a 4xx instead of the 500 fallback.
func asRequestError(err error) error {
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return ErrUnsupportedMedia.New(apierror.Cause(err))
	case errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseQuery),
		errors.Is(err, binder.ErrFailedToParsePath):
		return ErrBadRequest.New(apierror.Cause(err))
	default:
		return err
	}
}
