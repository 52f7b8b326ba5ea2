// Package apikit provides a minimal, type-safe toolkit for building JSON
// APIs with deterministic error responses in Go.
//
// Every failure an API can report is declared up front as an error
// descriptor with a stable machine-readable code, an HTTP status, and a
// human-readable message. Handlers raise occurrences of those descriptors
// and the toolkit renders them into one canonical wire shape, so clients
// never have to parse free-form error strings.
//
// Key Features:
//
//   - Type-safe HTTP handlers using generics
//   - Declarative error taxonomies with deterministic JSON bodies
//   - Tri-state JSON PATCH values distinguishing absent, null, and set
//   - Extensible request binding and error handling
//   - Context management with typed values
//   - Router-agnostic design
//
// Basic Usage:
//
//	// Declare the failures your API can report
//	var ErrUserNotFound = apierror.Define("user_not_found", http.StatusNotFound, "User does not exist")
//
//	// Define your request type
//	type GetUserRequest struct {
//		UserID string `path:"id"`
//	}
//
//	// Create a type-safe handler with standard context
//	handler := apikit.HandlerFunc[apikit.Context, GetUserRequest](func(ctx apikit.Context, req GetUserRequest) apikit.Response {
//		user, err := store.Find(ctx, req.UserID)
//		if err != nil {
//			return apikit.Error(ErrUserNotFound.New(apierror.Cause(err)))
//		}
//		return apikit.JSON(user)
//	})
//
//	// Use with any router
//	r.Get("/users/{id}", apikit.Wrap(handler,
//		apikit.WithBinders[apikit.Context, GetUserRequest](binder.Path(chi.URLParam)),
//		apikit.WithMapper[apikit.Context, GetUserRequest](mapper),
//	))
//
// Custom Context Support:
//
// Handlers can use custom context types for direct access to
// application-specific data:
//
//	type AppContext interface {
//		apikit.Context
//		UserID() string
//	}
//
//	type appContext struct {
//		apikit.Context
//		userID string
//	}
//
//	func (c *appContext) UserID() string { return c.userID }
//
//	func NewAppContext(w http.ResponseWriter, r *http.Request) AppContext {
//		return &appContext{
//			Context: apikit.NewContext(w, r),
//			userID:  extractUserID(r),
//		}
//	}
//
//	handler := apikit.HandlerFunc[AppContext, GetUserRequest](
//		func(ctx AppContext, req GetUserRequest) apikit.Response {
//			userID := ctx.UserID() // Direct access, no type assertion
//			// ... handle request
//		},
//	)
//
//	r.Get("/users/{id}", apikit.Wrap(handler,
//		apikit.WithContextFactory[AppContext, GetUserRequest](NewAppContext),
//	))
//
// Context Management:
//
// The Context interface embeds context.Context and adds HTTP-specific
// accessors. Typed values travel through it with ContextKey:
//
//	userKey := apikit.NewContextKey("user")
//	ctx = context.WithValue(ctx, userKey, &User{ID: 123})
//
//	user := apikit.ContextValue[*User](ctx, userKey)
//	if user != nil {
//		// Use user
//	}
package apikit
