package main

import (
	"context"
	"crypto/subtle"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/apikit"
	"github.com/dmitrymomot/apikit/apierror"
	"github.com/dmitrymomot/apikit/binder"
	"github.com/dmitrymomot/apikit/patch"
	"github.com/dmitrymomot/apikit/pkg/clientip"
	"github.com/dmitrymomot/apikit/pkg/httpserver"
	"github.com/dmitrymomot/apikit/pkg/pg"
	"github.com/dmitrymomot/apikit/pkg/requestid"
	"github.com/dmitrymomot/apikit/pkg/validator"
	"github.com/dmitrymomot/apikit/respond"
)

// pathParams pulls path values out of chi's route context.
var pathParams = binder.Path(func(r *http.Request, name string) string {
	return chi.URLParam(r, name)
})

var principalKey = apikit.NewContextKey("principal")

func newRouter(pool *pgxpool.Pool, mapper *respond.Mapper, log *slog.Logger, authToken string) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(apikit.Recoverer(log, mapper))

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, pg.Healthcheck(pool)))
	r.Get("/errors", listErrorDocs(mapper))

	r.Route("/users", func(r chi.Router) {
		r.Use(apikit.RequireBearer(staticTokenCheck(authToken), mapper))
		r.Use(apikit.Shield)
		r.Use(pg.TxMiddleware(pool, mapper))

		r.Get("/", listUsersHandler(pool, mapper))
		r.Post("/", createUserHandler(pool, mapper))
		r.Get("/{id}", getUserHandler(pool, mapper))
		r.Patch("/{id}", patchUserHandler(pool, mapper))
	})

	return r
}

// staticTokenCheck accepts a single shared token and stamps the request
// context with the calling principal.
func staticTokenCheck(token string) apikit.BearerCheck {
	return func(ctx context.Context, got string) (context.Context, error) {
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			return nil, errors.New("unknown bearer token")
		}
		return context.WithValue(ctx, principalKey, "example-service"), nil
	}
}

type listUsersRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

func listUsersHandler(pool *pgxpool.Pool, mapper *respond.Mapper) http.HandlerFunc {
	return apikit.Wrap(func(ctx apikit.Context, req listUsersRequest) apikit.Response {
		if req.Limit <= 0 || req.Limit > 100 {
			req.Limit = 20
		}
		if req.Offset < 0 {
			req.Offset = 0
		}
		users, err := listUsers(ctx, pg.QuerierFromContext(ctx, pool), req.Limit, req.Offset)
		if err != nil {
			return apikit.Error(err)
		}
		return apikit.JSON(users)
	},
		apikit.WithBinders[apikit.Context, listUsersRequest](binder.Query()),
		apikit.WithMapper[apikit.Context, listUsersRequest](mapper),
	)
}

type createUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func createUserHandler(pool *pgxpool.Pool, mapper *respond.Mapper) http.HandlerFunc {
	return apikit.Wrap(func(ctx apikit.Context, req createUserRequest) apikit.Response {
		if err := validator.Apply(
			validator.Required("name", req.Name),
			validator.MaxLen("name", req.Name, 100),
			validator.ValidEmail("email", req.Email),
		); err != nil {
			verr := validator.First(err)
			return apikit.Error(apikit.ErrUnprocessable.New(
				apierror.Details(patch.FieldDetail{Field: verr.Field, Reason: verr.Message}),
				apierror.Cause(err)))
		}

		user := User{ID: uuid.New(), Email: &req.Email, Name: req.Name}
		if err := insertUser(ctx, pg.QuerierFromContext(ctx, pool), user); err != nil {
			return apikit.Error(err)
		}
		return apikit.JSON(user, apikit.WithStatus(http.StatusCreated))
	},
		apikit.WithBinders[apikit.Context, createUserRequest](binder.JSON()),
		apikit.WithMapper[apikit.Context, createUserRequest](mapper),
	)
}

type userRequest struct {
	ID string `path:"id"`
}

func getUserHandler(pool *pgxpool.Pool, mapper *respond.Mapper) http.HandlerFunc {
	return apikit.Wrap(func(ctx apikit.Context, req userRequest) apikit.Response {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return apikit.Error(apikit.ErrBadRequest.New(apierror.Cause(err)))
		}
		user, err := findUser(ctx, pg.QuerierFromContext(ctx, pool), id)
		if err != nil {
			return apikit.Error(err)
		}
		return apikit.JSON(user)
	},
		apikit.WithBinders[apikit.Context, userRequest](pathParams),
		apikit.WithMapper[apikit.Context, userRequest](mapper),
	)
}

const patchBodyLimit = 1 << 20

func patchUserHandler(pool *pgxpool.Pool, mapper *respond.Mapper) http.HandlerFunc {
	return apikit.Wrap(func(ctx apikit.Context, req userRequest) apikit.Response {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return apikit.Error(apikit.ErrBadRequest.New(apierror.Cause(err)))
		}

		body, err := io.ReadAll(http.MaxBytesReader(ctx.ResponseWriter(), ctx.Request().Body, patchBodyLimit))
		if err != nil {
			return apikit.Error(apikit.ErrBadRequest.New(apierror.Cause(err)))
		}

		q := pg.QuerierFromContext(ctx, pool)
		user, err := findUser(ctx, q, id)
		if err != nil {
			return apikit.Error(err)
		}

		cs, err := userSchema.Decode(body)
		if err != nil {
			return apikit.Error(err)
		}
		updated, err := userSchema.Apply(user, cs)
		if err != nil {
			return apikit.Error(err)
		}

		columns := userSchema.Columns(&updated, cs)
		if len(columns) == 0 {
			return apikit.JSON(user)
		}
		if err := updateUser(ctx, q, id, columns); err != nil {
			return apikit.Error(err)
		}
		return apikit.JSON(updated)
	},
		apikit.WithBinders[apikit.Context, userRequest](pathParams),
		apikit.WithMapper[apikit.Context, userRequest](mapper),
	)
}

func listErrorDocs(mapper *respond.Mapper) http.HandlerFunc {
	return apikit.Wrap(func(ctx apikit.Context, _ struct{}) apikit.Response {
		return apikit.JSON(respond.Docs(apikit.Errors, patch.Errors, userErrors))
	},
		apikit.WithMapper[apikit.Context, struct{}](mapper),
	)
}
