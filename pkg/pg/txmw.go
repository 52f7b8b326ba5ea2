package pg

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/apikit/apierror"
	"github.com/dmitrymomot/apikit/respond"
)

// Beginner starts transactions. *pgxpool.Pool implements it.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Querier is the query surface shared by pools and transactions, letting
// repositories run inside or outside a request transaction unchanged.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txContextKey struct{}

// TxFromContext returns the transaction opened by TxMiddleware for this
// request, if any.
func TxFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txContextKey{}).(pgx.Tx)
	return tx, ok
}

// QuerierFromContext returns the request transaction when one is present,
// falling back to db otherwise.
func QuerierFromContext(ctx context.Context, db Querier) Querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return db
}

// TxOption configures TxMiddleware.
type TxOption func(*txConfig)

type txConfig struct {
	check func(status int) bool
}

// WithCommitCheck overrides the commit decision. The default commits when
// the response status is below 400 and rolls back otherwise.
//
//	pg.TxMiddleware(pool, mapper, pg.WithCommitCheck(func(status int) bool {
//		return status == http.StatusOK
//	}))
func WithCommitCheck(fn func(status int) bool) TxOption {
	return func(c *txConfig) {
		if fn != nil {
			c.check = fn
		}
	}
}

// TxMiddleware opens a database transaction for each request and exposes it
// through the request context. The response is buffered until the handler
// returns; the transaction commits when the response is successful and rolls
// back otherwise, so handlers returning error responses leave no partial
// writes behind. Panics roll back and propagate.
//
//	r := chi.NewRouter()
//	r.Use(pg.TxMiddleware(pool, mapper))
//
// Inside handlers and repositories:
//
//	q := pg.QuerierFromContext(ctx, pool)
//	row := q.QueryRow(ctx, query, args)
func TxMiddleware(db Beginner, m *respond.Mapper, opts ...TxOption) func(http.Handler) http.Handler {
	cfg := txConfig{
		check: func(status int) bool { return status < http.StatusBadRequest },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if m == nil {
		m = respond.NewMapper()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tx, err := db.Begin(ctx)
			if err != nil {
				m.Write(w, r, respond.ErrInternal.New(apierror.Cause(err)))
				return
			}

			settled := false
			defer func() {
				if !settled {
					_ = tx.Rollback(ctx)
				}
			}()

			buf := newBufferedWriter()
			next.ServeHTTP(buf, r.WithContext(context.WithValue(ctx, txContextKey{}, tx)))
			settled = true

			if cfg.check(buf.statusCode()) {
				if err := tx.Commit(ctx); err != nil {
					m.Write(w, r, respond.ErrInternal.New(apierror.Cause(err)))
					return
				}
			} else if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
				m.Write(w, r, respond.ErrInternal.New(apierror.Cause(err)))
				return
			}

			buf.flushTo(w)
		})
	}
}

// bufferedWriter captures the handler's response so the transaction outcome
// can replace it when commit fails.
type bufferedWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newBufferedWriter() *bufferedWriter {
	return &bufferedWriter{header: make(http.Header)}
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(status int) {
	if b.status == 0 {
		b.status = status
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedWriter) statusCode() int {
	if b.status == 0 {
		return http.StatusOK
	}
	return b.status
}

func (b *bufferedWriter) flushTo(w http.ResponseWriter) {
	h := w.Header()
	for key, values := range b.header {
		for _, v := range values {
			h.Add(key, v)
		}
	}
	w.WriteHeader(b.statusCode())
	if b.body.Len() > 0 {
		_, _ = w.Write(b.body.Bytes())
	}
}
