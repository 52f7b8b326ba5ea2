// Package pg provides utilities for interacting with PostgreSQL using the
// pgx/v5 driver. It offers a thin layer around connection pooling,
// migrations, health checks, per-request transactions, and common error
// helpers so applications can bootstrap a resilient database layer with a
// few lines of code.
//
// # Building Blocks
//
//   - Config: a declarative struct populated from environment variables via
//     github.com/caarlos0/env. It controls connection pool limits,
//     health-check cadence, and migration paths.
//
//   - Connect: opens a *pgxpool.Pool based on Config, retrying with backoff
//     until the database becomes available.
//
//   - Migrate: runs goose schema migrations against the same connection
//     pool before the service starts serving traffic.
//
//   - TxMiddleware: opens one transaction per HTTP request, commits on
//     successful responses, and rolls back on error responses or panics.
//     Handlers reach the transaction through QuerierFromContext.
//
//   - BuildUpdate: renders partial UPDATE statements from the column maps
//     a patch change set produces.
//
// # Usage
//
//	func main() {
//	    var cfg pg.Config
//	    config.MustLoad(&cfg)
//
//	    ctx := context.Background()
//	    pool, err := pg.Connect(ctx, cfg)
//	    if err != nil {
//	        panic(err)
//	    }
//	    defer pool.Close()
//
//	    if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	        panic(err)
//	    }
//
//	    r := chi.NewRouter()
//	    r.Use(pg.TxMiddleware(pool, mapper))
//	}
//
// # Error Handling
//
// Helpers such as IsNotFoundError, IsDuplicateKeyError, and
// IsForeignKeyViolationError classify pgx and *pgconn.PgError values so
// business logic can map database failures onto API error descriptors.
package pg
