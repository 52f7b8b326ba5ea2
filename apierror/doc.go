// Package apierror provides a declarative error taxonomy for HTTP APIs:
// error variants are defined once as descriptors, registered in a validated
// taxonomy, and raised as immutable occurrences that map deterministically
// onto wire responses.
//
// The package separates three concerns that are usually tangled together:
//
//   - Definition. Define declares a variant with a stable machine-readable
//     code, a fixed HTTP status, and a message template. Descriptors are
//     package-level variables, the same way sentinel errors are.
//   - Registration. New collects descriptors into a named Taxonomy and
//     validates the whole set: empty or duplicate codes and out-of-range
//     statuses fail construction with ErrDefinitionConflict, so a
//     misdeclared API surface dies at startup, not at request time.
//   - Raising. Descriptor.New creates an occurrence, optionally carrying
//     structured Details for the response body and a Cause for diagnostics.
//     Raising is pure construction and never fails.
//
// # Usage
//
//	var (
//		ErrNotFound   = apierror.Define("not_found", http.StatusNotFound, "user does not exist")
//		ErrEmailTaken = apierror.Define("email_taken", http.StatusConflict, "email is already registered")
//
//		Errors = apierror.MustNew("users", ErrNotFound, ErrEmailTaken)
//	)
//
//	func (s *Service) User(ctx context.Context, id uuid.UUID) (User, error) {
//		u, err := s.repo.Find(ctx, id)
//		if errors.Is(err, pgx.ErrNoRows) {
//			return User{}, ErrNotFound.New(apierror.Cause(err))
//		}
//		...
//	}
//
// Callers match occurrences against descriptors with the standard errors
// package:
//
//	if errors.Is(err, users.ErrNotFound) { ... }
//
// # Catalogs
//
// Taxonomies can alternatively be loaded from YAML catalogs with
// LoadCatalog, which applies the same definition checks as New. Catalogs
// suit services that keep their error surface under review outside of Go
// code.
//
// # Concurrency
//
// Descriptors, taxonomies, and occurrences are immutable after construction
// and safe for concurrent use without synchronization.
package apierror
