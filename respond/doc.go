// Package respond maps taxonomy errors onto deterministic HTTP responses
// with the fixed wire contract:
//
//	{"code": string, "message": string, "details"?: object}
//
// The Mapper is the boundary between domain errors and the wire. Its core
// projection, Response, is a pure function: the same occurrence always
// produces the same status and body, so the full response surface of an API
// can be enumerated ahead of time (see Docs). Side effects live only in
// Write, which renders the body and emits exactly one structured diagnostic
// per error via log/slog: Warn for client errors, Error for server errors,
// with the code, status, method, path, and request correlation ID attached.
//
// Errors that belong to no taxonomy never leak: Write resolves them to the
// built-in internal_error variant with a generic message, and the original
// error is recorded in the diagnostic only.
//
// # Usage
//
//	mapper := respond.NewMapper(
//		respond.WithLogger(log),
//		respond.WithTemplates(respond.Interpolate),
//	)
//
//	func handleUpdate(w http.ResponseWriter, r *http.Request) {
//		user, err := svc.Update(r.Context(), id, r.Body)
//		if err != nil {
//			mapper.Write(w, r, err)
//			return
//		}
//		...
//	}
//
// # Documentation metadata
//
// Docs flattens one or more taxonomies into per-status response
// descriptions for an external schema generator. Variants sharing a status
// merge into one entry carrying every alternative body shape.
package respond
