// Package requestid correlates HTTP requests with log records and error
// responses through an X-Request-ID header.
//
// Middleware picks the ID for each request: a well-formed client value
// is reused, anything missing or suspicious is replaced with a fresh
// UUID. The ID travels in the request context, comes back on the
// response header, and is stamped onto the diagnostic the response
// mapper logs, so a client-reported failure can be matched to exactly
// one log line.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Handlers that need the ID directly call FromContext. The package never
// fails; an unusable inbound ID is silently replaced.
package requestid
