// Package clientip resolves the originating client address of an HTTP
// request behind one or more reverse proxies.
//
// Resolution consults proxy headers in priority order, then falls back to
// the TCP peer address:
//
//  1. CF-Connecting-IP – set by Cloudflare
//  2. X-Forwarded-For  – comma-separated chain, first valid entry wins
//  3. X-Real-IP        – set by reverse proxies such as Nginx
//  4. RemoteAddr       – direct connection fallback
//
// Candidates that do not parse as IP addresses are skipped, so a spoofed or
// garbled header value never propagates into logs.
//
// # Usage
//
//	r.Use(clientip.Middleware)
//
//	log := logger.New(
//	    logger.WithContextExtractors(clientip.LoggerExtractor()),
//	)
//
// Middleware stores the resolved address in the request context; FromContext
// reads it back, and LoggerExtractor stamps it onto every log record emitted
// with that context.
package clientip
