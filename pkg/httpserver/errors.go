package httpserver

import "errors"

// Sentinels wrapped into errors returned by Run and Shutdown, for
// errors.Is checks at the call site.
var (
	ErrStart    = errors.New("failed to start HTTP server")
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
)
