package config

import "errors"

var (
	// ErrParsingConfig wraps env tag parsing failures, including missing
	// required variables.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile wraps failures reading a requested .env file.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrNilPointer reports a nil destination passed to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
