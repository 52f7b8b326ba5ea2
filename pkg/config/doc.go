// Package config loads application configuration from environment
// variables into tagged structs.
//
// Configuration is declared with env tags from
// github.com/caarlos0/env/v11:
//
//	type serverConfig struct {
//	    Addr        string        `env:"HTTP_ADDR" envDefault:":8080"`
//	    ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
//	    AuthToken   string        `env:"API_AUTH_TOKEN,required"`
//	}
//
//	var cfg serverConfig
//	config.MustLoad(&cfg)
//
// Load parses each struct type once per process and caches the result,
// so any package can call Load for a shared type without re-reading the
// environment. The first Load also picks up a .env file from the
// working directory when present; LoadEnv reads explicit .env files and
// lets them override variables already set.
//
// Failures wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile, and
// ErrNilPointer for errors.Is checks. Tests that mutate the environment
// call ResetCache or ForceReloadConfig to see the new values.
package config
