package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
)

// LoadEnv reads the given .env files into the process environment.
// Unlike the implicit .env handling in Load, LoadEnv overrides variables
// that are already set, and later files win over earlier ones. With no
// arguments it reads the default .env in the working directory.
//
// Call it before the first Load when configuration lives outside the
// default .env:
//
//	if err := config.LoadEnv("config/.env", "config/.env.local"); err != nil {
//		return err
//	}
func LoadEnv(filenames ...string) error {
	if err := godotenv.Overload(filenames...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(filenames ...string) {
	if err := LoadEnv(filenames...); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}
