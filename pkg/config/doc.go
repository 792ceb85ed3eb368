// Package config loads application configuration from environment
// variables into typed structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv / MustLoadEnv read one or more `.env` files into the process
//     environment, later files overriding earlier ones.
//   - Load / MustLoad parse the environment into any struct with `env` tags.
//     The default `.env` is read on first use when it exists.
//   - Each configuration type is parsed once and cached by value.
//   - ResetCache clears the cache, mainly for tests.
//
// # Usage
//
//	type Config struct {
//	    Output   string `env:"EMAILCHECK_OUTPUT" envDefault:"text"`
//	    LogLevel string `env:"EMAILCHECK_LOG_LEVEL" envDefault:"warn"`
//	    Domain   string `env:"EMAILCHECK_DOMAIN"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors for errors.Is:
//
//   - ErrParsingConfig   – env vars could not be parsed into the struct
//   - ErrLoadingEnvFile  – an explicitly requested .env file could not be read
//   - ErrConfigNotLoaded – the parsed value is unexpectedly missing
//   - ErrNilPointer      – nil pointer passed to Load/MustLoad
//
// A failed parse is not cached, so Load can be retried after the environment
// is fixed.
package config
