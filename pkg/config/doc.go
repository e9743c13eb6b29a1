// Package config loads application configuration from environment
// variables into tagged Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is loaded when it
//     exists; WithEnvFiles names explicit files that must exist.
//   - Values already set in the process environment are never overwritten
//     by file values.
//   - The environment is parsed into any struct using `env`, `envDefault`
//     and `envPrefix` tags; WithPrefix adds a prefix to every key.
//   - MustLoad panics on failure for configuration the process cannot
//     start without.
//
// # Usage
//
//	type Config struct {
//		AppEnv   string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Errors
//
// Failures are joined with ErrLoadingEnvFile or ErrParsingConfig so callers
// can use errors.Is. A nil pointer yields ErrNilPointer.
package config
