// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Values are read from an optional `.env` file in the working directory,
//     or from explicitly named files via WithEnvFiles.
//   - The environment is parsed into any struct using `env` and `envDefault`
//     field tags, including nested structs with `envPrefix`.
//   - WithEnvironment swaps the process environment for a map, which keeps
//     tests free of global state.
//
// Example:
//
//	type AppConfig struct {
//		Port    int           `env:"PORT" envDefault:"8080"`
//		Timeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
//	}
//
//	cfg := config.MustLoad[AppConfig]()
//
// Load returns ErrParsingConfig (joined with the cause) when a value cannot be
// converted or a required variable is missing, and ErrLoadingEnvFile when an
// explicitly requested file cannot be read.
package config
