package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type loadOptions struct {
	files       []string
	prefix      string
	environment map[string]string
}

// Option configures Load.
type Option func(*loadOptions)

// WithEnvFiles loads the given files instead of the default .env.
// Unlike the default file, they must exist.
func WithEnvFiles(paths ...string) Option {
	return func(o *loadOptions) {
		o.files = append(o.files, paths...)
	}
}

// WithPrefix prepends prefix to every variable name.
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) {
		o.prefix = prefix
	}
}

// WithEnvironment parses from the given map instead of the process
// environment. No .env file is read.
func WithEnvironment(environment map[string]string) Option {
	return func(o *loadOptions) {
		o.environment = environment
	}
}

// LoadEnv reads .env files into the process environment. Existing variables
// are not overridden. Without paths the default .env is read and a missing
// file is not an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into a new T based on its field tags.
//
// Example:
//
//	type ServerConfig struct {
//		Port     int    `env:"PORT" envDefault:"8080"`
//		Hostname string `env:"SERVER_HOSTNAME" envDefault:"localhost"`
//	}
//
//	cfg, err := config.Load[ServerConfig]()
//	if err != nil {
//		// Handle error
//	}
func Load[T any](opts ...Option) (T, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	var zero T
	if o.environment == nil {
		if err := LoadEnv(o.files...); err != nil {
			return zero, err
		}
	}

	cfg, err := env.ParseAsWithOptions[T](env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	})
	if err != nil {
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}
