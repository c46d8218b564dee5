package app

import (
	"time"

	"github.com/dmitrymomot/homesite/pkg/httpserver"
	"github.com/dmitrymomot/homesite/pkg/iprange"
)

// Relay range sources.
const (
	RelaySourceRemote = "remote"
	RelaySourceLocal  = "local"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	Hostname  string `env:"SERVER_HOSTNAME" envDefault:"localhost"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	StaticDir string `env:"STATIC_DIR" envDefault:"./static"`

	Relay  RelayConfig `envPrefix:"RELAY_"`
	Server httpserver.Config
}

// RelayConfig selects where relay egress ranges come from.
type RelayConfig struct {
	Source      string        `env:"SOURCE" envDefault:"remote"`
	RemoteURL   string        `env:"REMOTE_URL" envDefault:"https://mask-api.icloud.com/egress-ip-ranges.csv"`
	LocalPath   string        `env:"LOCAL_PATH" envDefault:"static/egress-ip-ranges.csv"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
}

// DefaultConfig mirrors the envDefault tags; useful in tests.
func DefaultConfig() Config {
	return Config{
		Port:      8080,
		Hostname:  "localhost",
		Env:       "development",
		StaticDir: "./static",
		Relay: RelayConfig{
			Source:      RelaySourceRemote,
			RemoteURL:   iprange.DefaultRemoteURL,
			LocalPath:   iprange.DefaultLocalPath,
			HTTPTimeout: 10 * time.Second,
		},
	}
}
