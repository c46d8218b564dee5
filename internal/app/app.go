package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/homesite/pkg/clientip"
	"github.com/dmitrymomot/homesite/pkg/httpserver"
	"github.com/dmitrymomot/homesite/pkg/iprange"
	"github.com/dmitrymomot/homesite/pkg/logger"
	"github.com/dmitrymomot/homesite/pkg/metrics"
	"github.com/dmitrymomot/homesite/pkg/requestid"
	"github.com/dmitrymomot/homesite/pkg/snapshot"
)

// gitSHA is set at build time:
//
//	go build -ldflags "-X github.com/dmitrymomot/homesite/internal/app.gitSHA=$GITHUB_SHA"
var gitSHA string

// App holds everything request handlers share. It is built once in main and
// passed down explicitly.
type App struct {
	Config     Config
	Logger     *slog.Logger
	HTTPClient *http.Client
	Registry   *prom.Registry
	Metrics    *metrics.Metrics
	Snapshots  *snapshot.Builder

	// Relay is the range lookup selected by Config.Relay.Source, instrumented
	// with Metrics.
	Relay       iprange.Lookup
	RelaySource string

	readyChecks []httpserver.Check
}

// Option configures New.
type Option func(*App)

// WithLogger replaces the logger built from Config.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.Logger = l
		}
	}
}

// WithHTTPClient replaces the outbound HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(a *App) {
		if c != nil {
			a.HTTPClient = c
		}
	}
}

// WithRegistry uses reg for metrics instead of a fresh registry with Go and
// process collectors.
func WithRegistry(reg *prom.Registry) Option {
	return func(a *App) {
		if reg != nil {
			a.Registry = reg
		}
	}
}

// New builds the application context. In local relay mode the range file is
// read here, and a missing or malformed file fails startup.
func New(cfg Config, opts ...Option) (*App, error) {
	a := &App{Config: cfg}
	for _, opt := range opts {
		opt(a)
	}

	if a.Logger == nil {
		a.Logger = logger.New(
			logger.WithEnvironment(cfg.Env, "homesite"),
			logger.WithLevelName(cfg.LogLevel),
			logger.WithContextExtractors(
				requestid.LoggerExtractor(),
				clientip.LoggerExtractor(),
			),
		)
	}
	if a.HTTPClient == nil {
		a.HTTPClient = &http.Client{Timeout: cfg.Relay.HTTPTimeout}
	}
	if a.Registry == nil {
		a.Registry = prom.NewRegistry()
		a.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m, err := metrics.NewWithRegisterer(a.Registry)
	if err != nil {
		return nil, errors.Join(ErrMetrics, err)
	}
	a.Metrics = m

	a.Snapshots = snapshot.NewBuilder(snapshot.WithAppHost(cfg.Hostname))

	if err := a.setupRelay(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) setupRelay() error {
	log := a.Logger.With(logger.Component("relay"))

	var src iprange.Lookup
	switch a.Config.Relay.Source {
	case RelaySourceRemote, "":
		remote := iprange.NewRemoteSource(
			iprange.WithURL(a.Config.Relay.RemoteURL),
			iprange.WithHTTPClient(a.HTTPClient),
		)
		a.RelaySource = RelaySourceRemote
		src = remote
		log.Info("relay ranges fetched per lookup", logger.Source(a.RelaySource), slog.String("url", remote.URL()))
	case RelaySourceLocal:
		local := iprange.NewLocalSource(a.Config.Relay.LocalPath)
		table, err := local.Load()
		if err != nil {
			return errors.Join(ErrLoadRelayRanges, fmt.Errorf("%s: %w", local.Path(), err))
		}
		a.RelaySource = RelaySourceLocal
		a.readyChecks = append(a.readyChecks, local.Ready)
		src = local
		log.Info("relay ranges loaded", logger.Source(a.RelaySource),
			slog.String("path", local.Path()), slog.Int("ranges", len(table)))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRelaySource, a.Config.Relay.Source)
	}

	a.Relay = iprange.Observed(src, a.Metrics, a.RelaySource)
	return nil
}

// ReadyChecks returns the dependencies the readiness probe must verify.
func (a *App) ReadyChecks() []httpserver.Check {
	return a.readyChecks
}

// Addr is the listen address derived from Config.Port.
func (a *App) Addr() string {
	return fmt.Sprintf(":%d", a.Config.Port)
}

// Slot names the blue/green deployment slot this instance runs in.
func (a *App) Slot() string {
	switch a.Config.Port {
	case 8080:
		return "blue"
	case 8081:
		return "green"
	default:
		return "unknown"
	}
}

// GitSHA returns the commit the binary was built from, or "unknown".
func (a *App) GitSHA() string {
	if gitSHA == "" {
		return "unknown"
	}
	return gitSHA
}
