package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/homesite/internal/app"
	"github.com/dmitrymomot/homesite/internal/web"
	"github.com/dmitrymomot/homesite/pkg/config"
	"github.com/dmitrymomot/homesite/pkg/httpserver"
	"github.com/dmitrymomot/homesite/pkg/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("homesite exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load[app.Config]()
	if err != nil {
		return err
	}

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	logger.SetAsDefault(a.Logger)

	a.Logger.Info("starting",
		slog.String("addr", a.Addr()),
		slog.String("slot", a.Slot()),
		slog.String("sha", a.GitSHA()),
		logger.Source(a.RelaySource),
	)

	srv := httpserver.NewFromConfig(a.Addr(), cfg.Server, httpserver.WithLogger(a.Logger))
	return srv.Run(ctx, web.NewRouter(a))
}
