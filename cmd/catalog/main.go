package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"productCatalog/internal/app"
)

func main() {
	cfg, err := app.LoadCatalogCfg()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg)
	if err := a.Run(ctx); err != nil {
		slog.Error("run failed", "error", err)
		stop()
		os.Exit(1)
	}
	slog.Info("catalog stopped")
}
