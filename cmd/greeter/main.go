package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/greeter/app"
	"github.com/dmitrymomot/greeter/core/config"
	"github.com/dmitrymomot/greeter/core/logger"
	"github.com/dmitrymomot/greeter/core/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg app.Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	a, err := app.New(cfg, app.WithLogger(log))
	if err != nil {
		log.Error("Failed to create application", logger.Component("app"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return a.Run(ctx)
	})

	if err := eg.Wait(); err != nil {
		if errors.Is(err, server.ErrBindFailed) {
			log.Error("Failed to bind listener", logger.Component("server"), logger.Error(err))
		} else {
			log.Error("Server stopped with error", logger.Component("server"), logger.Error(err))
		}
		os.Exit(1)
	}
}

func newLogger(cfg app.Config) *slog.Logger {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err, "- falling back to info")
	}

	if cfg.Production() {
		return logger.New(logger.WithProduction(cfg.AppName), logger.WithLevel(level))
	}
	return logger.New(logger.WithDevelopment(cfg.AppName), logger.WithLevel(level))
}
