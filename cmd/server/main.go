package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/fastlane/internal/api"
	"github.com/mcoot/fastlane/internal/config"
	"github.com/mcoot/fastlane/internal/factory"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return 1
	}
	level, _ := cfg.SlogLevel()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	app, err := factory.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go app.Hub.Run()

	hostDone := make(chan error, 1)
	hostCtx, stopHost := context.WithCancel(context.Background())
	go func() {
		hostDone <- app.Host.Run(hostCtx)
	}()

	router := api.NewRouter(api.RouterConfig{
		Logger: logger,
		Host:   app.Host,
		Hub:    app.Hub,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Addr = cfg.HTTPAddr
	server := api.NewServer(router, serverConfig, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", cfg.StorageType),
	)

	exitCode := 0
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			exitCode = 1
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		// Event streams never finish on their own
		app.Hub.Close()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			exitCode = 1
		}
	}

	stopHost()
	if err := <-hostDone; err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session host error", slog.String("error", err.Error()))
		exitCode = 1
	}
	if err := app.Close(); err != nil {
		logger.Error("close error", slog.String("error", err.Error()))
		exitCode = 1
	}

	logger.Info("server stopped")
	return exitCode
}
