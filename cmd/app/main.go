package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env", os.Args[1:])
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	level, _ := configs.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	uowFactory, closeStorage, err := cmd.OpenStorage(configs, logger)
	if err != nil {
		log.Fatalf("Error opening storage: %v", err)
	}
	defer func() {
		if closeErr := closeStorage(); closeErr != nil {
			logger.Error("Error closing storage", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(configs, uowFactory, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err = startWebServer(ctx, &app, configs.HTTPPort, logger); err != nil {
		logger.Error("Web server stopped with error", "error", err)
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := app.CreateEcho(ctx)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Web server started", "port", port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down web server")
	return e.Shutdown(shutdownCtx)
}
