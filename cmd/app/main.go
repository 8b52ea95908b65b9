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

	"orderdesk/cmd"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, config, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	err = run(ctx, app, config, logger)
	if closeErr := app.Close(); closeErr != nil {
		logger.Error("failed to release resources", "error", closeErr)
	}
	if err != nil {
		logger.Error("application stopped with error", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, app *cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) error {
	e, err := app.CreateRouter()
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		logger.InfoContext(gctx, "http server starting", "addr", addr,
			"store", config.StoreDriver, "tracker", config.AttemptTracker, "notifier", config.Notifier)
		if startErr := e.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
