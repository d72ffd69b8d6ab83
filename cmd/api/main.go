package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nexttrain.org/internal/app"
	"nexttrain.org/internal/appconf"
	"nexttrain.org/internal/clock"
	"nexttrain.org/internal/logging"
	"nexttrain.org/internal/restapi"
	"nexttrain.org/internal/timetable"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the configuration and timetable, then serves until ctx is done.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := appconf.Parse(args)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewStructuredLogger(stdout, level)

	tt, err := loadTimetable(ctx, cfg.Timetable, logger)
	if err != nil {
		logging.LogError(logger, "failed to load timetable", err,
			slog.String("location", cfg.Timetable.Location))
		return err
	}

	application, err := app.New(cfg, logger, tt, clock.RealClock{})
	if err != nil {
		return err
	}

	api := restapi.NewRestAPI(application)
	defer api.Close()

	return serve(ctx, newServer(cfg, api.Handler(), logger), logger, cfg.Env)
}

func loadTimetable(ctx context.Context, cfg appconf.TimetableConfig, logger *slog.Logger) (*timetable.Timetable, error) {
	if cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.FetchTimeout)
		defer cancel()
	}

	loader := &timetable.Loader{
		HTTPClient: &http.Client{Timeout: cfg.FetchTimeout},
		Logger:     logger,
	}
	return loader.Load(ctx, cfg.Location, timetable.Format(cfg.Format))
}

func newServer(cfg appconf.Config, handler http.Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger, env string) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("server stopped")
	return nil
}
