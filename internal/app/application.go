package app

import (
	"errors"
	"log/slog"
	"time"

	"nexttrain.org/internal/appconf"
	"nexttrain.org/internal/clock"
	"nexttrain.org/internal/itinerary"
	"nexttrain.org/internal/metrics"
	"nexttrain.org/internal/timetable"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware. Everything reachable from it is read-only once New returns.
type Application struct {
	Config    appconf.Config
	Logger    *slog.Logger
	Timetable *timetable.Timetable
	Resolver  *itinerary.Resolver
	Clock     clock.Clock
	Location  *time.Location
	Metrics   *metrics.Metrics
}

// New wires an Application around an already loaded timetable.
func New(cfg appconf.Config, logger *slog.Logger, tt *timetable.Timetable, clk clock.Clock) (*Application, error) {
	if tt == nil {
		return nil, errors.New("app: timetable is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if clk == nil {
		clk = clock.RealClock{}
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	m.SetTimetableSize(tt.Len(), len(tt.Stations()))

	return &Application{
		Config:    cfg,
		Logger:    logger,
		Timetable: tt,
		Resolver:  itinerary.NewResolver(tt),
		Clock:     clk,
		Location:  loc,
		Metrics:   m,
	}, nil
}

// ReferenceMinutes is the current time of day, in minutes, in the configured zone.
func (app *Application) ReferenceMinutes() int {
	return clock.MinutesSinceMidnight(app.Clock.Now(), app.Location)
}
