// Package metrics exposes Prometheus collectors for the HTTP API and the
// departure lookups it serves.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcomes.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
)

// Metrics owns a private registry so independent instances never collide.
type Metrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	lookups         *prometheus.CounterVec
	trips           prometheus.Gauge
	stations        prometheus.Gauge
}

// New creates and registers all collectors, including the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nexttrain_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route, method and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nexttrain_departure_lookups_total",
			Help: "Departure lookups by outcome",
		}, []string{"outcome"}),
		trips: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nexttrain_timetable_trips",
			Help: "Number of trips in the loaded timetable",
		}),
		stations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nexttrain_timetable_stations",
			Help: "Number of distinct stations in the loaded timetable",
		}),
	}

	m.registry.MustRegister(
		m.requestDuration,
		m.lookups,
		m.trips,
		m.stations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry is the registry all collectors are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// CountLookup records the outcome of a departure lookup.
func (m *Metrics) CountLookup(outcome string) {
	m.lookups.WithLabelValues(outcome).Inc()
}

// SetTimetableSize publishes the size of the loaded timetable.
func (m *Metrics) SetTimetableSize(trips, stations int) {
	m.trips.Set(float64(trips))
	m.stations.Set(float64(stations))
}
