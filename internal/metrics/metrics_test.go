package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountLookup(t *testing.T) {
	m := New()
	m.CountLookup(OutcomeFound)
	m.CountLookup(OutcomeFound)
	m.CountLookup(OutcomeNotFound)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.lookups.WithLabelValues(OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lookups.WithLabelValues(OutcomeNotFound)))
}

func TestSetTimetableSize(t *testing.T) {
	m := New()
	m.SetTimetableSize(120, 34)

	assert.Equal(t, 120.0, testutil.ToFloat64(m.trips))
	assert.Equal(t, 34.0, testutil.ToFloat64(m.stations))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveRequest("/api/next-departure.json", http.MethodGet, http.StatusOK, 15*time.Millisecond)
	m.CountLookup(OutcomeInvalid)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `nexttrain_http_request_duration_seconds_count{method="GET",route="/api/next-departure.json",status="200"} 1`)
	assert.Contains(t, string(body), `nexttrain_departure_lookups_total{outcome="invalid"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.CountLookup(OutcomeFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.lookups.WithLabelValues(OutcomeFound)))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.lookups.WithLabelValues(OutcomeFound)))
}
