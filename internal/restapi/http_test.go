package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nexttrain.org/internal/app"
	"nexttrain.org/internal/appconf"
	"nexttrain.org/internal/clock"
	"nexttrain.org/internal/logging"
	"nexttrain.org/internal/models"
	"nexttrain.org/internal/timetable"
)

// testNow is a Monday at 07:00 in Madrid.
func testNow(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(clock.DefaultTimezone)
	require.NoError(t, err)
	return time.Date(2024, time.January, 15, 7, 0, 0, 0, loc)
}

// createTestApi creates a RestAPI over the fixture timetable with rate
// limiting disabled and a fixed clock.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	data, err := os.ReadFile(models.GetFixturePath(t, "tren_lunes_viernes_ida.json"))
	require.NoError(t, err)
	tt, err := timetable.ParseJSON(data)
	require.NoError(t, err)

	cfg := appconf.Default()
	cfg.Env = "test"
	cfg.RateLimit = 0

	application, err := app.New(cfg, logging.NewStructuredLogger(io.Discard, slog.LevelInfo), tt, clock.NewMockClock(testNow(t)))
	require.NoError(t, err)

	api := NewRestAPI(application)
	t.Cleanup(api.Close)
	return api
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// serveAndRetrieveError is serveAndRetrieveEndpoint for non-2xx envelopes.
func serveAndRetrieveError(t *testing.T, endpoint string) (*http.Response, errorResponse) {
	api := createTestApi(t)
	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	return resp, response
}

// decodeData re-decodes the envelope's data field into out.
func decodeData(t *testing.T, model models.ResponseModel, out interface{}) {
	t.Helper()
	raw, err := json.Marshal(model.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// newRecorderFor serves one GET request in-process.
func newRecorderFor(handler http.Handler, endpoint string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, endpoint, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
