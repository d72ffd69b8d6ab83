package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexttrain.org/internal/models"
)

type departureListData struct {
	List          []models.DepartureEntry `json:"list"`
	LimitExceeded bool                    `json:"limitExceeded"`
}

func labels(entries []models.DepartureEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

func TestDeparturesHandler(t *testing.T) {
	tests := []struct {
		name          string
		endpoint      string
		labels        []string
		limitExceeded bool
	}{
		{
			name:     "default limit returns everything",
			endpoint: "/api/departures.json?origin=leganes&destination=atocha&time=06:00",
			labels:   []string{"C5-0600", "C4-0610", "C5-0700", "C5-0800"},
		},
		{
			name:          "limit cuts the list",
			endpoint:      "/api/departures.json?origin=leganes&destination=atocha&time=06:00&limit=2",
			labels:        []string{"C5-0600", "C4-0610"},
			limitExceeded: true,
		},
		{
			name:     "limit equal to the number of departures",
			endpoint: "/api/departures.json?origin=leganes&destination=atocha&time=06:00&limit=4",
			labels:   []string{"C5-0600", "C4-0610", "C5-0700", "C5-0800"},
		},
		{
			name:     "reference time filters earlier trains",
			endpoint: "/api/departures.json?origin=leganes&destination=atocha&time=06:16",
			labels:   []string{"C4-0610", "C5-0700", "C5-0800"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp, model := serveAndRetrieveEndpoint(t, tt.endpoint)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var data departureListData
			decodeData(t, model, &data)
			assert.Equal(t, tt.labels, labels(data.List))
			assert.Equal(t, tt.limitExceeded, data.LimitExceeded)
		})
	}
}

func TestDeparturesEntriesShareReferenceTime(t *testing.T) {
	_, _, model := serveAndRetrieveEndpoint(t, "/api/departures.json?origin=leganes&destination=atocha&time=06:00")

	var data departureListData
	decodeData(t, model, &data)
	require.Len(t, data.List, 4)

	assert.Equal(t, 15, data.List[0].MinutesUntilDeparture)
	assert.Equal(t, 20, data.List[1].MinutesUntilDeparture)
	for _, entry := range data.List {
		assert.Equal(t, "06:00", entry.ReferenceTime)
		assert.Equal(t, "Madrid-Atocha Cercanías", entry.Destination)
	}
}

func TestDeparturesHandlerErrors(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		status   int
		field    string
	}{
		{
			name:     "limit too large",
			endpoint: "/api/departures.json?origin=leganes&destination=atocha&limit=51",
			status:   http.StatusBadRequest,
			field:    "limit",
		},
		{
			name:     "limit not a number",
			endpoint: "/api/departures.json?origin=leganes&destination=atocha&limit=few",
			status:   http.StatusBadRequest,
			field:    "limit",
		},
		{
			name:     "missing origin",
			endpoint: "/api/departures.json?destination=atocha",
			status:   http.StatusBadRequest,
			field:    "origin",
		},
		{
			name:     "nothing after reference",
			endpoint: "/api/departures.json?origin=leganes&destination=atocha&time=22:00",
			status:   http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := serveAndRetrieveError(t, tt.endpoint)

			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.field != "" {
				assert.Contains(t, body.FieldErrors, tt.field)
			} else {
				assert.Equal(t, "no valid trip found after 22:00", body.Text)
			}
		})
	}
}
