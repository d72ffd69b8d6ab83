package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStationsHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/stations.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		List          []string `json:"list"`
		LimitExceeded bool     `json:"limitExceeded"`
	}
	decodeData(t, model, &data)

	assert.Equal(t, []string{
		"Móstoles-El Soto",
		"Móstoles",
		"Leganés",
		"Madrid-Atocha Cercanías",
		"Sol",
		"Fuenlabrada",
	}, data.List)
	assert.False(t, data.LimitExceeded)
}
