package restapi

import (
	"net/http"

	"nexttrain.org/internal/models"
)

func (api *RestAPI) stationsHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(api.Timetable.Stations(), false))
}
