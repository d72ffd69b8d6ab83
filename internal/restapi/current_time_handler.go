package restapi

import (
	"net/http"

	"nexttrain.org/internal/models"
)

// currentTimeHandler reports the reference clock the departure endpoints use
// when no time is given.
func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	timeData := models.NewCurrentTimeModel(api.Clock.Now(), api.Location)
	api.sendResponse(w, r, models.NewEntryResponse(timeData))
}
