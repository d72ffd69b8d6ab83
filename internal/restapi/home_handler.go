package restapi

import (
	"net/http"

	"nexttrain.org/internal/models"
)

func (api *RestAPI) homeHandler(w http.ResponseWriter, r *http.Request) {
	status := models.StatusModel{
		Status:  "ok",
		Message: "Train API online",
	}
	api.sendResponse(w, r, models.NewEntryResponse(status))
}
