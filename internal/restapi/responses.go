package restapi

import (
	"encoding/json"
	"net/http"

	"nexttrain.org/internal/models"
)

// sendResponse encodes the whole envelope before writing so an encoding
// failure can still be reported as a 500.
func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	body, err := json.Marshal(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	setJSONResponseType(w)
	if response.Code != 0 && response.Code != http.StatusOK {
		w.WriteHeader(response.Code)
	}
	_, _ = w.Write(append(body, '\n'))
}

func setJSONResponseType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}
