package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"nexttrain.org/internal/logging"
	"nexttrain.org/internal/models"
)

// errorResponse is the envelope used when there is no data to return.
type errorResponse struct {
	Code        int                 `json:"code"`
	CurrentTime int64               `json:"currentTime"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
	Text        string              `json:"text"`
	Version     int                 `json:"version"`
}

func (api *RestAPI) writeError(w http.ResponseWriter, r *http.Request, response errorResponse) {
	response.CurrentTime = models.ResponseCurrentTime()
	response.Version = 2

	setJSONResponseType(w)
	w.WriteHeader(response.Code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(api.Logger, "failed to encode error response", err,
			slog.Int("code", response.Code),
			slog.String("path", r.URL.Path))
	}
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "internal server error", err,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path))

	api.writeError(w, r, errorResponse{
		Code: http.StatusInternalServerError,
		Text: "internal server error",
	})
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	api.writeError(w, r, errorResponse{
		Code:        http.StatusBadRequest,
		FieldErrors: fieldErrors,
		Text:        "invalid request",
	})
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request, text string) {
	api.writeError(w, r, errorResponse{
		Code: http.StatusNotFound,
		Text: text,
	})
}

func (api *RestAPI) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	api.sendNotFound(w, r, "resource not found")
}

func (api *RestAPI) methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	api.writeError(w, r, errorResponse{
		Code: http.StatusMethodNotAllowed,
		Text: "method not allowed",
	})
}
