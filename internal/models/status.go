package models

// StatusModel is returned by the root endpoint.
type StatusModel struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
