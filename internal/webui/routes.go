// Package webui serves human-readable dumps of the loaded timetable for
// debugging. It is not mounted in production.
package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"nexttrain.org/internal/app"
)

type WebUI struct {
	*app.Application
}

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
}
