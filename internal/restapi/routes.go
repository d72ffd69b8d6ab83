package restapi

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"nexttrain.org/internal/appconf"
	"nexttrain.org/internal/utils"
	"nexttrain.org/internal/webui"
)

// instrument records the request duration under the route pattern, so the
// metric's route label never carries raw paths.
func (api *RestAPI) instrument(route string, handler http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := newResponseWriter(w)
		handler(wrapped, r)
		api.Metrics.ObserveRequest(route, r.Method, wrapped.statusCode, time.Since(start))
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	get := func(route string, handler http.HandlerFunc) {
		router.Handler(http.MethodGet, route, api.instrument(route, handler))
	}

	get("/", api.homeHandler)
	get("/get_available_timeslots", api.nextDepartureHandler(utils.LegacyParamNames))
	get("/api/next-departure.json", api.nextDepartureHandler(withoutLimit(utils.APIParamNames)))
	get("/api/departures.json", api.departuresHandler)
	get("/api/stations.json", api.stationsHandler)
	get("/api/current-time.json", api.currentTimeHandler)

	router.Handler(http.MethodGet, "/metrics", api.Metrics.Handler())

	if api.Config.Environment() != appconf.Production {
		(&webui.WebUI{Application: api.Application}).SetWebUIRoutes(router)
	}

	router.NotFound = http.HandlerFunc(api.notFoundHandler)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedHandler)
}

// Router returns a router with every route registered and no middleware.
func (api *RestAPI) Router() *httprouter.Router {
	router := httprouter.New()
	api.SetRoutes(router)
	return router
}

func withoutLimit(names utils.ParamNames) utils.ParamNames {
	names.Limit = ""
	return names
}
