package restapi

import (
	"log/slog"
	"net/http"

	"nexttrain.org/internal/itinerary"
	"nexttrain.org/internal/logging"
	"nexttrain.org/internal/metrics"
	"nexttrain.org/internal/models"
	"nexttrain.org/internal/utils"
)

// nextDepartureHandler serves the soonest departure. names selects which query
// parameters the route reads, so the legacy and /api routes share one handler.
func (api *RestAPI) nextDepartureHandler(names utils.ParamNames) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, fieldErrors := utils.ParseDepartureParams(r.URL.Query(), names)
		if len(fieldErrors) > 0 {
			api.Metrics.CountLookup(metrics.OutcomeInvalid)
			api.validationErrorResponse(w, r, fieldErrors)
			return
		}

		result, err := api.Resolver.NextDeparture(params.Origin, params.Destination, api.referenceMinutes(params))
		if err != nil {
			api.lookupFailed(w, r, params, err)
			return
		}

		api.Metrics.CountLookup(metrics.OutcomeFound)
		logging.LogOperation(logging.FromContext(r.Context()), "next_departure",
			slog.String("origin", result.Origin),
			slog.String("destination", result.Destination),
			slog.String("label", result.Label),
			slog.String("departure", result.DepartureTime),
			slog.String("reference_time", result.ReferenceTime))

		api.sendResponse(w, r, models.NewEntryResponse(models.NewDepartureEntry(result)))
	}
}

// departuresHandler lists upcoming departures, soonest first.
func (api *RestAPI) departuresHandler(w http.ResponseWriter, r *http.Request) {
	params, fieldErrors := utils.ParseDepartureParams(r.URL.Query(), utils.APIParamNames)
	if len(fieldErrors) > 0 {
		api.Metrics.CountLookup(metrics.OutcomeInvalid)
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	// One extra result tells us whether the limit cut the list short.
	results, err := api.Resolver.Departures(params.Origin, params.Destination, api.referenceMinutes(params), params.Limit+1)
	if err != nil {
		api.lookupFailed(w, r, params, err)
		return
	}

	limitExceeded := len(results) > params.Limit
	if limitExceeded {
		results = results[:params.Limit]
	}

	api.Metrics.CountLookup(metrics.OutcomeFound)
	logging.LogOperation(logging.FromContext(r.Context()), "departures",
		slog.String("origin", params.Origin),
		slog.String("destination", params.Destination),
		slog.Int("count", len(results)),
		slog.Bool("limit_exceeded", limitExceeded))

	api.sendResponse(w, r, models.NewListResponse(models.NewDepartureList(results), limitExceeded))
}

// referenceMinutes is the requested time when one was given, otherwise now.
func (api *RestAPI) referenceMinutes(params utils.DepartureParams) int {
	if params.Time != "" {
		if minutes, ok := itinerary.ParseMinutes(params.Time); ok {
			return minutes
		}
	}
	return api.ReferenceMinutes()
}

func (api *RestAPI) lookupFailed(w http.ResponseWriter, r *http.Request, params utils.DepartureParams, err error) {
	if itinerary.IsNotFound(err) {
		api.Metrics.CountLookup(metrics.OutcomeNotFound)
		logging.FromContext(r.Context()).Info("no departure found",
			slog.String("origin", params.Origin),
			slog.String("destination", params.Destination),
			slog.String("reason", err.Error()))
		api.sendNotFound(w, r, err.Error())
		return
	}
	api.serverErrorResponse(w, r, err)
}
