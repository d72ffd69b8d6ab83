package restapi

import (
	"net/http"
	"time"

	"nexttrain.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// Handler returns the router wrapped in the middleware chain. Outermost first:
// request logging, security headers, rate limiting, compression.
func (api *RestAPI) Handler() http.Handler {
	var handler http.Handler = api.Router()
	handler = CompressionMiddleware(handler)
	handler = api.rateLimiter.Handler(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return handler
}

// Close stops background work started by NewRestAPI.
func (api *RestAPI) Close() {
	api.rateLimiter.Stop()
}
