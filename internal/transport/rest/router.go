package rest

import (
	"net/http"

	"github.com/heartmarshall/today-record-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Feedback *FeedbackHandler
	Records  *RecordHandler
	Health   *HealthHandler
	Metrics  http.Handler
}

// NewRouter registers all routes. api wraps the journal endpoints only;
// probes and metrics bypass it.
func NewRouter(h Handlers, api middleware.Middleware) *http.ServeMux {
	if api == nil {
		api = func(next http.Handler) http.Handler { return next }
	}
	mux := http.NewServeMux()

	route := func(pattern string, fn http.HandlerFunc, mws ...middleware.Middleware) {
		chain := append([]middleware.Middleware{middleware.Instrument(pattern)}, mws...)
		mux.Handle(pattern, middleware.Chain(chain...)(fn))
	}

	route("POST /daily-feedback", h.Feedback.Generate, api)
	route("GET /daily-feedback", h.Feedback.Get, api)

	route("POST /records", h.Records.Create, api)
	route("GET /records", h.Records.List, api)
	route("GET /records/days", h.Records.Days, api)
	route("PATCH /records/{id}", h.Records.Update, api)
	route("DELETE /records/{id}", h.Records.Delete, api)

	route("GET /live", h.Health.Live)
	route("GET /ready", h.Health.Ready)
	route("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	return mux
}
