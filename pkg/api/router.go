package api

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	_ "userregistry/docs"
	"userregistry/pkg/logger"
	"userregistry/pkg/metrics"
)

// RouterConfig collects what NewRouter needs besides the Handler.
type RouterConfig struct {
	Metrics        *metrics.Metrics
	Tracer         trace.Tracer
	Log            *logger.Logger
	AllowedOrigins []string
}

// NewRouter wires the registry routes, metrics, API docs and middleware.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(traceMiddleware(cfg.Tracer))
	r.Use(logMiddleware(cfg.Log))
	r.Use(cfg.Metrics.Instrument)

	h.Routes(r)
	r.NotFoundHandler = http.HandlerFunc(h.routeNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.methodNotAllowed)

	r.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})(r)
}
