package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"priority-route-service/internal/api/handlers"
	"priority-route-service/internal/platform/metrics"
	"priority-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters). The cache may be nil; the route handler then computes
// every request fresh.
func NewRouter(repo ports.LocationRepository, cache ports.ResultCache) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Cache: cache}
	locHandler := &handlers.LocationHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/locations", locHandler.List)
	mux.HandleFunc("/routes/solve", routeHandler.Solve)
	mux.HandleFunc("/routes/compare", routeHandler.Compare)

	metrics.RegisterDefault()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestMiddleware(mux)
}
