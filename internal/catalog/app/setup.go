// Package app contains the application setup for the product directory service.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ikamunya/productdir/internal/catalog/rest"
	"github.com/ikamunya/productdir/internal/catalog/service"
	"github.com/ikamunya/productdir/internal/catalog/store"
	"github.com/ikamunya/productdir/internal/config"
	"github.com/ikamunya/productdir/pkg/web"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceLabel = "productdir"

type Dependencies struct {
	CatalogService service.CatalogService
	Logger         *slog.Logger
	Registry       *prometheus.Registry
}

// SetupDependencies constructs the store seeded with the fixed catalog and
// the service on top of it. Tests build their own Dependencies with a
// fresh store for isolation.
func SetupDependencies(logger *slog.Logger) *Dependencies {
	catalogService := service.NewService(store.NewMemoryStore(store.DefaultSeed()...))

	return &Dependencies{
		CatalogService: catalogService,
		Logger:         logger,
		Registry:       prometheus.NewRegistry(),
	}
}

// SetupHttpHandler initializes the router with the shared middleware chain
// and the catalog routes.
func SetupHttpHandler(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(web.StructuredLogger(deps.Logger))
	mux.Use(web.Recoverer(deps.Logger))
	mux.Use(web.NewMetrics(deps.Registry).Middleware(serviceLabel, web.ChiRoutePattern))

	catalogHandler := rest.NewHandler(deps.CatalogService, deps.Logger)
	catalogHandler.RegisterRoutes(mux, web.APIKeyAuth(cfg.API.Key, deps.Logger))

	mux.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	return mux
}

// SetupHttpServer creates and configures the HTTP server for the service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps, cfg)

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPServer.Port),
		Handler:           mux,
		ReadTimeout:       cfg.HTTPServer.Timeout.Read,
		WriteTimeout:      cfg.HTTPServer.Timeout.Write,
		IdleTimeout:       cfg.HTTPServer.Timeout.Idle,
		ReadHeaderTimeout: cfg.HTTPServer.Timeout.ReadHeader,
		MaxHeaderBytes:    cfg.HTTPServer.MaxHeaderBytes,
	}
}
