package app

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/chartpulse/config"
	"github.com/guttosm/chartpulse/internal/api"
	"github.com/guttosm/chartpulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns a
// fully configured Gin router, a cleanup function for graceful
// shutdown, and any error encountered during initialization.
//
// Responsibilities:
//   - Creates the chart service with the configured figure cache.
//   - Creates the HTTP handler layer with the configured chart defaults.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// Chart service with collaborator-side memoization
	svc := service.NewChartService(cfg.Cache.TTL, cfg.Cache.MaxEntries)

	// HTTP handler layer (engine results to HTTP mapping)
	handler := api.NewHandler(svc, cfg.Chart.DefaultHeight)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Health probes; no external dependencies to check, so readiness
	// follows liveness.
	healthHandler := api.NewHealthHandler(nil)
	healthHandler.Register(router)

	// Nothing holds external resources; cleanup is a no-op kept for the
	// shutdown call shape.
	cleanup := func() {}

	return router, cleanup, nil
}
