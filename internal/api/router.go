package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/schedcu/solver/internal/metrics"
	"github.com/schedcu/solver/internal/service"
)

// Router creates and configures the Echo router.
type Router struct {
	echo         *echo.Echo
	solveHandler *SolveHandler
	metrics      *metrics.MetricsRegistry
}

// NewRouter creates a new Echo router with all routes. metricsRegistry may
// be nil, in which case /metrics is not mounted and requests are not
// instrumented.
func NewRouter(solveService service.SolveService, metricsRegistry *metrics.MetricsRegistry) *Router {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.PATCH},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	if metricsRegistry != nil {
		e.Use(echo.WrapMiddleware(metricsRegistry.HTTPMiddleware))
	}

	r := &Router{
		echo:         e,
		solveHandler: NewSolveHandler(solveService),
		metrics:      metricsRegistry,
	}

	r.registerRoutes()
	return r
}

// registerRoutes configures all API routes.
func (r *Router) registerRoutes() {
	r.echo.GET("/api/health", HealthCheck)

	if r.metrics != nil {
		r.echo.GET("/metrics", echo.WrapHandler(r.metrics.GetHandler()))
	}

	solveGroup := r.echo.Group("/api/solves")
	solveGroup.POST("", r.solveHandler.SubmitSolve)
	solveGroup.GET("/:id", r.solveHandler.GetSolveJob)
}

// Start starts the HTTP server.
func (r *Router) Start(addr string) error {
	return r.echo.Start(addr)
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// to finish until ctx is done.
func (r *Router) Shutdown(ctx context.Context) error {
	return r.echo.Shutdown(ctx)
}
