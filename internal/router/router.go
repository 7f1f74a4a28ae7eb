package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okoak/evaluation-api/internal/config"
	"github.com/okoak/evaluation-api/internal/handler"
	"github.com/okoak/evaluation-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	PeriodHandler     *handler.PeriodHandler
	TopicHandler      *handler.TopicHandler
	IndicatorHandler  *handler.IndicatorHandler
	AssignmentHandler *handler.AssignmentHandler
	ResultHandler     *handler.ResultHandler
	DepartmentHandler *handler.DepartmentHandler
	ProgressHandler   *handler.ProgressHandler
	JWTMiddleware     fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	// Common v1 group for health & headers
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.PeriodHandler != nil {
		deps.PeriodHandler.Register(app.Group("/api/periods", jwtMiddleware))
	}

	if deps.TopicHandler != nil {
		deps.TopicHandler.Register(app.Group("/api/topics", jwtMiddleware))
	}

	if deps.IndicatorHandler != nil {
		deps.IndicatorHandler.Register(app.Group("/api/indicators", jwtMiddleware))
	}

	if deps.AssignmentHandler != nil {
		deps.AssignmentHandler.Register(app.Group("/api/assignments", jwtMiddleware))
	}

	if deps.ResultHandler != nil {
		deps.ResultHandler.Register(app.Group("/api/results", jwtMiddleware))
	}

	if deps.DepartmentHandler != nil {
		deps.DepartmentHandler.Register(app.Group("/api/departments", jwtMiddleware))
	}

	if deps.ProgressHandler != nil {
		deps.ProgressHandler.Register(app.Group("/api/progress", jwtMiddleware))
	}
}
