package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/research-connect-api/internal/config"
	"github.com/noah-isme/research-connect-api/internal/handler"
	"github.com/noah-isme/research-connect-api/internal/middleware"
	"github.com/noah-isme/research-connect-api/internal/models"
	"github.com/noah-isme/research-connect-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler        *handler.AuthHandler
	StudentHandler     *handler.StudentHandler
	FacultyHandler     *handler.FacultyHandler
	SkillHandler       *handler.SkillHandler
	ProjectHandler     *handler.ProjectHandler
	ApplicationHandler *handler.ApplicationHandler
	AdminHandler       *handler.AdminHandler
	JWTMiddleware      fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"))
	}

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/students", jwtMiddleware))
	}

	if deps.FacultyHandler != nil {
		deps.FacultyHandler.Register(api.Group("/faculty", jwtMiddleware))
	}

	if deps.SkillHandler != nil {
		deps.SkillHandler.Register(api.Group("/skills", jwtMiddleware))
	}

	if deps.ProjectHandler != nil {
		deps.ProjectHandler.Register(api.Group("/projects", jwtMiddleware))
	}

	if deps.ApplicationHandler != nil {
		deps.ApplicationHandler.Register(api.Group("/applications", jwtMiddleware))
	}

	if deps.AdminHandler != nil {
		deps.AdminHandler.Register(api.Group("/admin", jwtMiddleware, middleware.RequireRole(models.RoleAdmin)))
	}
}
