package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/department-store/internal/api/http/handlers"
	"github.com/spec-kit/department-store/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Departments    *handlers.DepartmentsHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Post("/auth/login", cfg.Auth.Login)

	departments := app.Group("/departments")
	departments.Get("/", cfg.Departments.List)
	departments.Get("/:id", cfg.Departments.Get)

	adminOnly := []fiber.Handler{cfg.AuthMiddleware.Handle, auth.RequireRole(auth.RoleAdmin)}

	departments.Post("/", append(adminOnly, cfg.Departments.Create)...)
	departments.Put("/:id", append(adminOnly, cfg.Departments.Update)...)
	departments.Delete("/:id", append(adminOnly, cfg.Departments.Delete)...)

	admin := app.Group("/admin", adminOnly...)
	admin.Post("/departments/table", cfg.Departments.CreateTable)
	admin.Delete("/departments/table", cfg.Departments.ResetTable)
}
