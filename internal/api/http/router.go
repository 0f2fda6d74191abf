package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/placement-service/internal/api/http/handlers"
	"github.com/spec-kit/placement-service/internal/auth"
	"github.com/spec-kit/placement-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Users         *handlers.UsersHandler
	Companies     *handlers.CompaniesHandler
	Authenticator *auth.Authenticator
}

// RegisterRoutes wires HTTP routes. Each protected route declares its role
// allow-list here; the authentication gate always runs first in the chain.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)

	protectedAuth := authGroup.Group("", cfg.Authenticator.Handle, auth.RequireAuthenticated())
	protectedAuth.Get("/me", cfg.Auth.Me)
	protectedAuth.Post("/password/change", cfg.Auth.ChangePassword)

	companies := app.Group("/companies", cfg.Authenticator.Handle)
	companies.Get("", auth.RequireAuthenticated(), cfg.Companies.List)
	companies.Get("/:id", auth.RequireAuthenticated(), cfg.Companies.Get)
	companies.Post("", auth.RequireRoles(domain.RoleAdmin, domain.RolePlacementCoordinator), cfg.Companies.Create)
	companies.Put("/:id", auth.RequireRoles(domain.RoleAdmin, domain.RolePlacementCoordinator), cfg.Companies.Update)
	companies.Delete("/:id", auth.RequireRoles(domain.RoleAdmin, domain.RolePlacementCoordinator), cfg.Companies.Delete)

	users := app.Group("/users", cfg.Authenticator.Handle, auth.RequireRoles(domain.RoleAdmin))
	users.Get("", cfg.Users.List)
	users.Put("/:id/role", cfg.Users.UpdateRole)
}
