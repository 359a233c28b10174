package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/api/http/handlers"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/auth"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Admin          *handlers.AdminHandler
	Projects       *handlers.ProjectHandler
	Consultations  *handlers.ConsultationHandler
	Resources      *handlers.ResourceHandler
	Gallery        *handlers.GalleryHandler
	Pages          *handlers.PagesHandler
	AuthMiddleware *auth.Middleware
	Guard          *session.Guard
}

// RegisterRoutes wires HTTP routes. Page routes run the token-optional
// middleware plus the access guard; API routes authenticate strictly and
// answer 401/403 instead of redirecting.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Navigation pages under guard policy.
	pages := app.Group("", cfg.AuthMiddleware.HandleOptional)
	pages.Get("/", auth.Guarded(cfg.Guard), cfg.Pages.Home)
	pages.Get("/login", auth.Guarded(cfg.Guard), cfg.Pages.Login)
	pages.Get("/register", auth.Guarded(cfg.Guard), cfg.Pages.RegisterPage)
	pages.Get("/pending-activation", auth.Guarded(cfg.Guard), cfg.Pages.PendingActivation)
	pages.Get("/public/enroll", auth.Guarded(cfg.Guard), cfg.Pages.PublicEnroll)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle)
	authProtected.Post("/logout", cfg.Auth.Logout)
	authProtected.Get("/me", cfg.Auth.Me)
	authProtected.Patch("/settings", cfg.Auth.UpdateSettings)
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/registrations", cfg.Admin.ListRegistrations)
	admin.Post("/registrations/:id/approve", cfg.Admin.Approve)
	admin.Post("/registrations/:id/reject", cfg.Admin.Reject)
	admin.Delete("/users/:id", cfg.Admin.DeleteUser)

	projects := app.Group("/projects", cfg.AuthMiddleware.Handle, auth.RequireActive())
	projects.Post("/", cfg.Projects.Create)
	projects.Get("/", cfg.Projects.List)
	projects.Get("/:id", cfg.Projects.Get)
	projects.Patch("/:id", cfg.Projects.Update)
	projects.Delete("/:id", cfg.Projects.Delete)

	consultations := app.Group("/consultations", cfg.AuthMiddleware.Handle, auth.RequireActive())
	consultations.Post("/", cfg.Consultations.Book)
	consultations.Get("/", cfg.Consultations.List)
	consultations.Post("/:id/confirm", cfg.Consultations.Confirm)
	consultations.Post("/:id/cancel", cfg.Consultations.Cancel)
	consultations.Post("/:id/complete", cfg.Consultations.Complete)

	resources := app.Group("/resources", cfg.AuthMiddleware.Handle, auth.RequireActive())
	resources.Post("/", cfg.Resources.Create)
	resources.Get("/", cfg.Resources.List)
	resources.Patch("/:id", cfg.Resources.Update)
	resources.Delete("/:id", cfg.Resources.Delete)

	gallery := app.Group("/gallery", cfg.AuthMiddleware.Handle, auth.RequireActive())
	gallery.Post("/", cfg.Gallery.Create)
	gallery.Get("/", cfg.Gallery.List)
	gallery.Delete("/:id", cfg.Gallery.Delete)
}
