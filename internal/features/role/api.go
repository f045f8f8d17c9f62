package role

import (
	"go-dashboard/internal/config"
	"go-dashboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RoleApi struct {
	controller *RoleController
	service    RoleService
	config     *config.Config
}

func NewRoleApi(controller *RoleController, service RoleService, config *config.Config) *RoleApi {
	return &RoleApi{
		controller: controller,
		service:    service,
		config:     config,
	}
}

// Setup registers all role-related routes
func (h *RoleApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(h.config.SkipAuth)
	admin := middleware.RequireRole(RoleAdmin)

	app.Get("/api/roles", auth, admin, h.controller.List)
	app.Put("/api/roles/:id/permissions", auth, admin,
		middleware.RequirePermission(h.service, h.config.SkipAuth, "manage_roles"),
		h.controller.UpdatePermissions)
	app.Delete("/api/roles/:id", auth, admin,
		middleware.RequirePermission(h.service, h.config.SkipAuth, "manage_roles"),
		h.controller.Delete)
}
