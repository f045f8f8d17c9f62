package user

import (
	"go-dashboard/internal/config"
	"go-dashboard/internal/features/role"
	"go-dashboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	controller  *UserController
	roleService middleware.RoleService
	config      *config.Config
}

func NewUserApi(controller *UserController, roleService middleware.RoleService, config *config.Config) *UserApi {
	return &UserApi{
		controller:  controller,
		roleService: roleService,
		config:      config,
	}
}

// Setup registers all user management routes
func (h *UserApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(h.config.SkipAuth)

	app.Get("/api/users", auth,
		middleware.RequireRole(role.RoleAdmin, role.RoleHR),
		h.controller.List)
	app.Post("/api/user/create", auth,
		middleware.RequireRole(role.RoleAdmin, role.RoleHR),
		middleware.RequirePermission(h.roleService, h.config.SkipAuth, "create_user"),
		h.controller.Create)
	app.Delete("/api/user/:id", auth,
		middleware.RequireRole(role.RoleAdmin),
		h.controller.Delete)
	app.Get("/api/user/me", auth, h.controller.Me)
}
