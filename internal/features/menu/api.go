package menu

import (
	"go-dashboard/internal/config"
	"go-dashboard/internal/features/role"
	"go-dashboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type MenuApi struct {
	controller *MenuController
	config     *config.Config
}

func NewMenuApi(controller *MenuController, config *config.Config) *MenuApi {
	return &MenuApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers all menu routes
func (h *MenuApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(h.config.SkipAuth)
	admin := middleware.RequireRole(role.RoleAdmin)

	// Any authenticated caller gets their role's tree.
	app.Get("/api/menus", auth, h.controller.Tree)

	app.Get("/api/menus/reports", auth,
		middleware.RequireRole(role.RoleAdmin, role.RoleManager),
		h.controller.Report)

	// Management endpoints are admin-only.
	app.Get("/api/menus/all", auth, admin, h.controller.ListAll)
	app.Post("/api/menus", auth, admin, h.controller.Create)
	app.Put("/api/menus/:id", auth, admin, h.controller.Update)
	app.Delete("/api/menus/:id", auth, admin, h.controller.Delete)
}
