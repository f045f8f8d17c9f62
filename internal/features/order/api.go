package order

import (
	"go-dashboard/internal/config"
	"go-dashboard/internal/features/role"
	"go-dashboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type OrderApi struct {
	controller *OrderController
	config     *config.Config
}

func NewOrderApi(controller *OrderController, config *config.Config) *OrderApi {
	return &OrderApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers all order routes
func (h *OrderApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(h.config.SkipAuth)

	app.Get("/api/orders", auth, h.controller.List)

	// Reports are for roles with a financial view.
	app.Get("/api/orders/reports", auth,
		middleware.RequireRole(role.RoleAdmin, role.RoleManager, role.RoleAccountant),
		h.controller.Report)

	app.Get("/api/orders/:id", auth, h.controller.Get)
	app.Post("/api/orders", auth, h.controller.Create)
	app.Put("/api/orders/:id", auth,
		middleware.RequireRole(role.RoleAdmin, role.RoleManager),
		h.controller.Update)
	app.Post("/api/orders/:id/invoice", auth,
		middleware.RequireRole(role.RoleAdmin, role.RoleManager, role.RoleAccountant),
		h.controller.GenerateInvoice)
}
