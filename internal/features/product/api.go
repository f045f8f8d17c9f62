package product

import (
	"go-dashboard/internal/config"
	"go-dashboard/internal/features/role"
	"go-dashboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ProductApi struct {
	controller *ProductController
	config     *config.Config
}

func NewProductApi(controller *ProductController, config *config.Config) *ProductApi {
	return &ProductApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers all product routes
func (h *ProductApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(h.config.SkipAuth)
	manage := middleware.RequireRole(role.RoleAdmin, role.RoleManager)

	app.Get("/api/products", auth, h.controller.List)
	app.Get("/api/products/search", auth, h.controller.Search)
	app.Get("/api/products/:id", auth, h.controller.Get)

	// Writes are restricted to admins and managers.
	app.Post("/api/products", auth, manage, h.controller.Create)
	app.Post("/api/products/batch", auth, manage, h.controller.Batch)
	app.Put("/api/products/:id", auth, manage, h.controller.Update)
	app.Delete("/api/products/:id", auth, manage, h.controller.Delete)
}
