package permission

import (
	"go-dashboard/internal/config"
	"go-dashboard/internal/features/role"
	"go-dashboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PermissionApi struct {
	service PermissionService
	config  *config.Config
}

func NewPermissionApi(service PermissionService, config *config.Config) *PermissionApi {
	return &PermissionApi{
		service: service,
		config:  config,
	}
}

// Setup registers permission catalog routes
func (h *PermissionApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(h.config.SkipAuth)
	admin := middleware.RequireRole(role.RoleAdmin)

	app.Get("/api/permissions", auth, admin, h.list)
	app.Post("/api/permissions", auth, admin, h.create)
}

func (h *PermissionApi) list(c *fiber.Ctx) error {
	permissions, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"permissions": permissions},
	})
}

type createPermissionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *PermissionApi) create(c *fiber.Ctx) error {
	var req createPermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	p, err := h.service.Create(c.Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"permission": p},
	})
}
