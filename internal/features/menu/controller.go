package menu

import (
	"go-dashboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type MenuController struct {
	MenuService MenuService
}

func NewMenuController(menuService MenuService) *MenuController {
	return &MenuController{MenuService: menuService}
}

// Tree returns the navigation tree visible to the caller's role, taken from
// the token claims.
func (ctrl *MenuController) Tree(c *fiber.Ctx) error {
	claims, _ := middleware.ClaimsFromCtx(c)

	nodes, err := ctrl.MenuService.TreeForRole(c.Context(), claims.Role)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Menus retrieved successfully",
		"data":    fiber.Map{"menus": nodes},
	})
}

// ListAll returns the flat record set for the admin management screen.
func (ctrl *MenuController) ListAll(c *fiber.Ctx) error {
	menus, err := ctrl.MenuService.List(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"menus": menus},
	})
}

func (ctrl *MenuController) Create(c *fiber.Ctx) error {
	var input CreateMenuInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	m, err := ctrl.MenuService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Menu created successfully",
		"data":    fiber.Map{"menu": m},
	})
}

func (ctrl *MenuController) Update(c *fiber.Ctx) error {
	var input UpdateMenuInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	m, err := ctrl.MenuService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Menu updated successfully",
		"data":    fiber.Map{"menu": m},
	})
}

func (ctrl *MenuController) Delete(c *fiber.Ctx) error {
	if err := ctrl.MenuService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Menu deleted successfully",
	})
}

func (ctrl *MenuController) Report(c *fiber.Ctx) error {
	report, err := ctrl.MenuService.Report(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Menu reports retrieved successfully",
		"data":    report,
	})
}
