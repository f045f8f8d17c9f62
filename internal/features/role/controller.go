package role

import (
	"github.com/gofiber/fiber/v2"
)

type RoleController struct {
	RoleService RoleService
}

func NewRoleController(roleService RoleService) *RoleController {
	return &RoleController{RoleService: roleService}
}

type UpdatePermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

func (ctrl *RoleController) List(c *fiber.Ctx) error {
	roles, err := ctrl.RoleService.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"roles": roles},
	})
}

func (ctrl *RoleController) UpdatePermissions(c *fiber.Ctx) error {
	var req UpdatePermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updated, err := ctrl.RoleService.UpdatePermissions(c.Context(), c.Params("id"), req.Permissions)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"role": updated},
	})
}

func (ctrl *RoleController) Delete(c *fiber.Ctx) error {
	if err := ctrl.RoleService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Role deleted successfully",
	})
}
