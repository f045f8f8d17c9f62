package user

import (
	common_models "go-dashboard/internal/common/models"
	"go-dashboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	UserService UserService
}

func NewUserController(userService UserService) *UserController {
	return &UserController{UserService: userService}
}

func (ctrl *UserController) List(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 20))
	search := c.Query("search")

	users, total, err := ctrl.UserService.List(c.Context(), page, limit, search)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"users":      users,
			"pagination": common_models.NewPagination(page, limit, total),
		},
	})
}

func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var input CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	u, err := ctrl.UserService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"data":    fiber.Map{"user": u},
	})
}

func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	claims, _ := middleware.ClaimsFromCtx(c)

	if err := ctrl.UserService.Delete(c.Context(), c.Params("id"), claims.UserID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}

func (ctrl *UserController) Me(c *fiber.Ctx) error {
	claims, _ := middleware.ClaimsFromCtx(c)

	u, err := ctrl.UserService.Me(c.Context(), claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"user": u},
	})
}
