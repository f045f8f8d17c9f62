package product

import (
	"strconv"

	"go-dashboard/internal/common/models"
	"go-dashboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ProductController struct {
	ProductService ProductService
}

func NewProductController(productService ProductService) *ProductController {
	return &ProductController{ProductService: productService}
}

func (ctrl *ProductController) List(c *fiber.Ctx) error {
	filter := Filter{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		Status:    c.Query("status"),
		LowStock:  c.Query("lowStock") == "true",
		Page:      int64(c.QueryInt("page", 1)),
		Limit:     int64(c.QueryInt("limit", 10)),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	products, total, err := ctrl.ProductService.List(c.Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"products":   products,
			"pagination": models.NewPagination(filter.Page, filter.Limit, total),
		},
	})
}

func (ctrl *ProductController) Get(c *fiber.Ctx) error {
	p, err := ctrl.ProductService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"product": p},
	})
}

func (ctrl *ProductController) Create(c *fiber.Ctx) error {
	var input CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	claims, _ := middleware.ClaimsFromCtx(c)
	p, err := ctrl.ProductService.Create(c.Context(), input, claims.UserID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product created successfully",
		"data":    fiber.Map{"product": p},
	})
}

func (ctrl *ProductController) Update(c *fiber.Ctx) error {
	var input UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	claims, _ := middleware.ClaimsFromCtx(c)
	p, err := ctrl.ProductService.Update(c.Context(), c.Params("id"), input, claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"data":    fiber.Map{"product": p},
	})
}

func (ctrl *ProductController) Delete(c *fiber.Ctx) error {
	if err := ctrl.ProductService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
	})
}

func (ctrl *ProductController) Search(c *fiber.Ctx) error {
	limit, _ := strconv.ParseInt(c.Query("limit", "10"), 10, 64)

	hits, err := ctrl.ProductService.Search(c.Context(), c.Query("q"), c.Query("type", "general"), limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"results": hits,
			"query":   c.Query("q"),
		},
	})
}

func (ctrl *ProductController) Batch(c *fiber.Ctx) error {
	var input BatchInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	claims, _ := middleware.ClaimsFromCtx(c)
	result, err := ctrl.ProductService.Batch(c.Context(), input, claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Batch operation completed",
		"data":    result,
	})
}
