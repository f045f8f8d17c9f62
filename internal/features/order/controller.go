package order

import (
	"time"

	"go-dashboard/internal/common/models"
	"go-dashboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	OrderService OrderService
}

func NewOrderController(orderService OrderService) *OrderController {
	return &OrderController{OrderService: orderService}
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func (ctrl *OrderController) List(c *fiber.Ctx) error {
	filter := Filter{
		Search:        c.Query("search"),
		Status:        c.Query("status"),
		PaymentStatus: c.Query("paymentStatus"),
		DateFrom:      parseDate(c.Query("dateFrom")),
		DateTo:        parseDate(c.Query("dateTo")),
		Page:          int64(c.QueryInt("page", 1)),
		Limit:         int64(c.QueryInt("limit", 10)),
		SortBy:        c.Query("sortBy"),
		SortOrder:     c.Query("sortOrder"),
	}

	orders, total, err := ctrl.OrderService.List(c.Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"orders":     orders,
			"pagination": models.NewPagination(filter.Page, filter.Limit, total),
		},
	})
}

func (ctrl *OrderController) Get(c *fiber.Ctx) error {
	o, err := ctrl.OrderService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"order": o},
	})
}

func (ctrl *OrderController) Create(c *fiber.Ctx) error {
	var input CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	claims, _ := middleware.ClaimsFromCtx(c)
	o, err := ctrl.OrderService.Create(c.Context(), input, claims.UserID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Order created successfully",
		"data":    fiber.Map{"order": o},
	})
}

func (ctrl *OrderController) Update(c *fiber.Ctx) error {
	var input UpdateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	claims, _ := middleware.ClaimsFromCtx(c)
	o, err := ctrl.OrderService.Update(c.Context(), c.Params("id"), input, claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order updated successfully",
		"data":    fiber.Map{"order": o},
	})
}

func (ctrl *OrderController) GenerateInvoice(c *fiber.Ctx) error {
	claims, _ := middleware.ClaimsFromCtx(c)
	invoice, err := ctrl.OrderService.GenerateInvoice(c.Context(), c.Params("id"), claims.UserID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Invoice generated successfully",
		"data":    fiber.Map{"invoice": invoice},
	})
}

// Report serves JSON by default and an xlsx workbook when format=xlsx.
func (ctrl *OrderController) Report(c *fiber.Ctx) error {
	period := c.Query("period", "month")
	from := parseDate(c.Query("dateFrom"))
	to := parseDate(c.Query("dateTo"))

	if c.Query("format") == "xlsx" {
		f, err := ctrl.OrderService.ReportWorkbook(c.Context(), period, from, to)
		if err != nil {
			return err
		}

		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", `attachment; filename="sales-report.xlsx"`)
		return f.Write(c.Response().BodyWriter())
	}

	report, err := ctrl.OrderService.Report(c.Context(), period, from, to)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Sales report generated successfully",
		"data":    fiber.Map{"report": report},
	})
}
