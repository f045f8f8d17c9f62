package middleware

import (
	"slices"

	"github.com/gofiber/fiber/v2"
)

// RequireRole rejects the request unless the principal's role is one of the
// allowed roles. Must run after AuthMiddleware.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromCtx(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		if !slices.Contains(allowed, claims.Role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient role access",
			})
		}

		return c.Next()
	}
}
