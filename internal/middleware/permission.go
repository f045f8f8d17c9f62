package middleware

import (
	"context"
	"slices"

	"github.com/gofiber/fiber/v2"
)

// RoleService is the slice of the role feature the permission check needs.
// Declared here so the middleware package does not import the feature.
type RoleService interface {
	PermissionsForRole(ctx context.Context, roleName string) ([]string, error)
}

// RequirePermission checks if the principal's role grants a named permission.
// The role's permission set is loaded once per check.
func RequirePermission(roleService RoleService, skipAuth bool, requiredPermission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skipAuth {
			return c.Next()
		}

		claims, ok := ClaimsFromCtx(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		permissions, err := roleService.PermissionsForRole(c.Context(), claims.Role)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		}

		if !slices.Contains(permissions, requiredPermission) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient permissions",
			})
		}

		return c.Next()
	}
}
