package role

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FixtureRoles returns the built-in roles with their permission grants, used
// in mock mode and by the seeder.
func FixtureRoles() []Role {
	now := time.Now()

	defs := []struct {
		name        string
		description string
		permissions []string
	}{
		{RoleAdmin, "Administrator with full access", []string{
			"view_dashboard", "manage_users", "manage_system", "view_reports",
			"manage_roles", "manage_hr", "view_users", "create_user", "view_analytics",
		}},
		{RoleHR, "HR Manager", []string{
			"view_dashboard", "manage_hr", "view_users", "create_user",
		}},
		{RoleAccountant, "Accountant", []string{
			"view_dashboard", "view_reports", "view_analytics",
		}},
		{RoleEmployee, "Regular Employee", []string{
			"view_dashboard",
		}},
		{RoleManager, "Operations Manager", []string{
			"view_dashboard", "view_reports", "view_users", "view_analytics",
		}},
	}

	roles := make([]Role, 0, len(defs))
	for _, d := range defs {
		roles = append(roles, Role{
			ID:          primitive.NewObjectID(),
			Name:        d.name,
			Description: d.description,
			Permissions: d.permissions,
			IsSystem:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return roles
}
