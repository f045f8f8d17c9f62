package permission

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FixturePermissions returns the permission catalog used in mock mode and by
// the seeder.
func FixturePermissions() []Permission {
	defs := []struct{ name, description string }{
		{"view_dashboard", "View dashboard"},
		{"manage_users", "Manage users"},
		{"manage_system", "Manage system settings"},
		{"view_reports", "View reports"},
		{"manage_roles", "Manage roles and permissions"},
		{"manage_hr", "Manage HR operations"},
		{"view_users", "View users list"},
		{"create_user", "Create new users"},
		{"view_analytics", "View analytics"},
	}

	now := time.Now()
	permissions := make([]Permission, 0, len(defs))
	for _, d := range defs {
		permissions = append(permissions, Permission{
			ID:          primitive.NewObjectID(),
			Name:        d.name,
			Description: d.description,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return permissions
}
