package user

import (
	"time"

	"go-dashboard/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FixtureUsers returns the default accounts, one per role, with bcrypt-hashed
// passwords. roleIDs maps role name to its stored id.
func FixtureUsers(roleIDs map[string]primitive.ObjectID) ([]User, error) {
	defs := []struct {
		email     string
		password  string
		firstName string
		lastName  string
		role      string
	}{
		{"admin@example.com", "admin123", "Admin", "User", "admin"},
		{"hr@example.com", "password123", "HR", "Manager", "hr"},
		{"accountant@example.com", "password123", "Finance", "Manager", "accountant"},
		{"employee@example.com", "password123", "John", "Employee", "employee"},
		{"manager@example.com", "password123", "Olivia", "Stone", "manager"},
	}

	now := time.Now()
	users := make([]User, 0, len(defs))
	for _, d := range defs {
		hash, err := utils.HashPassword(d.password)
		if err != nil {
			return nil, err
		}
		users = append(users, User{
			ID:        primitive.NewObjectID(),
			Email:     d.email,
			Password:  hash,
			FirstName: d.firstName,
			LastName:  d.lastName,
			Role:      roleIDs[d.role],
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return users, nil
}
