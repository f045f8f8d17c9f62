package role

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The role set is closed: extending it means adding a constant here, not
// inserting runtime data. Both UI menu visibility and permission checks key
// off these names.
const (
	RoleAdmin      = "admin"
	RoleHR         = "hr"
	RoleAccountant = "accountant"
	RoleEmployee   = "employee"
	RoleManager    = "manager"
)

var AllRoles = []string{RoleAdmin, RoleHR, RoleAccountant, RoleEmployee, RoleManager}

func IsValidRole(name string) bool {
	return slices.Contains(AllRoles, name)
}

// Role owns a fixed set of named permissions. Permission names are stored
// denormalized on the role; the permissions collection is the catalog the
// admin UI picks from.
type Role struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Permissions []string           `json:"permissions" bson:"permissions"`
	IsSystem    bool               `json:"is_system" bson:"is_system"` // Prevent deletion of system roles
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
