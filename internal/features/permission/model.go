package permission

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Permission is a named capability grantable to a role. Checked by name,
// independently of path-level role filtering on menus.
type Permission struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"` // e.g. "create_user"
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
