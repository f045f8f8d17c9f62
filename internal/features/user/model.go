package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	FirstName string             `json:"firstName" bson:"first_name"`
	LastName  string             `json:"lastName" bson:"last_name"`
	Role      primitive.ObjectID `json:"role" bson:"role"`
	RoleName  string             `json:"roleName,omitempty" bson:"-"` // populated from the role ref
	IsActive  bool               `json:"isActive" bson:"is_active"`
	LastLogin *time.Time         `json:"lastLogin,omitempty" bson:"last_login,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
