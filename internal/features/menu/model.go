package menu

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Menu is a persisted, role-tagged navigation entry. Parent linkage is
// presentational only: a child stays visible to a role even when its parent
// is not, so the parent ref is never an access-control boundary.
type Menu struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name      string              `json:"name" bson:"name"`
	Path      string              `json:"path" bson:"path"` // unique among active records
	Icon      string              `json:"icon,omitempty" bson:"icon,omitempty"`
	Roles     []string            `json:"roles" bson:"roles"`
	Parent    *primitive.ObjectID `json:"parent,omitempty" bson:"parent,omitempty"`
	Order     float64             `json:"order" bson:"order"`
	IsActive  bool                `json:"isActive" bson:"is_active"` // soft-delete flag
	CreatedAt time.Time           `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time           `json:"updatedAt" bson:"updated_at"`
}

// Node is the transient tree rendering of a set of menus for one caller.
// Built fresh per request and never mutated afterwards.
type Node struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Path     string             `json:"path"`
	Icon     string             `json:"icon,omitempty"`
	Roles    []string           `json:"roles"`
	Order    float64            `json:"order"`
	IsActive bool               `json:"isActive"`
	Children []*Node            `json:"children"`
}

func newNode(m Menu) *Node {
	return &Node{
		ID:       m.ID,
		Name:     m.Name,
		Path:     m.Path,
		Icon:     m.Icon,
		Roles:    m.Roles,
		Order:    m.Order,
		IsActive: m.IsActive,
		Children: []*Node{},
	}
}
