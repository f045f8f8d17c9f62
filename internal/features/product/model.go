package product

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusOutOfStock = "out_of_stock"
)

type Supplier struct {
	ID      string `json:"id,omitempty" bson:"id,omitempty"`
	Name    string `json:"name" bson:"name"`
	Contact string `json:"contact,omitempty" bson:"contact,omitempty"`
}

type Location struct {
	Warehouse string `json:"warehouse" bson:"warehouse"`
	Aisle     string `json:"aisle,omitempty" bson:"aisle,omitempty"`
	Shelf     string `json:"shelf,omitempty" bson:"shelf,omitempty"`
}

type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	SKU         string             `json:"sku" bson:"sku"` // unique
	Category    string             `json:"category" bson:"category"`
	Price       float64            `json:"price" bson:"price"`
	CostPrice   float64            `json:"costPrice" bson:"cost_price"`
	Stock       int                `json:"stock" bson:"stock"`
	MinStock    int                `json:"minStock" bson:"min_stock"`
	MaxStock    int                `json:"maxStock" bson:"max_stock"`
	Unit        string             `json:"unit" bson:"unit"`
	Barcode     string             `json:"barcode,omitempty" bson:"barcode,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Status      string             `json:"status" bson:"status"`
	Supplier    *Supplier          `json:"supplier,omitempty" bson:"supplier,omitempty"`
	Location    *Location          `json:"location,omitempty" bson:"location,omitempty"`
	Tags        []string           `json:"tags" bson:"tags"`
	IsActive    bool               `json:"isActive" bson:"is_active"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updated_at"`
	CreatedBy   string             `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	UpdatedBy   string             `json:"updatedBy,omitempty" bson:"updated_by,omitempty"`
}

// LowStock reports whether stock has fallen to or below the reorder floor.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}

// Filter narrows List results; zero values mean "no constraint".
type Filter struct {
	Search    string
	Category  string
	Status    string
	LowStock  bool
	Page      int64
	Limit     int64
	SortBy    string
	SortOrder string
}
