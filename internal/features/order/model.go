package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentPartial  = "partial"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

const (
	MethodCash         = "cash"
	MethodCard         = "card"
	MethodBankTransfer = "bank_transfer"
	MethodCheck        = "check"
	MethodOnline       = "online"
)

type Customer struct {
	ID      string `json:"id,omitempty" bson:"id,omitempty"`
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty" bson:"zip_code,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
}

// OrderItem snapshots the product at purchase time so later product edits
// never rewrite history.
type OrderItem struct {
	ProductID   string  `json:"productId" bson:"product_id"`
	ProductName string  `json:"productName" bson:"product_name"`
	ProductSKU  string  `json:"productSku" bson:"product_sku"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unitPrice" bson:"unit_price"`
	TotalPrice  float64 `json:"totalPrice" bson:"total_price"`
	Discount    float64 `json:"discount" bson:"discount"`
	Tax         float64 `json:"tax" bson:"tax"`
}

type Order struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrderNumber      string             `json:"orderNumber" bson:"order_number"`
	Customer         Customer           `json:"customer" bson:"customer"`
	Items            []OrderItem        `json:"items" bson:"items"`
	Subtotal         float64            `json:"subtotal" bson:"subtotal"`
	Tax              float64            `json:"tax" bson:"tax"`
	Discount         float64            `json:"discount" bson:"discount"`
	Shipping         float64            `json:"shipping" bson:"shipping"`
	Total            float64            `json:"total" bson:"total"`
	Status           string             `json:"status" bson:"status"`
	PaymentStatus    string             `json:"paymentStatus" bson:"payment_status"`
	PaymentMethod    string             `json:"paymentMethod" bson:"payment_method"`
	Notes            string             `json:"notes" bson:"notes"`
	InvoiceNumber    string             `json:"invoiceNumber,omitempty" bson:"invoice_number,omitempty"`
	InvoiceGenerated bool               `json:"invoiceGenerated" bson:"invoice_generated"`
	ShippedAt        *time.Time         `json:"shippedAt,omitempty" bson:"shipped_at,omitempty"`
	DeliveredAt      *time.Time         `json:"deliveredAt,omitempty" bson:"delivered_at,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updated_at"`
	CreatedBy        string             `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	UpdatedBy        string             `json:"updatedBy,omitempty" bson:"updated_by,omitempty"`
}

// Invoice is derived from an order at generation time.
type Invoice struct {
	InvoiceNumber string      `json:"invoiceNumber"`
	OrderID       string      `json:"orderId"`
	OrderNumber   string      `json:"orderNumber"`
	Customer      Customer    `json:"customer"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Tax           float64     `json:"tax"`
	Discount      float64     `json:"discount"`
	Total         float64     `json:"total"`
	IssueDate     string      `json:"issueDate"`
	DueDate       string      `json:"dueDate"`
	Status        string      `json:"status"`
	Notes         string      `json:"notes"`
}

// Filter narrows List results; zero values mean "no constraint".
type Filter struct {
	Search        string
	Status        string
	PaymentStatus string
	DateFrom      *time.Time
	DateTo        *time.Time
	Page          int64
	Limit         int64
	SortBy        string
	SortOrder     string
}

// Terminal reports whether the order can no longer change state.
func (o *Order) Terminal() bool {
	return o.Status == StatusDelivered || o.Status == StatusCancelled
}
