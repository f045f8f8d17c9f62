package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FixtureOrders returns the orders used in mock mode and by the seeder.
func FixtureOrders() []Order {
	now := time.Now()

	return []Order{
		{
			ID:          primitive.NewObjectID(),
			OrderNumber: "ORD-2024-001",
			Customer: Customer{
				Name:    "John Smith",
				Email:   "john.smith@example.com",
				Phone:   "+1-555-0123",
				Address: "123 Main St",
				City:    "New York",
				State:   "NY",
				ZipCode: "10001",
				Country: "USA",
			},
			Items: []OrderItem{
				{
					ProductID:   "prod_1",
					ProductName: "Wireless Bluetooth Headphones",
					ProductSKU:  "WH-001",
					Quantity:    2,
					UnitPrice:   99.99,
					TotalPrice:  199.98,
					Discount:    0,
					Tax:         16.00,
				},
				{
					ProductID:   "prod_2",
					ProductName: "Cotton T-Shirt",
					ProductSKU:  "TS-002",
					Quantity:    3,
					UnitPrice:   19.99,
					TotalPrice:  53.97,
					Discount:    5.97,
					Tax:         4.32,
				},
			},
			Subtotal:         259.95,
			Tax:              20.32,
			Discount:         5.97,
			Shipping:         10.00,
			Total:            284.30,
			Status:           StatusConfirmed,
			PaymentStatus:    PaymentPaid,
			PaymentMethod:    MethodCard,
			Notes:            "Customer requested expedited shipping",
			InvoiceNumber:    "INV-2024-001",
			InvoiceGenerated: true,
			CreatedAt:        now.AddDate(0, 0, -2),
			UpdatedAt:        now.AddDate(0, 0, -1),
		},
		{
			ID:          primitive.NewObjectID(),
			OrderNumber: "ORD-2024-002",
			Customer: Customer{
				Name:    "Sarah Johnson",
				Email:   "sarah.j@example.com",
				Phone:   "+1-555-0456",
				Address: "456 Oak Ave",
				City:    "Los Angeles",
				State:   "CA",
				ZipCode: "90210",
				Country: "USA",
			},
			Items: []OrderItem{
				{
					ProductID:   "prod_6",
					ProductName: "Gaming Mouse",
					ProductSKU:  "GM-006",
					Quantity:    1,
					UnitPrice:   79.99,
					TotalPrice:  79.99,
					Discount:    0,
					Tax:         6.40,
				},
			},
			Subtotal:         79.99,
			Tax:              6.40,
			Discount:         0,
			Shipping:         5.99,
			Total:            92.38,
			Status:           StatusProcessing,
			PaymentStatus:    PaymentPaid,
			PaymentMethod:    MethodOnline,
			InvoiceNumber:    "INV-2024-002",
			InvoiceGenerated: true,
			CreatedAt:        now.AddDate(0, 0, -1),
			UpdatedAt:        now.Add(-6 * time.Hour),
		},
		{
			ID:          primitive.NewObjectID(),
			OrderNumber: "ORD-2024-003",
			Customer: Customer{
				Name:    "Mike Davis",
				Email:   "mike.davis@example.com",
				Phone:   "+1-555-0789",
				Address: "789 Pine St",
				City:    "Chicago",
				State:   "IL",
				ZipCode: "60601",
				Country: "USA",
			},
			Items: []OrderItem{
				{
					ProductID:   "prod_4",
					ProductName: "Office Chair",
					ProductSKU:  "OC-004",
					Quantity:    1,
					UnitPrice:   199.99,
					TotalPrice:  199.99,
					Discount:    20.00,
					Tax:         14.40,
				},
			},
			Subtotal:      199.99,
			Tax:           14.40,
			Discount:      20.00,
			Shipping:      15.00,
			Total:         209.39,
			Status:        StatusPending,
			PaymentStatus: PaymentPending,
			PaymentMethod: MethodBankTransfer,
			Notes:         "Bulk order discount applied",
			CreatedAt:     now.Add(-3 * time.Hour),
			UpdatedAt:     now.Add(-3 * time.Hour),
		},
	}
}
