package product

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FixtureProducts returns the catalog used in mock mode and by the seeder.
func FixtureProducts() []Product {
	now := time.Now()
	days := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	return []Product{
		{
			ID:          primitive.NewObjectID(),
			Name:        "Wireless Bluetooth Headphones",
			Description: "High-quality wireless headphones with noise cancellation",
			SKU:         "WH-001",
			Category:    "Electronics",
			Price:       99.99,
			CostPrice:   60.00,
			Stock:       25,
			MinStock:    5,
			MaxStock:    100,
			Unit:        "piece",
			Barcode:     "1234567890123",
			Status:      StatusActive,
			Supplier:    &Supplier{Name: "Tech Supplies Co.", Contact: "contact@techsupplies.com"},
			Location:    &Location{Warehouse: "Main", Aisle: "A1", Shelf: "S3"},
			Tags:        []string{"wireless", "audio", "electronics"},
			IsActive:    true,
			CreatedAt:   days(30),
			UpdatedAt:   days(5),
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Cotton T-Shirt",
			Description: "100% cotton comfortable t-shirt available in multiple colors",
			SKU:         "TS-002",
			Category:    "Clothing",
			Price:       19.99,
			CostPrice:   12.00,
			Stock:       150,
			MinStock:    20,
			MaxStock:    500,
			Unit:        "piece",
			Barcode:     "2345678901234",
			Status:      StatusActive,
			Supplier:    &Supplier{Name: "Fashion Wholesale", Contact: "orders@fashionwholesale.com"},
			Location:    &Location{Warehouse: "Main", Aisle: "B2", Shelf: "S1"},
			Tags:        []string{"clothing", "cotton", "casual"},
			IsActive:    true,
			CreatedAt:   days(25),
			UpdatedAt:   days(2),
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Organic Green Tea",
			Description: "Premium organic green tea, 100g pack",
			SKU:         "GT-003",
			Category:    "Food & Beverages",
			Price:       15.50,
			CostPrice:   8.00,
			Stock:       3,
			MinStock:    10,
			MaxStock:    200,
			Unit:        "pack",
			Barcode:     "3456789012345",
			Status:      StatusActive,
			Supplier:    &Supplier{Name: "Organic Foods Ltd.", Contact: "sales@organicfoods.com"},
			Location:    &Location{Warehouse: "Cold Storage", Aisle: "C1", Shelf: "S2"},
			Tags:        []string{"organic", "tea", "beverage"},
			IsActive:    true,
			CreatedAt:   days(20),
			UpdatedAt:   days(1),
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Office Chair",
			Description: "Ergonomic office chair with lumbar support",
			SKU:         "OC-004",
			Category:    "Office Supplies",
			Price:       199.99,
			CostPrice:   120.00,
			Stock:       12,
			MinStock:    5,
			MaxStock:    50,
			Unit:        "piece",
			Barcode:     "4567890123456",
			Status:      StatusActive,
			Supplier:    &Supplier{Name: "Office Furniture Pro", Contact: "info@officefurniture.com"},
			Location:    &Location{Warehouse: "Warehouse B", Aisle: "D1", Shelf: "Floor"},
			Tags:        []string{"furniture", "office", "ergonomic"},
			IsActive:    true,
			CreatedAt:   days(15),
			UpdatedAt:   days(3),
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Smartphone Case",
			Description: "Protective case for smartphones, transparent design",
			SKU:         "SC-005",
			Category:    "Electronics",
			Price:       12.99,
			CostPrice:   6.00,
			Stock:       0,
			MinStock:    15,
			MaxStock:    300,
			Unit:        "piece",
			Barcode:     "5678901234567",
			Status:      StatusOutOfStock,
			Supplier:    &Supplier{Name: "Tech Supplies Co.", Contact: "contact@techsupplies.com"},
			Location:    &Location{Warehouse: "Main", Aisle: "A2", Shelf: "S1"},
			Tags:        []string{"phone", "accessory", "protection"},
			IsActive:    true,
			CreatedAt:   days(10),
			UpdatedAt:   now,
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Gaming Mouse",
			Description: "High-precision gaming mouse with RGB lighting",
			SKU:         "GM-006",
			Category:    "Electronics",
			Price:       79.99,
			CostPrice:   45.00,
			Stock:       35,
			MinStock:    10,
			MaxStock:    150,
			Unit:        "piece",
			Barcode:     "6789012345678",
			Status:      StatusActive,
			Supplier:    &Supplier{Name: "Tech Supplies Co.", Contact: "contact@techsupplies.com"},
			Location:    &Location{Warehouse: "Main", Aisle: "A1", Shelf: "S2"},
			Tags:        []string{"gaming", "mouse", "rgb", "electronics"},
			IsActive:    true,
			CreatedAt:   days(8),
			UpdatedAt:   days(1),
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Protein Powder",
			Description: "Whey protein powder for muscle building, vanilla flavor, 2kg",
			SKU:         "PP-007",
			Category:    "Health & Beauty",
			Price:       45.99,
			CostPrice:   28.00,
			Stock:       2,
			MinStock:    8,
			MaxStock:    80,
			Unit:        "kg",
			Barcode:     "7890123456789",
			Status:      StatusActive,
			Supplier:    &Supplier{Name: "Health Nutrition Ltd.", Contact: "orders@healthnutrition.com"},
			Location:    &Location{Warehouse: "Main", Aisle: "E1", Shelf: "S4"},
			Tags:        []string{"protein", "fitness", "supplement", "vanilla"},
			IsActive:    true,
			CreatedAt:   days(12),
			UpdatedAt:   days(1),
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Desk Lamp",
			Description: "LED desk lamp with adjustable brightness and USB charging port",
			SKU:         "DL-008",
			Category:    "Office Supplies",
			Price:       34.99,
			CostPrice:   20.00,
			Stock:       18,
			MinStock:    5,
			MaxStock:    60,
			Unit:        "piece",
			Barcode:     "8901234567890",
			Status:      StatusActive,
			Supplier:    &Supplier{Name: "Office Furniture Pro", Contact: "info@officefurniture.com"},
			Location:    &Location{Warehouse: "Warehouse B", Aisle: "D2", Shelf: "S3"},
			Tags:        []string{"lamp", "led", "office", "usb"},
			IsActive:    true,
			CreatedAt:   days(6),
			UpdatedAt:   days(2),
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Winter Jacket",
			Description: "Waterproof winter jacket with thermal lining, size M",
			SKU:         "WJ-009",
			Category:    "Clothing",
			Price:       89.99,
			CostPrice:   55.00,
			Stock:       8,
			MinStock:    3,
			MaxStock:    40,
			Unit:        "piece",
			Barcode:     "9012345678901",
			Status:      StatusActive,
			Supplier:    &Supplier{Name: "Fashion Wholesale", Contact: "orders@fashionwholesale.com"},
			Location:    &Location{Warehouse: "Main", Aisle: "B1", Shelf: "S4"},
			Tags:        []string{"jacket", "winter", "waterproof", "clothing"},
			IsActive:    true,
			CreatedAt:   days(4),
			UpdatedAt:   days(1),
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Coffee Beans",
			Description: "Premium arabica coffee beans, dark roast, 500g",
			SKU:         "CB-010",
			Category:    "Food & Beverages",
			Price:       24.99,
			CostPrice:   15.00,
			Stock:       0,
			MinStock:    12,
			MaxStock:    100,
			Unit:        "pack",
			Barcode:     "0123456789012",
			Status:      StatusOutOfStock,
			Supplier:    &Supplier{Name: "Coffee Roasters Inc.", Contact: "supply@coffeeroasters.com"},
			Location:    &Location{Warehouse: "Main", Aisle: "C2", Shelf: "S1"},
			Tags:        []string{"coffee", "beans", "arabica", "dark-roast"},
			IsActive:    true,
			CreatedAt:   days(14),
			UpdatedAt:   now,
		},
	}
}
