package product

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
)

// MemoryProductRepository is the mock-mode and test implementation.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []Product
}

func NewMemoryProductRepository(seed []Product) *MemoryProductRepository {
	r := &MemoryProductRepository{}
	r.products = append(r.products, seed...)
	return r
}

func matches(p *Product, filter Filter) bool {
	if !p.IsActive {
		return false
	}
	if filter.Search != "" {
		s := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(p.Name), s) &&
			!strings.Contains(strings.ToLower(p.SKU), s) &&
			!strings.Contains(strings.ToLower(p.Barcode), s) {
			return false
		}
	}
	if filter.Category != "" && p.Category != filter.Category {
		return false
	}
	if filter.Status != "" && p.Status != filter.Status {
		return false
	}
	if filter.LowStock && !p.LowStock() {
		return false
	}
	return true
}

func (r *MemoryProductRepository) List(ctx context.Context, filter Filter) ([]Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var hits []Product
	for i := range r.products {
		if matches(&r.products[i], filter) {
			hits = append(hits, r.products[i])
		}
	}

	asc := filter.SortOrder == "asc"
	sort.SliceStable(hits, func(i, j int) bool {
		var less bool
		switch filter.SortBy {
		case "name":
			less = hits[i].Name < hits[j].Name
		case "price":
			less = hits[i].Price < hits[j].Price
		case "stock":
			less = hits[i].Stock < hits[j].Stock
		default:
			// newest first matches the Mongo default sort
			less = hits[i].CreatedAt.After(hits[j].CreatedAt)
			if asc {
				less = !less
			}
			return less
		}
		if !asc {
			less = !less
		}
		return less
	})

	total := int64(len(hits))
	start := (filter.Page - 1) * filter.Limit
	if start >= total {
		return []Product{}, total, nil
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return hits[start:end], total, nil
}

func (r *MemoryProductRepository) FindByID(ctx context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID.Hex() == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *MemoryProductRepository) FindBySKU(ctx context.Context, sku string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].SKU == sku {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *MemoryProductRepository) Insert(ctx context.Context, product *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, *product)
	return nil
}

func (r *MemoryProductRepository) Update(ctx context.Context, id string, product *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID.Hex() == id {
			updated := *product
			updated.ID = r.products[i].ID
			r.products[i] = updated
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *MemoryProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID.Hex() == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *MemoryProductRepository) UpdateMany(ctx context.Context, ids []string, fields map[string]interface{}) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idSet := map[string]bool{}
	for _, id := range ids {
		idSet[id] = true
	}

	var n int64
	for i := range r.products {
		if !idSet[r.products[i].ID.Hex()] {
			continue
		}
		for k, v := range fields {
			switch k {
			case "status":
				if s, ok := v.(string); ok {
					r.products[i].Status = s
				}
			case "category":
				if s, ok := v.(string); ok {
					r.products[i].Category = s
				}
			case "is_active":
				if b, ok := v.(bool); ok {
					r.products[i].IsActive = b
				}
			}
		}
		n++
	}
	return n, nil
}
