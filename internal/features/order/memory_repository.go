package order

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// MemoryOrderRepository is the mock-mode and test implementation.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []Order
}

func NewMemoryOrderRepository(seed []Order) *MemoryOrderRepository {
	r := &MemoryOrderRepository{}
	r.orders = append(r.orders, seed...)
	return r
}

func matches(o *Order, filter Filter) bool {
	if filter.Search != "" {
		s := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(o.OrderNumber), s) &&
			!strings.Contains(strings.ToLower(o.Customer.Name), s) &&
			!strings.Contains(strings.ToLower(o.Customer.Email), s) &&
			!strings.Contains(strings.ToLower(o.InvoiceNumber), s) {
			return false
		}
	}
	if filter.Status != "" && o.Status != filter.Status {
		return false
	}
	if filter.PaymentStatus != "" && o.PaymentStatus != filter.PaymentStatus {
		return false
	}
	if filter.DateFrom != nil && o.CreatedAt.Before(*filter.DateFrom) {
		return false
	}
	if filter.DateTo != nil && o.CreatedAt.After(*filter.DateTo) {
		return false
	}
	return true
}

func (r *MemoryOrderRepository) List(ctx context.Context, filter Filter) ([]Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var hits []Order
	for i := range r.orders {
		if matches(&r.orders[i], filter) {
			hits = append(hits, r.orders[i])
		}
	}

	asc := filter.SortOrder == "asc"
	sort.SliceStable(hits, func(i, j int) bool {
		switch filter.SortBy {
		case "total":
			if asc {
				return hits[i].Total < hits[j].Total
			}
			return hits[i].Total > hits[j].Total
		case "order_number":
			if asc {
				return hits[i].OrderNumber < hits[j].OrderNumber
			}
			return hits[i].OrderNumber > hits[j].OrderNumber
		default:
			if asc {
				return hits[i].CreatedAt.Before(hits[j].CreatedAt)
			}
			return hits[i].CreatedAt.After(hits[j].CreatedAt)
		}
	})

	total := int64(len(hits))
	start := (filter.Page - 1) * filter.Limit
	if start >= total {
		return []Order{}, total, nil
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return hits[start:end], total, nil
}

func (r *MemoryOrderRepository) FindByID(ctx context.Context, id string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].ID.Hex() == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *MemoryOrderRepository) Insert(ctx context.Context, order *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, *order)
	return nil
}

func (r *MemoryOrderRepository) Update(ctx context.Context, id string, order *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID.Hex() == id {
			updated := *order
			updated.ID = r.orders[i].ID
			r.orders[i] = updated
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *MemoryOrderRepository) All(ctx context.Context, from, to *time.Time) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var hits []Order
	for i := range r.orders {
		o := &r.orders[i]
		if from != nil && o.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && o.CreatedAt.After(*to) {
			continue
		}
		hits = append(hits, *o)
	}
	return hits, nil
}
