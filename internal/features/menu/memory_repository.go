package menu

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
)

// MemoryMenuRepository keeps menus in insertion order behind a mutex. Used
// in mock-data mode and by tests; behavior mirrors the Mongo repository,
// including the mongo.ErrNoDocuments sentinel.
type MemoryMenuRepository struct {
	mu    sync.RWMutex
	menus []Menu
}

func NewMemoryMenuRepository(seed []Menu) *MemoryMenuRepository {
	r := &MemoryMenuRepository{}
	r.menus = append(r.menus, seed...)
	return r
}

func (r *MemoryMenuRepository) List(ctx context.Context) ([]Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Menu, len(r.menus))
	copy(out, r.menus)
	return out, nil
}

func (r *MemoryMenuRepository) FindByID(ctx context.Context, id string) (*Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.menus {
		if r.menus[i].ID.Hex() == id {
			m := r.menus[i]
			return &m, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *MemoryMenuRepository) FindActiveByPath(ctx context.Context, path string) (*Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.menus {
		if r.menus[i].IsActive && r.menus[i].Path == path {
			m := r.menus[i]
			return &m, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *MemoryMenuRepository) Insert(ctx context.Context, menu *Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.menus = append(r.menus, *menu)
	return nil
}

func (r *MemoryMenuRepository) Update(ctx context.Context, id string, menu *Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.menus {
		if r.menus[i].ID.Hex() == id {
			updated := *menu
			updated.ID = r.menus[i].ID
			updated.CreatedAt = r.menus[i].CreatedAt
			r.menus[i] = updated
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *MemoryMenuRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.menus {
		if r.menus[i].ID.Hex() == id {
			r.menus = append(r.menus[:i], r.menus[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *MemoryMenuRepository) CountChildren(ctx context.Context, id string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for i := range r.menus {
		if r.menus[i].IsActive && r.menus[i].Parent != nil && r.menus[i].Parent.Hex() == id {
			n++
		}
	}
	return n, nil
}
