package permission

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
)

// MemoryPermissionRepository is the mock-mode and test implementation.
type MemoryPermissionRepository struct {
	mu          sync.RWMutex
	permissions []Permission
}

func NewMemoryPermissionRepository(seed []Permission) *MemoryPermissionRepository {
	r := &MemoryPermissionRepository{}
	r.permissions = append(r.permissions, seed...)
	return r
}

func (r *MemoryPermissionRepository) Create(ctx context.Context, permission *Permission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.permissions = append(r.permissions, *permission)
	return nil
}

func (r *MemoryPermissionRepository) FindByName(ctx context.Context, name string) (*Permission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.permissions {
		if r.permissions[i].Name == name {
			p := r.permissions[i]
			return &p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *MemoryPermissionRepository) List(ctx context.Context) ([]Permission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Permission, len(r.permissions))
	copy(out, r.permissions)
	return out, nil
}
