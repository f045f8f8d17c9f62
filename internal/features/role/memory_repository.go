package role

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// MemoryRoleRepository is the mock-mode and test implementation.
type MemoryRoleRepository struct {
	mu    sync.RWMutex
	roles []Role
}

func NewMemoryRoleRepository(seed []Role) *MemoryRoleRepository {
	r := &MemoryRoleRepository{}
	r.roles = append(r.roles, seed...)
	return r
}

func (r *MemoryRoleRepository) Create(ctx context.Context, role *Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.roles = append(r.roles, *role)
	return nil
}

func (r *MemoryRoleRepository) FindByID(ctx context.Context, id string) (*Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.roles {
		if r.roles[i].ID.Hex() == id {
			role := r.roles[i]
			return &role, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *MemoryRoleRepository) FindByName(ctx context.Context, name string) (*Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.roles {
		if r.roles[i].Name == name {
			role := r.roles[i]
			return &role, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *MemoryRoleRepository) List(ctx context.Context) ([]Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Role, len(r.roles))
	copy(out, r.roles)
	return out, nil
}

func (r *MemoryRoleRepository) UpdatePermissions(ctx context.Context, id string, permissions []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.roles {
		if r.roles[i].ID.Hex() == id {
			r.roles[i].Permissions = permissions
			r.roles[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *MemoryRoleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.roles {
		if r.roles[i].ID.Hex() == id {
			r.roles = append(r.roles[:i], r.roles[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}
