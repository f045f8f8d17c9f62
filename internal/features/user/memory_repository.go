package user

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// MemoryUserRepository is the mock-mode and test implementation.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []User
}

func NewMemoryUserRepository(seed []User) *MemoryUserRepository {
	r := &MemoryUserRepository{}
	r.users = append(r.users, seed...)
	return r
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, *user)
	return nil
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID.Hex() == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *MemoryUserRepository) List(ctx context.Context, page, limit int64, search string) ([]User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var hits []User
	s := strings.ToLower(search)
	for i := range r.users {
		u := &r.users[i]
		if s != "" &&
			!strings.Contains(strings.ToLower(u.Email), s) &&
			!strings.Contains(strings.ToLower(u.FirstName), s) &&
			!strings.Contains(strings.ToLower(u.LastName), s) {
			continue
		}
		hits = append(hits, *u)
	}

	total := int64(len(hits))
	start := (page - 1) * limit
	if start >= total {
		return []User{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return hits[start:end], total, nil
}

func (r *MemoryUserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID.Hex() == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *MemoryUserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID.Hex() == id {
			t := at
			r.users[i].LastLogin = &t
			return nil
		}
	}
	return mongo.ErrNoDocuments
}
