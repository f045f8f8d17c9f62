package permission

import (
	"context"
	"errors"
	"time"

	"go-dashboard/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PermissionService interface {
	List(ctx context.Context) ([]Permission, error)
	Create(ctx context.Context, name, description string) (*Permission, error)
}

type PermissionServiceImpl struct {
	PermissionRepo PermissionRepository
}

func NewPermissionService(permissionRepo PermissionRepository) PermissionService {
	return &PermissionServiceImpl{PermissionRepo: permissionRepo}
}

func (s *PermissionServiceImpl) List(ctx context.Context) ([]Permission, error) {
	return s.PermissionRepo.List(ctx)
}

func (s *PermissionServiceImpl) Create(ctx context.Context, name, description string) (*Permission, error) {
	if name == "" {
		return nil, apperr.New(apperr.InvalidArgument, "permission name is required")
	}

	_, err := s.PermissionRepo.FindByName(ctx, name)
	switch {
	case err == nil:
		return nil, apperr.New(apperr.Conflict, "permission %q already exists", name)
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, err
	}

	now := time.Now()
	p := &Permission{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.PermissionRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
