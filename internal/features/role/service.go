package role

import (
	"context"
	"errors"

	"go-dashboard/pkg/apperr"

	"go.mongodb.org/mongo-driver/mongo"
)

type RoleService interface {
	List(ctx context.Context) ([]Role, error)
	FindByName(ctx context.Context, name string) (*Role, error)
	PermissionsForRole(ctx context.Context, roleName string) ([]string, error)
	UpdatePermissions(ctx context.Context, id string, permissions []string) (*Role, error)
	Delete(ctx context.Context, id string) error
}

type RoleServiceImpl struct {
	RoleRepo RoleRepository
}

func NewRoleService(roleRepo RoleRepository) RoleService {
	return &RoleServiceImpl{RoleRepo: roleRepo}
}

func (s *RoleServiceImpl) List(ctx context.Context) ([]Role, error) {
	return s.RoleRepo.List(ctx)
}

func (s *RoleServiceImpl) FindByName(ctx context.Context, name string) (*Role, error) {
	r, err := s.RoleRepo.FindByName(ctx, name)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.New(apperr.NotFound, "role %q not found", name)
	}
	return r, err
}

// PermissionsForRole backs the RequirePermission middleware. An unknown role
// yields an empty set rather than an error, so a stale token whose role was
// deleted simply fails the permission check.
func (s *RoleServiceImpl) PermissionsForRole(ctx context.Context, roleName string) ([]string, error) {
	r, err := s.RoleRepo.FindByName(ctx, roleName)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.Permissions, nil
}

func (s *RoleServiceImpl) UpdatePermissions(ctx context.Context, id string, permissions []string) (*Role, error) {
	if permissions == nil {
		permissions = []string{}
	}
	err := s.RoleRepo.UpdatePermissions(ctx, id, permissions)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.New(apperr.NotFound, "role not found")
	}
	if err != nil {
		return nil, err
	}
	return s.RoleRepo.FindByID(ctx, id)
}

func (s *RoleServiceImpl) Delete(ctx context.Context, id string) error {
	r, err := s.RoleRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.New(apperr.NotFound, "role not found")
	}
	if err != nil {
		return err
	}
	if r.IsSystem {
		return apperr.New(apperr.Conflict, "system role %q cannot be deleted", r.Name)
	}
	return s.RoleRepo.Delete(ctx, id)
}
