package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-dashboard/internal/features/role"
	"go-dashboard/pkg/apperr"
	"go-dashboard/pkg/utils"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateUserInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Role      string `json:"role" validate:"required"`
	IsActive  *bool  `json:"isActive"`
}

type UserService interface {
	List(ctx context.Context, page, limit int64, search string) ([]User, int64, error)
	Create(ctx context.Context, input CreateUserInput) (*User, error)
	Delete(ctx context.Context, id, actorID string) error
	Me(ctx context.Context, id string) (*User, error)
}

type UserServiceImpl struct {
	UserRepo UserRepository
	RoleRepo role.RoleRepository
	validate *validator.Validate
}

func NewUserService(userRepo UserRepository, roleRepo role.RoleRepository) UserService {
	return &UserServiceImpl{
		UserRepo: userRepo,
		RoleRepo: roleRepo,
		validate: validator.New(),
	}
}

func (s *UserServiceImpl) List(ctx context.Context, page, limit int64, search string) ([]User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := s.UserRepo.List(ctx, page, limit, search)
	if err != nil {
		return nil, 0, err
	}

	// Populate role names; one lookup per distinct role id.
	names := map[primitive.ObjectID]string{}
	for i := range users {
		id := users[i].Role
		if name, ok := names[id]; ok {
			users[i].RoleName = name
			continue
		}
		if r, err := s.RoleRepo.FindByID(ctx, id.Hex()); err == nil {
			names[id] = r.Name
			users[i].RoleName = r.Name
		}
	}
	return users, total, nil
}

func (s *UserServiceImpl) Create(ctx context.Context, input CreateUserInput) (*User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.New(apperr.InvalidArgument, "invalid user payload: %v", err)
	}
	if !role.IsValidRole(input.Role) {
		return nil, apperr.New(apperr.InvalidArgument, "unknown role %q", input.Role)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := s.UserRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperr.New(apperr.Conflict, "user with this email already exists")
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, err
	}

	r, err := s.RoleRepo.FindByName(ctx, input.Role)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.New(apperr.InvalidArgument, "role %q is not provisioned", input.Role)
	}
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	now := time.Now()
	u := &User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hash,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Role:      r.ID,
		RoleName:  r.Name,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.UserRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return apperr.New(apperr.InvalidArgument, "cannot delete your own account")
	}

	err := s.UserRepo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.New(apperr.NotFound, "user not found")
	}
	return err
}

func (s *UserServiceImpl) Me(ctx context.Context, id string) (*User, error) {
	u, err := s.UserRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.New(apperr.NotFound, "user no longer exists")
	}
	if err != nil {
		return nil, err
	}

	if r, err := s.RoleRepo.FindByID(ctx, u.Role.Hex()); err == nil {
		u.RoleName = r.Name
	}
	return u, nil
}
