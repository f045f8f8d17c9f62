package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-dashboard/internal/features/role"
	"go-dashboard/internal/features/user"
	"go-dashboard/pkg/apperr"
	"go-dashboard/pkg/utils"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*user.User, error)
	Login(ctx context.Context, email, password string) (string, *user.User, error)
}

type AuthServiceImpl struct {
	UserRepo user.UserRepository
	RoleRepo role.RoleRepository
	validate *validator.Validate
}

func NewAuthService(userRepo user.UserRepository, roleRepo role.RoleRepository) AuthService {
	return &AuthServiceImpl{
		UserRepo: userRepo,
		RoleRepo: roleRepo,
		validate: validator.New(),
	}
}

// Register creates an account with the default employee role. Privileged
// roles are only assignable through the user management endpoints.
func (s *AuthServiceImpl) Register(ctx context.Context, input RegisterInput) (*user.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.New(apperr.InvalidArgument, "invalid registration payload: %v", err)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := s.UserRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperr.New(apperr.Conflict, "user with this email already exists")
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, err
	}

	defaultRole, err := s.RoleRepo.FindByName(ctx, role.RoleEmployee)
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &user.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hash,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Role:      defaultRole.ID,
		RoleName:  defaultRole.Name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.UserRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	if email == "" || password == "" {
		return "", nil, apperr.New(apperr.InvalidArgument, "email and password are required")
	}

	u, err := s.UserRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil, apperr.New(apperr.Unauthenticated, "invalid credentials")
	}
	if err != nil {
		return "", nil, err
	}

	if !u.IsActive {
		return "", nil, apperr.New(apperr.Unauthenticated, "account is deactivated")
	}

	if !utils.CheckPassword(u.Password, password) {
		return "", nil, apperr.New(apperr.Unauthenticated, "invalid credentials")
	}

	r, err := s.RoleRepo.FindByID(ctx, u.Role.Hex())
	if err != nil {
		return "", nil, err
	}
	u.RoleName = r.Name

	// The token carries the role name; role changes apply on next login.
	token, err := utils.GenerateToken(u.ID, u.Email, r.Name)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	u.LastLogin = &now
	_ = s.UserRepo.UpdateLastLogin(ctx, u.ID.Hex(), now)

	return token, u, nil
}
