package menu

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-dashboard/internal/features/role"
	"go-dashboard/pkg/apperr"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateMenuInput struct {
	Name     string   `json:"name" validate:"required"`
	Path     string   `json:"path" validate:"required"`
	Icon     string   `json:"icon"`
	Roles    []string `json:"roles" validate:"required,min=1"`
	Parent   string   `json:"parent"`
	Order    float64  `json:"order"`
	IsActive *bool    `json:"isActive"`
}

// UpdateMenuInput patches individual fields; nil pointers leave the stored
// value untouched. An explicit empty Parent clears the link.
type UpdateMenuInput struct {
	Name     *string  `json:"name"`
	Path     *string  `json:"path"`
	Icon     *string  `json:"icon"`
	Roles    []string `json:"roles"`
	Parent   *string  `json:"parent"`
	Order    *float64 `json:"order"`
	IsActive *bool    `json:"isActive"`
}

type MenuService interface {
	TreeForRole(ctx context.Context, roleName string) ([]*Node, error)
	List(ctx context.Context) ([]Menu, error)
	Create(ctx context.Context, input CreateMenuInput) (*Menu, error)
	Update(ctx context.Context, id string, input UpdateMenuInput) (*Menu, error)
	Delete(ctx context.Context, id string) error
	Report(ctx context.Context) (*Report, error)
}

type MenuServiceImpl struct {
	MenuRepo MenuRepository
	validate *validator.Validate
}

func NewMenuService(menuRepo MenuRepository) MenuService {
	return &MenuServiceImpl{
		MenuRepo: menuRepo,
		validate: validator.New(),
	}
}

// TreeForRole loads every record and builds the tree in memory. The dataset
// is small (dozens of rows); filtering happens in BuildTree so role and
// active filtering follow one code path for every store implementation.
func (s *MenuServiceImpl) TreeForRole(ctx context.Context, roleName string) ([]*Node, error) {
	records, err := s.MenuRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTree(records, roleName), nil
}

func (s *MenuServiceImpl) List(ctx context.Context) ([]Menu, error) {
	return s.MenuRepo.List(ctx)
}

func (s *MenuServiceImpl) Create(ctx context.Context, input CreateMenuInput) (*Menu, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.New(apperr.InvalidArgument, "invalid menu payload: %v", err)
	}
	if err := validateRoles(input.Roles); err != nil {
		return nil, err
	}

	path := strings.TrimSpace(input.Path)
	if !strings.HasPrefix(path, "/") {
		return nil, apperr.New(apperr.InvalidArgument, "path must start with /")
	}

	if err := s.checkPathFree(ctx, path, ""); err != nil {
		return nil, err
	}

	var parent *primitive.ObjectID
	if input.Parent != "" {
		p, err := s.resolveParent(ctx, input.Parent, "")
		if err != nil {
			return nil, err
		}
		parent = p
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	now := time.Now()
	m := &Menu{
		ID:        primitive.NewObjectID(),
		Name:      strings.TrimSpace(input.Name),
		Path:      path,
		Icon:      strings.TrimSpace(input.Icon),
		Roles:     input.Roles,
		Parent:    parent,
		Order:     input.Order,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.MenuRepo.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuServiceImpl) Update(ctx context.Context, id string, input UpdateMenuInput) (*Menu, error) {
	current, err := s.MenuRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.New(apperr.NotFound, "menu not found")
	}
	if err != nil {
		return nil, err
	}

	updated := *current

	if input.Name != nil {
		updated.Name = strings.TrimSpace(*input.Name)
	}
	if input.Icon != nil {
		updated.Icon = strings.TrimSpace(*input.Icon)
	}
	if input.Order != nil {
		updated.Order = *input.Order
	}
	if input.IsActive != nil {
		updated.IsActive = *input.IsActive
	}

	if input.Roles != nil {
		if err := validateRoles(input.Roles); err != nil {
			return nil, err
		}
		updated.Roles = input.Roles
	}

	if input.Path != nil {
		path := strings.TrimSpace(*input.Path)
		if !strings.HasPrefix(path, "/") {
			return nil, apperr.New(apperr.InvalidArgument, "path must start with /")
		}
		if err := s.checkPathFree(ctx, path, id); err != nil {
			return nil, err
		}
		updated.Path = path
	}

	if input.Parent != nil {
		if *input.Parent == "" {
			updated.Parent = nil
		} else {
			if *input.Parent == id {
				return nil, apperr.New(apperr.InvalidArgument, "menu cannot be its own parent")
			}
			p, err := s.resolveParent(ctx, *input.Parent, id)
			if err != nil {
				return nil, err
			}
			updated.Parent = p
		}
	}

	updated.UpdatedAt = time.Now()
	if err := s.MenuRepo.Update(ctx, id, &updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "menu not found")
		}
		return nil, err
	}
	return &updated, nil
}

func (s *MenuServiceImpl) Delete(ctx context.Context, id string) error {
	_, err := s.MenuRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.New(apperr.NotFound, "menu not found")
	}
	if err != nil {
		return err
	}

	children, err := s.MenuRepo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return apperr.New(apperr.Conflict, "cannot delete menu with child items")
	}

	err = s.MenuRepo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.New(apperr.NotFound, "menu not found")
	}
	return err
}

func validateRoles(roles []string) error {
	if len(roles) == 0 {
		return apperr.New(apperr.InvalidArgument, "at least one role is required")
	}
	for _, r := range roles {
		if !role.IsValidRole(r) {
			return apperr.New(apperr.InvalidArgument, "unknown role %q", r)
		}
	}
	return nil
}

// checkPathFree enforces path uniqueness among active records, excluding the
// record being updated.
func (s *MenuServiceImpl) checkPathFree(ctx context.Context, path, selfID string) error {
	existing, err := s.MenuRepo.FindActiveByPath(ctx, path)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil
	case err != nil:
		return err
	case existing.ID.Hex() == selfID:
		return nil
	default:
		return apperr.New(apperr.Conflict, "menu with this path already exists")
	}
}

// resolveParent validates that the proposed parent exists and that hanging
// selfID under it keeps parent links acyclic: the ancestor chain from the
// parent must never reach selfID (or revisit any node, which would mean the
// stored data already contains a cycle upstream).
func (s *MenuServiceImpl) resolveParent(ctx context.Context, parentID, selfID string) (*primitive.ObjectID, error) {
	p, err := s.MenuRepo.FindByID(ctx, parentID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.New(apperr.InvalidArgument, "parent menu not found")
	}
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	cur := p
	for {
		curID := cur.ID.Hex()
		if curID == selfID {
			return nil, apperr.New(apperr.InvalidArgument, "parent assignment would create a cycle")
		}
		if seen[curID] {
			return nil, apperr.New(apperr.InvalidArgument, "parent chain already contains a cycle")
		}
		seen[curID] = true

		if cur.Parent == nil {
			break
		}
		next, err := s.MenuRepo.FindByID(ctx, cur.Parent.Hex())
		if errors.Is(err, mongo.ErrNoDocuments) {
			// dangling ancestor: the builder treats it as a root
			break
		}
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return &p.ID, nil
}
