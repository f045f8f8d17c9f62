package auth

import (
	"context"
	"testing"
	"time"

	"go-dashboard/internal/features/role"
	"go-dashboard/internal/features/user"
	"go-dashboard/pkg/apperr"
	"go-dashboard/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestService() (AuthService, *user.MemoryUserRepository) {
	userRepo := user.NewMemoryUserRepository(nil)
	roleRepo := role.NewMemoryRoleRepository(role.FixtureRoles())
	return NewAuthService(userRepo, roleRepo), userRepo
}

func mustRegister(t *testing.T, svc AuthService, input RegisterInput) *user.User {
	t.Helper()
	u, err := svc.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("Register(%s) error = %v", input.Email, err)
	}
	return u
}

func TestRegisterAssignsEmployeeRole(t *testing.T) {
	svc, _ := newTestService()

	u := mustRegister(t, svc, RegisterInput{
		Email:     "New.Hire@Example.com",
		Password:  "secret123",
		FirstName: "New",
		LastName:  "Hire",
	})

	if u.RoleName != role.RoleEmployee {
		t.Errorf("RoleName = %q, want %q", u.RoleName, role.RoleEmployee)
	}
	if u.Email != "new.hire@example.com" {
		t.Errorf("Email = %q, want lowercased", u.Email)
	}
	if !u.IsActive {
		t.Error("new account should be active")
	}
	if u.Password == "secret123" {
		t.Error("password stored in plain text")
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	mustRegister(t, svc, RegisterInput{
		Email: "dup@example.com", Password: "secret123",
		FirstName: "First", LastName: "One",
	})

	// Same address, different casing.
	_, err := svc.Register(ctx, RegisterInput{
		Email: "Dup@Example.com", Password: "another1",
		FirstName: "Second", LastName: "Two",
	})
	if apperr.KindOf(err) != apperr.Conflict {
		t.Errorf("duplicate email: kind = %v, want Conflict", apperr.KindOf(err))
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"missing email", RegisterInput{Password: "secret123", FirstName: "A", LastName: "B"}},
		{"bad email", RegisterInput{Email: "not-an-email", Password: "secret123", FirstName: "A", LastName: "B"}},
		{"short password", RegisterInput{Email: "a@example.com", Password: "abc", FirstName: "A", LastName: "B"}},
		{"missing first name", RegisterInput{Email: "a@example.com", Password: "secret123", LastName: "B"}},
		{"missing last name", RegisterInput{Email: "a@example.com", Password: "secret123", FirstName: "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.input)
			if apperr.KindOf(err) != apperr.InvalidArgument {
				t.Errorf("kind = %v, want InvalidArgument (err=%v)", apperr.KindOf(err), err)
			}
		})
	}
}

func TestLoginIssuesTokenAndStampsLastLogin(t *testing.T) {
	svc, userRepo := newTestService()
	ctx := context.Background()

	u := mustRegister(t, svc, RegisterInput{
		Email: "login@example.com", Password: "secret123",
		FirstName: "Log", LastName: "In",
	})

	token, logged, err := svc.Login(ctx, "Login@Example.com", "secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != u.ID.Hex() || claims.Role != role.RoleEmployee {
		t.Errorf("claims = {%s %s}, want {%s %s}", claims.UserID, claims.Role, u.ID.Hex(), role.RoleEmployee)
	}
	if logged.LastLogin == nil {
		t.Error("LastLogin not stamped on returned user")
	}

	stored, err := userRepo.FindByID(ctx, u.ID.Hex())
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if stored.LastLogin == nil {
		t.Error("LastLogin not persisted")
	}
}

func TestLoginRejections(t *testing.T) {
	svc, userRepo := newTestService()
	ctx := context.Background()

	mustRegister(t, svc, RegisterInput{
		Email: "active@example.com", Password: "secret123",
		FirstName: "Act", LastName: "Ive",
	})

	hash, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	now := time.Now()
	if err := userRepo.Create(ctx, &user.User{
		ID:        primitive.NewObjectID(),
		Email:     "disabled@example.com",
		Password:  hash,
		FirstName: "Dis",
		LastName:  "Abled",
		IsActive:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		want     apperr.Kind
	}{
		{"unknown email", "nobody@example.com", "secret123", apperr.Unauthenticated},
		{"wrong password", "active@example.com", "wrongpass", apperr.Unauthenticated},
		{"deactivated account", "disabled@example.com", "secret123", apperr.Unauthenticated},
		{"empty credentials", "", "", apperr.InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tt.email, tt.password)
			if apperr.KindOf(err) != tt.want {
				t.Errorf("kind = %v, want %v (err=%v)", apperr.KindOf(err), tt.want, err)
			}
		})
	}
}
