package menu

import (
	"context"
	"testing"

	"go-dashboard/pkg/apperr"
)

func newTestService() (*MenuServiceImpl, *MemoryMenuRepository) {
	repo := NewMemoryMenuRepository(nil)
	svc := NewMenuService(repo).(*MenuServiceImpl)
	return svc, repo
}

func mustCreate(t *testing.T, svc MenuService, input CreateMenuInput) *Menu {
	t.Helper()
	m, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create(%s) error = %v", input.Path, err)
	}
	return m
}

func TestCreateDuplicatePathConflict(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	mustCreate(t, svc, CreateMenuInput{Name: "Dashboard", Path: "/dashboard", Roles: []string{"admin"}})

	_, err := svc.Create(ctx, CreateMenuInput{Name: "Dash 2", Path: "/dashboard", Roles: []string{"hr"}})
	if apperr.KindOf(err) != apperr.Conflict {
		t.Errorf("duplicate path: kind = %v, want Conflict", apperr.KindOf(err))
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateMenuInput
	}{
		{"empty roles", CreateMenuInput{Name: "X", Path: "/x"}},
		{"unknown role", CreateMenuInput{Name: "X", Path: "/x", Roles: []string{"superuser"}}},
		{"path without slash", CreateMenuInput{Name: "X", Path: "x", Roles: []string{"admin"}}},
		{"missing name", CreateMenuInput{Path: "/x", Roles: []string{"admin"}}},
		{"ghost parent", CreateMenuInput{Name: "X", Path: "/x", Roles: []string{"admin"}, Parent: "64a1b1234567890123456789"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			if apperr.KindOf(err) != apperr.InvalidArgument {
				t.Errorf("kind = %v, want InvalidArgument (err=%v)", apperr.KindOf(err), err)
			}
		})
	}
}

func TestCreateAllowsReusingInactivePath(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	inactive := false
	mustCreate(t, svc, CreateMenuInput{Name: "Old", Path: "/settings", Roles: []string{"admin"}, IsActive: &inactive})

	if _, err := svc.Create(ctx, CreateMenuInput{Name: "New", Path: "/settings", Roles: []string{"admin"}}); err != nil {
		t.Errorf("path held only by an inactive record should be reusable, got %v", err)
	}
}

func TestUpdateSelfParentRejected(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	m := mustCreate(t, svc, CreateMenuInput{Name: "X", Path: "/x", Roles: []string{"admin"}})

	self := m.ID.Hex()
	_, err := svc.Update(ctx, self, UpdateMenuInput{Parent: &self})
	if apperr.KindOf(err) != apperr.InvalidArgument {
		t.Errorf("self-parent: kind = %v, want InvalidArgument", apperr.KindOf(err))
	}
}

func TestUpdateCycleRejected(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a := mustCreate(t, svc, CreateMenuInput{Name: "A", Path: "/a", Roles: []string{"admin"}})
	b := mustCreate(t, svc, CreateMenuInput{Name: "B", Path: "/b", Roles: []string{"admin"}, Parent: a.ID.Hex()})
	c := mustCreate(t, svc, CreateMenuInput{Name: "C", Path: "/c", Roles: []string{"admin"}, Parent: b.ID.Hex()})

	// a -> b -> c exists; re-parenting a under c would close the loop.
	cid := c.ID.Hex()
	_, err := svc.Update(ctx, a.ID.Hex(), UpdateMenuInput{Parent: &cid})
	if apperr.KindOf(err) != apperr.InvalidArgument {
		t.Errorf("cycle: kind = %v, want InvalidArgument", apperr.KindOf(err))
	}
}

func TestUpdateUnknownIDNotFound(t *testing.T) {
	svc, _ := newTestService()

	name := "X"
	_, err := svc.Update(context.Background(), "64a1b1234567890123456789", UpdateMenuInput{Name: &name})
	if apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("kind = %v, want NotFound", apperr.KindOf(err))
	}
}

func TestUpdatePathUniquenessExcludesSelf(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	m := mustCreate(t, svc, CreateMenuInput{Name: "X", Path: "/x", Roles: []string{"admin"}})
	mustCreate(t, svc, CreateMenuInput{Name: "Y", Path: "/y", Roles: []string{"admin"}})

	// Re-submitting the record's own path is not a conflict.
	own := "/x"
	if _, err := svc.Update(ctx, m.ID.Hex(), UpdateMenuInput{Path: &own}); err != nil {
		t.Errorf("own path resubmission: %v", err)
	}

	taken := "/y"
	_, err := svc.Update(ctx, m.ID.Hex(), UpdateMenuInput{Path: &taken})
	if apperr.KindOf(err) != apperr.Conflict {
		t.Errorf("taken path: kind = %v, want Conflict", apperr.KindOf(err))
	}
}

func TestDeleteBlockedByChildren(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	parent := mustCreate(t, svc, CreateMenuInput{Name: "Parent", Path: "/p", Roles: []string{"admin"}})
	child := mustCreate(t, svc, CreateMenuInput{Name: "Child", Path: "/p/c", Roles: []string{"admin"}, Parent: parent.ID.Hex()})

	err := svc.Delete(ctx, parent.ID.Hex())
	if apperr.KindOf(err) != apperr.Conflict {
		t.Fatalf("delete with child: kind = %v, want Conflict", apperr.KindOf(err))
	}

	if err := svc.Delete(ctx, child.ID.Hex()); err != nil {
		t.Fatalf("delete child: %v", err)
	}
	if err := svc.Delete(ctx, parent.ID.Hex()); err != nil {
		t.Errorf("delete parent after child removal: %v", err)
	}
}

func TestDeleteUnknownIDNotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Delete(context.Background(), "64a1b1234567890123456789")
	if apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("kind = %v, want NotFound", apperr.KindOf(err))
	}
}

func TestTreeForRoleUsesFixtures(t *testing.T) {
	repo := NewMemoryMenuRepository(FixtureMenus())
	svc := NewMenuService(repo)

	tree, err := svc.TreeForRole(context.Background(), "manager")
	if err != nil {
		t.Fatalf("TreeForRole: %v", err)
	}

	byName := map[string]*Node{}
	for _, n := range tree {
		byName[n.Name] = n
	}

	if _, ok := byName["Admin Panel"]; ok {
		t.Error("manager sees admin-only entry")
	}
	reports, ok := byName["Reports"]
	if !ok {
		t.Fatal("manager missing Reports entry")
	}
	if len(reports.Children) != 1 || reports.Children[0].Name != "Menu Reports" {
		t.Errorf("Reports children = %v", names(reports.Children))
	}
}
