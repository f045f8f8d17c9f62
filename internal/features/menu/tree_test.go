package menu

import (
	"reflect"
	"slices"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func menuWith(name, path string, roles []string, parent *primitive.ObjectID, order float64, active bool) Menu {
	return Menu{
		ID:       primitive.NewObjectID(),
		Name:     name,
		Path:     path,
		Roles:    roles,
		Parent:   parent,
		Order:    order,
		IsActive: active,
	}
}

func names(level []*Node) []string {
	out := make([]string, len(level))
	for i, n := range level {
		out[i] = n.Name
	}
	return out
}

func TestBuildTreeFiltersByRoleAndActive(t *testing.T) {
	records := []Menu{
		menuWith("Dashboard", "/dashboard", []string{"admin", "hr"}, nil, 1, true),
		menuWith("Admin Panel", "/dashboard/admin", []string{"admin"}, nil, 2, true),
		menuWith("Retired", "/dashboard/retired", []string{"hr"}, nil, 3, false),
	}

	tree := BuildTree(records, "hr")

	if got := names(tree); !reflect.DeepEqual(got, []string{"Dashboard"}) {
		t.Fatalf("roots = %v, want [Dashboard]", got)
	}
	for _, n := range tree {
		if !n.IsActive {
			t.Errorf("inactive node %q in output", n.Name)
		}
		if !slices.Contains(n.Roles, "hr") {
			t.Errorf("node %q does not carry role hr", n.Name)
		}
	}
}

func TestBuildTreeNesting(t *testing.T) {
	reports := menuWith("Reports", "/reports", []string{"admin"}, nil, 2, true)
	menuReports := menuWith("Menu Reports", "/reports/menus", []string{"admin"}, &reports.ID, 1, true)
	orderReports := menuWith("Order Reports", "/reports/orders", []string{"admin"}, &reports.ID, 0.5, true)
	dashboard := menuWith("Dashboard", "/dashboard", []string{"admin"}, nil, 1, true)

	tree := BuildTree([]Menu{reports, menuReports, orderReports, dashboard}, "admin")

	if got := names(tree); !reflect.DeepEqual(got, []string{"Dashboard", "Reports"}) {
		t.Fatalf("roots = %v, want [Dashboard Reports]", got)
	}
	children := tree[1].Children
	if got := names(children); !reflect.DeepEqual(got, []string{"Order Reports", "Menu Reports"}) {
		t.Fatalf("children = %v, want [Order Reports Menu Reports]", got)
	}
	if len(tree[0].Children) != 0 {
		t.Errorf("Dashboard children = %d, want 0", len(tree[0].Children))
	}
}

// A child whose parent is filtered out by role falls back to root; parent
// linkage is presentation, not access control.
func TestBuildTreeParentFilteredOutByRole(t *testing.T) {
	adminOnly := menuWith("Admin Area", "/admin", []string{"admin"}, nil, 1, true)
	hrChild := menuWith("HR Tools", "/admin/hr", []string{"hr"}, &adminOnly.ID, 1, true)

	tree := BuildTree([]Menu{adminOnly, hrChild}, "hr")

	if got := names(tree); !reflect.DeepEqual(got, []string{"HR Tools"}) {
		t.Fatalf("roots = %v, want [HR Tools]", got)
	}
	if len(tree[0].Children) != 0 {
		t.Errorf("HR Tools children = %d, want 0", len(tree[0].Children))
	}
}

func TestBuildTreeMissingParentTreatedAsRoot(t *testing.T) {
	ghost := primitive.NewObjectID()
	orphan := menuWith("Orphan", "/orphan", []string{"admin"}, &ghost, 1, true)

	tree := BuildTree([]Menu{orphan}, "admin")

	if got := names(tree); !reflect.DeepEqual(got, []string{"Orphan"}) {
		t.Fatalf("roots = %v, want [Orphan]", got)
	}
}

func TestBuildTreeSiblingOrderStable(t *testing.T) {
	records := []Menu{
		menuWith("Third", "/c", []string{"admin"}, nil, 5, true),
		menuWith("First", "/a", []string{"admin"}, nil, 1, true),
		menuWith("TieA", "/tie-a", []string{"admin"}, nil, 3, true),
		menuWith("TieB", "/tie-b", []string{"admin"}, nil, 3, true),
	}

	tree := BuildTree(records, "admin")

	want := []string{"First", "TieA", "TieB", "Third"}
	if got := names(tree); !reflect.DeepEqual(got, want) {
		t.Fatalf("roots = %v, want %v", got, want)
	}

	// Order is non-decreasing left to right.
	for i := 1; i < len(tree); i++ {
		if tree[i].Order < tree[i-1].Order {
			t.Errorf("order decreases at position %d", i)
		}
	}
}

func TestBuildTreeIdempotent(t *testing.T) {
	parent := menuWith("Parent", "/p", []string{"admin"}, nil, 1, true)
	child := menuWith("Child", "/p/c", []string{"admin"}, &parent.ID, 1, true)
	records := []Menu{parent, child}

	first := BuildTree(records, "admin")
	second := BuildTree(records, "admin")

	if !reflect.DeepEqual(first, second) {
		t.Error("two builds over the same input differ")
	}
}

func TestBuildTreeEmptyInput(t *testing.T) {
	tree := BuildTree(nil, "admin")
	if tree == nil || len(tree) != 0 {
		t.Fatalf("BuildTree(nil) = %v, want empty non-nil slice", tree)
	}
}

// A two-node cycle written behind the API's back must not drop either node:
// one link is cut and the remaining chain hangs off a promoted root.
func TestBuildTreeCycleNodesKept(t *testing.T) {
	a := menuWith("A", "/a", []string{"admin"}, nil, 1, true)
	b := menuWith("B", "/b", []string{"admin"}, nil, 2, true)
	a.Parent = &b.ID
	b.Parent = &a.ID

	tree := BuildTree([]Menu{a, b}, "admin")

	seen := map[string]bool{}
	var walk func(level []*Node)
	walk = func(level []*Node) {
		for _, n := range level {
			if seen[n.Name] {
				t.Fatalf("node %q appears twice", n.Name)
			}
			seen[n.Name] = true
			walk(n.Children)
		}
	}
	walk(tree)

	if !seen["A"] || !seen["B"] {
		t.Errorf("cycle members dropped from tree: seen=%v", seen)
	}
}

func TestBuildTreeDeepNesting(t *testing.T) {
	level0 := menuWith("L0", "/0", []string{"admin"}, nil, 1, true)
	level1 := menuWith("L1", "/1", []string{"admin"}, &level0.ID, 1, true)
	level2 := menuWith("L2", "/2", []string{"admin"}, &level1.ID, 1, true)
	level3 := menuWith("L3", "/3", []string{"admin"}, &level2.ID, 1, true)

	// Shuffled input: attachment must not depend on record order.
	tree := BuildTree([]Menu{level2, level0, level3, level1}, "admin")

	if len(tree) != 1 {
		t.Fatalf("roots = %d, want 1", len(tree))
	}
	cur := tree[0]
	for _, want := range []string{"L0", "L1", "L2", "L3"} {
		if cur.Name != want {
			t.Fatalf("chain node = %q, want %q", cur.Name, want)
		}
		if len(cur.Children) == 0 {
			break
		}
		cur = cur.Children[0]
	}
}
