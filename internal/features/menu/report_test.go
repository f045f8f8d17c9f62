package menu

import (
	"context"
	"testing"
)

func TestReportDepthDistribution(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	root := mustCreate(t, svc, CreateMenuInput{Name: "Root", Path: "/root", Roles: []string{"admin"}})
	other := mustCreate(t, svc, CreateMenuInput{Name: "Other", Path: "/other", Roles: []string{"admin"}})
	child := mustCreate(t, svc, CreateMenuInput{Name: "Child", Path: "/root/child", Roles: []string{"admin"}, Parent: root.ID.Hex()})
	mustCreate(t, svc, CreateMenuInput{Name: "Leaf", Path: "/root/child/leaf", Roles: []string{"admin"}, Parent: child.ID.Hex()})
	_ = other

	report, err := svc.Report(ctx)
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	want := map[int]int{1: 2, 2: 1, 3: 1}
	if len(report.DepthStats) != len(want) {
		t.Fatalf("DepthStats = %v, want %v", report.DepthStats, want)
	}
	for depth, count := range want {
		if report.DepthStats[depth] != count {
			t.Errorf("DepthStats[%d] = %d, want %d", depth, report.DepthStats[depth], count)
		}
	}

	if report.Summary.ParentMenus != 2 || report.Summary.ChildMenus != 2 {
		t.Errorf("parents/children = %d/%d, want 2/2", report.Summary.ParentMenus, report.Summary.ChildMenus)
	}
}

func TestReportDepthMissingParentCountsAsRoot(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	root := mustCreate(t, svc, CreateMenuInput{Name: "Root", Path: "/root", Roles: []string{"admin"}})
	child := mustCreate(t, svc, CreateMenuInput{Name: "Child", Path: "/root/child", Roles: []string{"admin"}, Parent: root.ID.Hex()})

	// Drop the parent record out from under the child.
	if err := repo.Delete(ctx, root.ID.Hex()); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	_ = child

	report, err := svc.Report(ctx)
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if report.DepthStats[1] != 1 || len(report.DepthStats) != 1 {
		t.Errorf("DepthStats = %v, want map[1:1]", report.DepthStats)
	}
}
