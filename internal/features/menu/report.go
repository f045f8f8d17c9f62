package menu

import (
	"context"
	"sort"
)

type MenuStat struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type ReportSummary struct {
	TotalMenus    int `json:"totalMenus"`
	ActiveMenus   int `json:"activeMenus"`
	InactiveMenus int `json:"inactiveMenus"`
	ParentMenus   int `json:"parentMenus"`
	ChildMenus    int `json:"childMenus"`
}

type Report struct {
	Summary      ReportSummary       `json:"summary"`
	RoleStats    map[string]MenuStat `json:"roleStats"`
	DepthStats   map[int]int         `json:"depthStats"`
	MonthlyStats map[string]MenuStat `json:"monthlyStats"`
	RecentMenus  []Menu              `json:"recentMenus"`
}

// Report aggregates menu statistics for the admin reports page.
func (s *MenuServiceImpl) Report(ctx context.Context) (*Report, error) {
	menus, err := s.MenuRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RoleStats:    map[string]MenuStat{},
		DepthStats:   map[int]int{},
		MonthlyStats: map[string]MenuStat{},
	}

	byID := make(map[string]*Menu, len(menus))
	for i := range menus {
		byID[menus[i].ID.Hex()] = &menus[i]
	}
	// Depth 1 is a root. A missing parent or a cycle terminates the walk, the
	// same way the tree builder promotes such nodes.
	depthOf := func(m *Menu) int {
		depth := 1
		seen := map[string]bool{m.ID.Hex(): true}
		for cur := m; cur.Parent != nil; {
			parent, ok := byID[cur.Parent.Hex()]
			if !ok || seen[parent.ID.Hex()] {
				break
			}
			seen[parent.ID.Hex()] = true
			depth++
			cur = parent
		}
		return depth
	}

	bump := func(stat MenuStat, active bool) MenuStat {
		stat.Total++
		if active {
			stat.Active++
		} else {
			stat.Inactive++
		}
		return stat
	}

	for i := range menus {
		m := &menus[i]
		report.Summary.TotalMenus++
		if m.IsActive {
			report.Summary.ActiveMenus++
		} else {
			report.Summary.InactiveMenus++
		}
		if m.Parent == nil {
			report.Summary.ParentMenus++
		} else {
			report.Summary.ChildMenus++
		}
		report.DepthStats[depthOf(m)]++

		for _, r := range m.Roles {
			report.RoleStats[r] = bump(report.RoleStats[r], m.IsActive)
		}

		month := m.CreatedAt.Format("2006-01")
		report.MonthlyStats[month] = bump(report.MonthlyStats[month], m.IsActive)
	}

	recent := make([]Menu, len(menus))
	copy(recent, menus)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}
	report.RecentMenus = recent

	return report, nil
}
