package menu

import (
	"slices"
	"sort"
)

// BuildTree assembles the navigation tree a single role sees.
//
// Filtering happens on the full active set before any hierarchy work, so a
// child whose parent is invisible to the role still appears, as a root. A
// parent id that resolves to nothing (deleted, or filtered out) falls back
// to root the same way; neither case is an error.
//
// Write-time validation keeps parent links acyclic, but data written behind
// the API's back could still contain a cycle. Rather than silently dropping
// cycle members (no root would ever reach them), one link per cycle is cut
// and the node it pointed from becomes a root, keeping every visible record
// in the output.
func BuildTree(records []Menu, roleName string) []*Node {
	visible := make([]Menu, 0, len(records))
	for _, m := range records {
		if m.IsActive && slices.Contains(m.Roles, roleName) {
			visible = append(visible, m)
		}
	}

	nodes := make(map[string]*Node, len(visible))
	for _, m := range visible {
		nodes[m.ID.Hex()] = newNode(m)
	}

	// Parent links that resolve within the visible set. Self-links are
	// rejected at write time; skipping them here keeps the walk total.
	parents := make(map[string]string, len(visible))
	for _, m := range visible {
		if m.Parent == nil {
			continue
		}
		pid := m.Parent.Hex()
		if pid == m.ID.Hex() {
			continue
		}
		if _, ok := nodes[pid]; ok {
			parents[m.ID.Hex()] = pid
		}
	}

	attach := resolveAttachments(visible, parents)

	roots := []*Node{}
	for _, m := range visible {
		id := m.ID.Hex()
		if pid, ok := attach[id]; ok {
			nodes[pid].Children = append(nodes[pid].Children, nodes[id])
		} else {
			roots = append(roots, nodes[id])
		}
	}

	sortLevel(roots)
	return roots
}

// resolveAttachments decides, per node, whether it attaches to its parent or
// becomes a root. A depth-first walk colors nodes grey while their ancestor
// chain is being resolved; meeting a grey ancestor means the link closes a
// cycle, and that one link is cut.
func resolveAttachments(visible []Menu, parents map[string]string) map[string]string {
	const (
		white = iota
		grey
		black
	)
	color := make(map[string]int, len(visible))
	attach := make(map[string]string, len(parents))

	var visit func(id string)
	visit = func(id string) {
		color[id] = grey
		if pid, ok := parents[id]; ok {
			switch color[pid] {
			case grey:
				// cycle: this node becomes a root
			case white:
				visit(pid)
				attach[id] = pid
			default:
				attach[id] = pid
			}
		}
		color[id] = black
	}

	for _, m := range visible {
		if color[m.ID.Hex()] == white {
			visit(m.ID.Hex())
		}
	}
	return attach
}

// sortLevel orders siblings by their sort key, ties broken by encounter
// order in the input (stable), recursively for every level.
func sortLevel(level []*Node) {
	sort.SliceStable(level, func(i, j int) bool {
		return level[i].Order < level[j].Order
	})
	for _, n := range level {
		sortLevel(n.Children)
	}
}
