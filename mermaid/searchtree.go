package mermaid

import (
	"fmt"
	"strconv"

	"github.com/pathkernel/astar/astar"
)

// Styles used by SearchTree.
const (
	PathStyle = "fill:#cfc,stroke:#393"
	GoalStyle = "fill:#9c9,stroke:#393,stroke-width:3px"
)

// SearchTree returns the tree formed by the predecessor links of the
// closed nodes of r. An edge leads from each node to the nodes that
// were reached from it. Nodes are written in ascending point order and
// labelled with the point and its cost; nodes on the path to the goal
// are styled with PathStyle, and the goal with GoalStyle.
func SearchTree[P astar.Point[P]](r *astar.Result[P]) Graph[P] {
	t := &searchTree[P]{
		nodes:    make(map[P]astar.Node[P]),
		ids:      make(map[P]string),
		children: make(map[P][]P),
		onPath:   make(map[P]bool),
	}
	for p, n := range r.Closed() {
		t.ids[p] = "n" + strconv.Itoa(len(t.order))
		t.order = append(t.order, p)
		t.nodes[p] = n
		if n.HasPrev {
			t.children[n.Prev] = append(t.children[n.Prev], p)
		}
	}
	for _, p := range r.Path() {
		t.onPath[p] = true
	}
	if r.Found() {
		t.goal, t.found = r.Goal(), true
	}
	return t
}

type searchTree[P astar.Point[P]] struct {
	order    []P
	nodes    map[P]astar.Node[P]
	ids      map[P]string
	children map[P][]P
	onPath   map[P]bool
	goal     P
	found    bool
}

func (t *searchTree[P]) AllNodes() []P {
	return t.order
}

func (t *searchTree[P]) Successors(p P) []P {
	return t.children[p]
}

func (t *searchTree[P]) NodeInfo(p P) NodeInfo {
	info := NodeInfo{
		ID:   t.ids[p],
		Text: fmt.Sprintf("%v g=%v", p, t.nodes[p].G),
	}
	switch {
	case t.found && p == t.goal:
		info.Style = GoalStyle
	case t.onPath[p]:
		info.Style = PathStyle
	}
	return info
}
