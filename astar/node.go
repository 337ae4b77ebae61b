package astar

import (
	"cmp"
	"fmt"
)

// Node is a frontier entry: a point together with the point it was
// reached from and its accounting.
//
// The predecessor is held by value, so a chain of nodes is followed by
// map lookups rather than pointers.
type Node[P Point[P]] struct {
	Point P

	// Prev holds the predecessor of Point on the best path found.
	// It is only meaningful if HasPrev is true; the start node
	// has no predecessor.
	Prev    P
	HasPrev bool

	// G holds the cost of the path from the start to Point.
	G float64

	// F holds G plus the heuristic estimate from Point to the goal.
	F float64
}

// Compare orders nodes in the order they leave the frontier:
// by ascending F and, when F is equal, by descending Point, so that
// the greater point comes out first.
func (n Node[P]) Compare(m Node[P]) int {
	if c := cmp.Compare(n.F, m.F); c != 0 {
		return c
	}
	return m.Point.Compare(n.Point)
}

func (n Node[P]) String() string {
	if !n.HasPrev {
		return fmt.Sprintf("%v g=%v f=%v", n.Point, n.G, n.F)
	}
	return fmt.Sprintf("%v<-%v g=%v f=%v", n.Point, n.Prev, n.G, n.F)
}
