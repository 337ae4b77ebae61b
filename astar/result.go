package astar

import (
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"
)

// Status describes the state a search ended in.
type Status int

const (
	// Running is the state of a search that has not yet terminated.
	// A returned Result never holds it.
	Running Status = iota

	// Succeeded means the goal was closed.
	Succeeded

	// Exhausted means the frontier emptied without reaching the goal.
	Exhausted

	// Limited means the search stopped at the bound set by
	// WithMaxExpanded.
	Limited
)

var statusNames = [...]string{
	Running:   "running",
	Succeeded: "succeeded",
	Exhausted: "exhausted",
	Limited:   "limited",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Result holds the final state of a search: the closed points with
// their predecessor links, and some accounting.
//
// Reading a Result does not modify it, so paths may be reconstructed
// from it any number of times.
type Result[P Point[P]] struct {
	start    P
	goal     P
	status   Status
	expanded int
	closed   map[P]Node[P]
}

// Start returns the point the search started from.
func (r *Result[P]) Start() P { return r.start }

// Goal returns the point the search was looking for.
func (r *Result[P]) Goal() P { return r.goal }

// Status returns the state the search ended in.
func (r *Result[P]) Status() Status { return r.status }

// Found reports whether the goal was reached.
func (r *Result[P]) Found() bool { return r.status == Succeeded }

// Expanded returns the number of points whose neighbours were
// enumerated. The goal itself is never expanded.
func (r *Result[P]) Expanded() int { return r.expanded }

// Len returns the number of closed points.
func (r *Result[P]) Len() int { return len(r.closed) }

// Node returns the node that closed p.
func (r *Result[P]) Node(p P) (Node[P], bool) {
	n, ok := r.closed[p]
	return n, ok
}

// Closed returns all closed nodes in ascending order of their points.
func (r *Result[P]) Closed() iter.Seq2[P, Node[P]] {
	return func(yield func(P, Node[P]) bool) {
		points := slices.SortedFunc(maps.Keys(r.closed), func(a, b P) int {
			return a.Compare(b)
		})
		for _, p := range points {
			if !yield(p, r.closed[p]) {
				return
			}
		}
	}
}

// CostTo returns the cost of the path found to p,
// or +Inf if p was not closed.
func (r *Result[P]) CostTo(p P) float64 {
	n, ok := r.closed[p]
	if !ok {
		return math.Inf(1)
	}
	return n.G
}

// Cost returns the cost of the path to the goal,
// or +Inf if the goal was not reached.
func (r *Result[P]) Cost() float64 {
	return r.CostTo(r.goal)
}

// Path returns the route from the start to the goal,
// or nil if the goal was not reached.
func (r *Result[P]) Path() []P {
	return r.To(r.goal)
}

// To returns the route from the start to p by following predecessor
// links back from p. It returns nil if p was not closed.
//
// To panics if the predecessor links form a cycle, which can only
// happen when the Point implementation is malformed.
func (r *Result[P]) To(p P) []P {
	n, ok := r.closed[p]
	if !ok {
		return nil
	}
	path := []P{p}
	for steps := len(r.closed); n.HasPrev; steps-- {
		if steps <= 0 {
			panic("astar: cycle in predecessor links")
		}
		p = n.Prev
		path = append(path, p)
		if n, ok = r.closed[p]; !ok {
			// A predecessor is always closed before its successors
			// are pushed, so this cannot happen.
			panic(fmt.Sprintf("astar: predecessor %v not closed", p))
		}
	}
	slices.Reverse(path)
	return path
}
