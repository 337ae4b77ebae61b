package astar

import "iter"

// Point is implemented by values that can be searched.
//
// A Point must behave as a pure value: the kernel calls its methods an
// unbounded number of times and assumes the same inputs always give the
// same outputs.
//
// The path found is the shortest one only if Heuristic is admissible
// (it never overestimates the true remaining cost) and consistent (for
// every neighbour m of n, n.Heuristic(goal) <= MoveCost() +
// m.Heuristic(goal)). A heuristic that breaks either property yields a
// valid but possibly longer path. Use [WithReopen] if consistency
// cannot be guaranteed.
type Point[P any] interface {
	comparable

	// Compare returns a negative number, zero or a positive number
	// when the receiver is less than, equal to or greater than other.
	// It must be a total order consistent with ==.
	Compare(other P) int

	// MoveCost returns the cost of a single move. It must be
	// non-negative and the same for every point of the graph.
	MoveCost() float64

	// Neighbors returns all points reachable in one move.
	// The sequence must be finite; it may be empty.
	Neighbors() iter.Seq[P]

	// Heuristic returns a non-negative estimate of the cost of
	// reaching goal. It must depend only on the receiver and goal,
	// never on how the receiver was reached.
	Heuristic(goal P) float64
}
