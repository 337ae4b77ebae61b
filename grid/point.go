// Package grid provides searchable points on an integer grid
// with four-directional moves and a Manhattan-distance heuristic.
//
// [Point] covers the unbounded plane. [Map] restricts moves to a
// bounded grid with walls; its [Cell] values are searchable too.
package grid

import (
	"cmp"
	"fmt"
	"iter"
)

// Point is a location on the unbounded integer plane.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{x, y}
}

// Compare orders points by X, then by Y.
func (p Point) Compare(q Point) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, q.Y)
}

// MoveCost returns 1: every move costs the same.
func (Point) MoveCost() float64 {
	return 1
}

// Neighbors yields the four points one step away, in the order
// up, down, right, left (taking Y as increasing upwards).
// Diagonal moves are not allowed.
func (p Point) Neighbors() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		_ = yield(Point{p.X, p.Y + 1}) &&
			yield(Point{p.X, p.Y - 1}) &&
			yield(Point{p.X + 1, p.Y}) &&
			yield(Point{p.X - 1, p.Y})
	}
}

// Heuristic returns the Manhattan distance from p to goal, which is
// the exact cost of the route when nothing is in the way.
func (p Point) Heuristic(goal Point) float64 {
	return float64(absDiff(p.X, goal.X) + absDiff(p.Y, goal.Y))
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
