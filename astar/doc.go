// Package astar implements a generic best-first shortest-path search
// (A*) over implicit graphs.
//
// The graph is never materialised: its vertices are values of a type
// implementing [Point], which knows its own neighbours, the uniform cost
// of a move, and a heuristic estimate of the remaining cost to a goal.
//
// [Search] runs a search to completion and returns the route.
// [Run] runs the same search with options and returns a [Result]
// that can be inspected afterwards.
//
// All search state is local to a call, so independent searches may run
// concurrently without coordination.
package astar
