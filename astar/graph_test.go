package astar

import (
	"cmp"
	"iter"
	"slices"
)

// testGraph is a small directed graph with a fixed heuristic table,
// used to drive the search into situations an open grid never
// produces.
type testGraph struct {
	edges map[string][]string
	h     map[string]float64
}

// vertex is a searchable vertex of a testGraph. The heuristic table
// describes distances to a single goal, so Heuristic ignores its
// argument.
type vertex struct {
	g    *testGraph
	name string
}

func (g *testGraph) v(name string) vertex {
	return vertex{g: g, name: name}
}

func (v vertex) Compare(w vertex) int { return cmp.Compare(v.name, w.name) }

func (vertex) MoveCost() float64 { return 1 }

func (v vertex) Neighbors() iter.Seq[vertex] {
	return func(yield func(vertex) bool) {
		for _, name := range v.g.edges[v.name] {
			if !yield(vertex{g: v.g, name: name}) {
				return
			}
		}
	}
}

func (v vertex) Heuristic(vertex) float64 { return v.g.h[v.name] }

func (v vertex) String() string { return v.name }

func names(vs []vertex) []string {
	if vs == nil {
		return nil
	}
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = v.name
	}
	return s
}

// ray is the infinite graph 0 -> 1 -> 2 -> ... with no heuristic
// guidance.
type ray int

func (r ray) Compare(s ray) int { return cmp.Compare(r, s) }
func (ray) MoveCost() float64 { return 1 }
func (ray) Heuristic(ray) float64 { return 0 }
func (r ray) Neighbors() iter.Seq[ray] {
	return slices.Values([]ray{r + 1})
}

// costly is a point whose move cost is negative.
type costly int

func (c costly) Compare(d costly) int { return cmp.Compare(c, d) }
func (costly) MoveCost() float64 { return -1 }
func (costly) Heuristic(costly) float64 { return 0 }
func (costly) Neighbors() iter.Seq[costly] { return func(func(costly) bool) {} }
