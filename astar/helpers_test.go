package astar

import (
	"iter"
	"math/rand"
	"slices"

	"github.com/pathkernel/astar/grid"
)

func collect[P any](seq iter.Seq[P]) []P {
	return slices.Collect(seq)
}

// randomMap returns a w×h map in which each cell is a wall
// with the given probability.
func randomMap(r *rand.Rand, w, h int, density float64) *grid.Map {
	m := grid.NewMap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.Float64() < density {
				m.SetWall(grid.Pt(x, y), true)
			}
		}
	}
	return m
}

// randomOpen returns a random open point of m, making one
// open if there is none.
func randomOpen(r *rand.Rand, m *grid.Map) grid.Point {
	for i := 0; i < 1000; i++ {
		p := grid.Pt(r.Intn(m.Width()), r.Intn(m.Height()))
		if !m.Wall(p) {
			return p
		}
	}
	p := grid.Pt(0, 0)
	m.SetWall(p, false)
	return p
}

// bfs returns the number of moves from start to every cell
// reachable from it.
func bfs(start grid.Cell) map[grid.Cell]int {
	dist := map[grid.Cell]int{start: 0}
	queue := []grid.Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for n := range c.Neighbors() {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[c] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}
