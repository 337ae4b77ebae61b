// Package gonumgraph makes the nodes of a gonum graph searchable
// by package astar.
//
// The search uses a uniform move cost, so edge weights of weighted
// graphs are ignored.
package gonumgraph

import (
	"cmp"
	"iter"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
)

// Graph wraps a gonum graph together with the heuristic and move cost
// used when searching it.
type Graph struct {
	g        graph.Graph
	h        path.Heuristic
	moveCost float64
}

// Option configures a Graph.
type Option func(*Graph)

// WithMoveCost sets the cost of every move. The default is 1.
func WithMoveCost(c float64) Option {
	return func(g *Graph) { g.moveCost = c }
}

// New returns a Graph searching g with the heuristic h.
// If h is nil, [path.NullHeuristic] is used, which turns the search
// into a uniform-cost one.
func New(g graph.Graph, h path.Heuristic, opts ...Option) *Graph {
	if h == nil {
		h = path.NullHeuristic
	}
	wg := &Graph{
		g:        g,
		h:        h,
		moveCost: 1,
	}
	for _, opt := range opts {
		opt(wg)
	}
	return wg
}

// Node returns the searchable node with the given ID. The node need
// not be present in the underlying graph; if it is not, it has no
// neighbours.
func (g *Graph) Node(id int64) Node {
	return Node{g: g, id: id}
}

// Node is a node of a Graph. It implements [graph.Node] as well as
// the methods required by astar.Point.
type Node struct {
	g  *Graph
	id int64
}

// ID implements graph.Node.
func (n Node) ID() int64 { return n.id }

// Compare orders nodes by ID.
func (n Node) Compare(m Node) int { return cmp.Compare(n.id, m.id) }

// MoveCost returns the move cost of the node's graph.
func (n Node) MoveCost() float64 { return n.g.moveCost }

// Neighbors yields the nodes reachable from n along a single edge.
func (n Node) Neighbors() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		it := n.g.g.From(n.id)
		for it.Next() {
			if !yield(Node{g: n.g, id: it.Node().ID()}) {
				return
			}
		}
	}
}

// Heuristic calls the graph's heuristic with the underlying gonum
// nodes, so heuristics that rely on the concrete node type still work.
func (n Node) Heuristic(goal Node) float64 {
	return n.g.h(n.g.gonumNode(n), n.g.gonumNode(goal))
}

func (g *Graph) gonumNode(n Node) graph.Node {
	if gn := g.g.Node(n.id); gn != nil {
		return gn
	}
	return n
}

// IDs returns the IDs of nodes, in order.
func IDs(nodes []Node) []int64 {
	if nodes == nil {
		return nil
	}
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.id
	}
	return ids
}
