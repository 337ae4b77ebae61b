package astar

import (
	"errors"

	"go.uber.org/zap"

	"github.com/pathkernel/astar/heap"
)

// ErrExpansionLimit is returned by [Run] when the bound set by
// [WithMaxExpanded] is reached before the goal is closed.
var ErrExpansionLimit = errors.New("astar: expansion limit reached")

// Search finds a minimum-cost route from start to goal. The route
// starts with start and ends with goal, and consecutive points are
// neighbours. If goal cannot be reached, Search returns nil; if start
// equals goal, the route holds start alone.
//
// Search does not return until the frontier is exhausted or goal is
// reached, so over an infinite graph an unreachable goal makes it run
// forever. Use [Run] with [WithMaxCost] or [WithMaxExpanded] to bound
// such searches.
func Search[P Point[P]](start, goal P) []P {
	r, _ := Run(start, goal)
	return r.Path()
}

// Run finds a minimum-cost route from start to goal and returns the
// final state of the search. The returned result is never nil, even
// when the error is non-nil.
//
// Run panics if start.MoveCost() is negative.
func Run[P Point[P]](start, goal P, opts ...Option) (*Result[P], error) {
	s := newSearcher(start, goal, newOptions(opts))
	err := s.run()
	s.logger.Debug("search finished",
		zap.Stringer("status", s.status),
		zap.Int("expanded", s.expanded),
		zap.Int("closed", len(s.closed)),
	)
	return &Result[P]{
		start:    start,
		goal:     goal,
		status:   s.status,
		expanded: s.expanded,
		closed:   s.closed,
	}, err
}

// searcher holds the state of a single search.
type searcher[P Point[P]] struct {
	options
	start    P
	goal     P
	moveCost float64

	// open holds the frontier. A point may appear more than once;
	// best keeps all but the cheapest copy out.
	open *heap.Heap[Node[P]]

	// best holds, for every point seen, the smallest F of any copy
	// pushed onto the frontier. An absent point has an infinite
	// best score.
	//
	// Comparing F rather than G is only sound because Heuristic
	// depends on the point and the goal alone: for a fixed point
	// the two orders agree. A heuristic depending on the path taken
	// would need this table keyed on G.
	best map[P]float64

	// closed holds the finalised node of every point that has been
	// expanded, and the goal once it is reached. A reopened point
	// keeps its old node until the cheaper copy is popped, so the
	// predecessor chains stay complete.
	closed map[P]Node[P]

	expanded int
	status   Status
}

func newSearcher[P Point[P]](start, goal P, o options) *searcher[P] {
	moveCost := start.MoveCost()
	if moveCost < 0 {
		panic("astar: negative move cost")
	}
	return &searcher[P]{
		options:  o,
		start:    start,
		goal:     goal,
		moveCost: moveCost,
		open:     heap.New(nil, Node[P].Compare),
		best:     make(map[P]float64),
		closed:   make(map[P]Node[P]),
		status:   Running,
	}
}

func (s *searcher[P]) run() error {
	s.open.Push(Node[P]{
		Point: s.start,
		F:     s.start.Heuristic(s.goal),
	})
	for s.open.Len() > 0 {
		n := s.open.Pop()
		if c, ok := s.closed[n.Point]; ok && !(s.reopen && n.G < c.G) {
			// A copy of this point at least as cheap has already
			// been closed.
			continue
		}
		if n.Point == s.goal {
			s.closed[n.Point] = n
			s.status = Succeeded
			return nil
		}
		if s.maxExpanded > 0 && s.expanded >= s.maxExpanded {
			s.status = Limited
			return ErrExpansionLimit
		}
		s.expand(n)
		s.closed[n.Point] = n
	}
	s.status = Exhausted
	return nil
}

// expand pushes every neighbour of n that can improve on what is
// already known about it.
func (s *searcher[P]) expand(n Node[P]) {
	s.expanded++
	if ce := s.logger.Check(zap.DebugLevel, "expand"); ce != nil {
		ce.Write(
			zap.Stringer("node", n),
			zap.Int("frontier", s.open.Len()),
		)
	}
	g := n.G + s.moveCost
	for m := range n.Point.Neighbors() {
		if c, ok := s.closed[m]; ok {
			if !s.reopen || g >= c.G {
				continue
			}
		}
		f := g + m.Heuristic(s.goal)
		if f > s.maxCost {
			continue
		}
		if best, ok := s.best[m]; ok && f >= best {
			continue
		}
		s.best[m] = f
		s.open.Push(Node[P]{
			Point:   m,
			Prev:    n.Point,
			HasPrev: true,
			G:       g,
			F:       f,
		})
	}
}
