package astar

import (
	"testing"

	"github.com/go-quicktest/qt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pathkernel/astar/grid"
)

func TestWithMaxExpanded(t *testing.T) {
	r, err := Run(grid.Pt(0, 0), grid.Pt(64, 64), WithMaxExpanded(10))
	qt.Assert(t, qt.ErrorIs(err, ErrExpansionLimit))
	qt.Assert(t, qt.IsNotNil(r))
	qt.Assert(t, qt.Equals(r.Status(), Limited))
	qt.Assert(t, qt.Equals(r.Expanded(), 10))
	qt.Assert(t, qt.Equals(r.Len(), 10))
	qt.Assert(t, qt.IsNil(r.Path()))
}

func TestWithMaxExpandedNotReached(t *testing.T) {
	r, err := Run(grid.Pt(0, 0), grid.Pt(3, 2), WithMaxExpanded(1000))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(r.Status(), Succeeded))
	qt.Assert(t, qt.HasLen(r.Path(), 6))
}

func TestWithMaxExpandedStartIsGoal(t *testing.T) {
	// Closing the goal is not an expansion, so even the tightest
	// bound does not stop a search that starts at the goal.
	r, err := Run(grid.Pt(1, 1), grid.Pt(1, 1), WithMaxExpanded(1))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(r.Found()))
}

func TestWithMaxCostBoundsInfiniteGraph(t *testing.T) {
	// -1 is not reachable along the ray, so without a bound the
	// search would never end.
	r, err := Run(ray(0), ray(-1), WithMaxCost(10))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(r.Status(), Exhausted))
	qt.Assert(t, qt.Equals(r.Len(), 11))
	qt.Assert(t, qt.Equals(r.Expanded(), 11))
	qt.Assert(t, qt.Equals(r.CostTo(10), 10.0))
	_, ok := r.Node(11)
	qt.Assert(t, qt.IsFalse(ok))
}

func TestWithMaxCostKeepsCheaperPaths(t *testing.T) {
	r, err := Run(grid.Pt(0, 0), grid.Pt(3, 2), WithMaxCost(5))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(r.Path(), 6))

	r, err = Run(grid.Pt(0, 0), grid.Pt(3, 2), WithMaxCost(4))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(r.Status(), Exhausted))
	qt.Assert(t, qt.IsNil(r.Path()))
}

// inconsistentGraph has an admissible but inconsistent heuristic:
// h(A) = 4 while its successor C has h(C) = 0. C is therefore
// closed via the longer route through X and Y before A is popped.
//
//	S -> A -> C -> T1 -> T2 -> T
//	S -> X -> Y -^
func inconsistentGraph() *testGraph {
	return &testGraph{
		edges: map[string][]string{
			"S":  {"A", "X"},
			"A":  {"C"},
			"X":  {"Y"},
			"Y":  {"C"},
			"C":  {"T1"},
			"T1": {"T2"},
			"T2": {"T"},
		},
		h: map[string]float64{"A": 4},
	}
}

func TestInconsistentHeuristicWithoutReopen(t *testing.T) {
	g := inconsistentGraph()
	r, err := Run(g.v("S"), g.v("T"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(names(r.Path()), []string{"S", "X", "Y", "C", "T1", "T2", "T"}))
	qt.Assert(t, qt.Equals(r.Cost(), 6.0))
	qt.Assert(t, qt.Equals(r.Expanded(), 7))
}

func TestWithReopen(t *testing.T) {
	g := inconsistentGraph()
	r, err := Run(g.v("S"), g.v("T"), WithReopen())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(names(r.Path()), []string{"S", "A", "C", "T1", "T2", "T"}))
	qt.Assert(t, qt.Equals(r.Cost(), 5.0))
	c, _ := r.Node(g.v("C"))
	qt.Assert(t, qt.Equals(c.Prev.name, "A"))
	qt.Assert(t, qt.Equals(c.G, 2.0))
}

func TestWithReopenConsistentUnchanged(t *testing.T) {
	r0, _ := Run(grid.Pt(0, 0), grid.Pt(9, -4))
	r1, _ := Run(grid.Pt(0, 0), grid.Pt(9, -4), WithReopen())
	qt.Assert(t, qt.DeepEquals(r1.Path(), r0.Path()))
	qt.Assert(t, qt.Equals(r1.Expanded(), r0.Expanded()))
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r, err := Run(grid.Pt(0, 0), grid.Pt(1, 0), WithLogger(zap.New(core)))
	qt.Assert(t, qt.IsNil(err))

	expand := logs.FilterMessage("expand").All()
	qt.Assert(t, qt.HasLen(expand, r.Expanded()))
	qt.Assert(t, qt.Equals(expand[0].ContextMap()["node"], "(0,0) g=0 f=1"))
	qt.Assert(t, qt.Equals(expand[0].ContextMap()["frontier"], int64(0)))

	finished := logs.FilterMessage("search finished").All()
	qt.Assert(t, qt.HasLen(finished, 1))
	qt.Assert(t, qt.DeepEquals(finished[0].ContextMap(), map[string]any{
		"status":   "succeeded",
		"expanded": int64(1),
		"closed":   int64(2),
	}))
}

func TestWithLoggerInfoLevelSilent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	_, err := Run(grid.Pt(0, 0), grid.Pt(5, 5), WithLogger(zap.New(core)))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(logs.Len(), 0))
}

func TestWithLoggerNil(t *testing.T) {
	r, err := Run(grid.Pt(0, 0), grid.Pt(2, 2), WithLogger(nil))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(r.Path(), 5))
}
