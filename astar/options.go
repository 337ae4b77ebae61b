package astar

import (
	"math"

	"go.uber.org/zap"
)

// Option configures a search started by [Run].
type Option func(*options)

type options struct {
	maxExpanded int
	maxCost     float64
	reopen      bool
	logger      *zap.Logger
}

func newOptions(opts []Option) options {
	o := options{
		maxCost: math.Inf(1),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxExpanded bounds the number of points whose neighbours are
// expanded. When the bound is reached before the goal is closed, Run
// stops and returns [ErrExpansionLimit]. A bound of zero or less means
// no limit.
func WithMaxExpanded(n int) Option {
	return func(o *options) { o.maxExpanded = n }
}

// WithMaxCost stops candidates whose estimated total cost exceeds
// maxCost from ever entering the frontier. With an admissible
// heuristic no path cheaper than maxCost is lost, and a search over an
// infinite graph for an unreachable goal terminates.
func WithMaxCost(maxCost float64) Option {
	return func(o *options) { o.maxCost = maxCost }
}

// WithReopen allows a closed point to be reopened when a strictly
// cheaper path to it is found later. This is only needed when the
// heuristic is admissible but not consistent; with a consistent
// heuristic it never triggers.
func WithReopen() Option {
	return func(o *options) { o.reopen = true }
}

// WithLogger sets a logger that receives debug entries for every
// expansion and for the end of the search. A nil logger disables
// logging.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = zap.NewNop()
		}
		o.logger = logger
	}
}
