// Package search defines shared result types, tunable options, and
// sentinel errors for the search subpackage of
// github.com/katalvlaran/gridpath.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrCanceled is returned when the supplied context is canceled
	// before the search terminates.
	ErrCanceled = errors.New("search: canceled")

	// ErrExpansionBudget is returned when WithMaxExpansions' budget is
	// exhausted before the search terminates.
	ErrExpansionBudget = errors.New("search: expansion budget exhausted")
)

// Result is the outcome of one search call. It is a plain value: the
// engine retains nothing after returning it.
type Result struct {
	// Path is the ordered cell sequence from start to goal inclusive.
	// Empty when the goal is unreachable.
	Path []grid.Cell

	// Cost is the total path cost, +Inf when the goal is unreachable.
	Cost float64

	// NodesExpanded counts cells whose cost was finalized during the call.
	// A start==goal call performs zero expansions.
	NodesExpanded int

	// ComputationTime is the wall-clock duration of the call.
	ComputationTime time.Duration

	// Success reports whether a path was found.
	Success bool
}

// Options holds parameters to customize a search call.
type Options struct {
	// Ctx allows cooperative cancellation, checked once per frontier pop.
	Ctx context.Context

	// Heuristic selects the estimator used by AStar.
	// BFS and UniformCost ignore it.
	Heuristic heuristic.Kind

	// MaxExpansions, if > 0, aborts the search with ErrExpansionBudget
	// once that many nodes have been expanded. 0 disables the budget.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option configures search behavior via functional arguments. If an Option
// is invalid (e.g. negative budget), it is recorded internally and surfaced
// as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - Manhattan heuristic
//   - no expansion budget.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Heuristic:     heuristic.Manhattan,
		MaxExpansions: 0,
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic selects the estimator AStar consults. An unknown Kind is
// surfaced as ErrOptionViolation at call time.
func WithHeuristic(k heuristic.Kind) Option {
	return func(o *Options) {
		if !k.Valid() {
			o.err = fmt.Errorf("%w: heuristic %v", ErrOptionViolation, k)
			return
		}
		o.Heuristic = k
	}
}

// WithMaxExpansions bounds the number of node expansions. A negative value
// is surfaced as ErrOptionViolation at call time; 0 disables the budget.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions %d", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// buildOptions applies opts over defaults and validates the result.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}

	return cfg, nil
}
