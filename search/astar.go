// Package search implements A* best-first search over a grid.Grid.
//
// AStar processes cells in order of increasing g+h using a min-heap
// frontier, relaxing neighbors and re-pushing on strict improvement
// (lazy decrease-key). With an admissible heuristic and non-negative
// terrain costs the returned path cost is optimal.
package search

import (
	"container/heap"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// estimator abstracts the remaining-cost estimate inside the engine, which
// never assumes which formula is active. The public surface stays an
// enumerated heuristic.Kind; UniformCost reuses the engine with a zero
// estimate.
type estimator func(a, b grid.Cell) float64

// AStar searches for a minimum-cost path from start to goal on g at the
// fixed time step currentTime.
//
// Returns:
//
//   - a Result with the path, its cost, the expansion count, and elapsed
//     wall-clock time. An unreachable goal is Success=false with an empty
//     path and +Inf cost — a normal outcome, not an error.
//   - an error only for invalid invocation (ErrNilGrid, ErrOptionViolation)
//     or an externally imposed bound (ErrCanceled, ErrExpansionBudget).
//
// Semantics:
//
//   - start == goal returns immediately: Path=[start], Cost=0, zero
//     expansions.
//   - A start or goal that is itself an obstacle at currentTime is valid
//     input that simply yields no path; endpoints are not pre-validated
//     beyond the grid's own bounds behavior.
//   - currentTime is fixed for the whole call; replanning against a moving
//     schedule is the caller's loop.
//   - Optimality requires the selected heuristic to be admissible for g's
//     connectivity model (see package heuristic); inadmissibility is not
//     detected and silently costs optimality.
//
// Options: WithHeuristic (default Manhattan), WithContext, WithMaxExpansions.
//
// Complexity: O(N log N) time, O(N) memory, N = cells discovered.
func AStar(g *grid.Grid, start, goal grid.Cell, currentTime int, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	return run(g, start, goal, currentTime, cfg, cfg.Heuristic.Estimate)
}

// run is the engine shared by AStar and UniformCost: best-first search
// ordered by gCost + estimate, with a lazy-decrease-key frontier and a
// closed-set skip for superseded entries.
func run(g *grid.Grid, start, goal grid.Cell, currentTime int, cfg Options, estimate estimator) (*Result, error) {
	began := time.Now()

	if start == goal {
		return &Result{
			Path:            []grid.Cell{start},
			Cost:            0,
			NodesExpanded:   0,
			ComputationTime: time.Since(began),
			Success:         true,
		}, nil
	}

	// Endpoint bounds are the only pre-validation; an in-bounds endpoint
	// that happens to be an obstacle still runs and simply finds no path.
	if !g.InBounds(start) || !g.InBounds(goal) {
		return &Result{
			Path:            nil,
			Cost:            math.Inf(1),
			NodesExpanded:   0,
			ComputationTime: time.Since(began),
			Success:         false,
		}, nil
	}

	// Arena node store plus frontier, both owned by this call only.
	store := newNodeStore(g.Width() * g.Height() / 4)
	open := make(frontier, 0, 64)
	heap.Init(&open)

	var seq uint64
	push := func(handle int32, fCost float64) {
		heap.Push(&open, &frontierItem{handle: handle, fCost: fCost, seq: seq})
		seq++
	}

	h0 := estimate(start, goal)
	push(store.insert(start, 0, h0, noParent), h0)

	closed := make(map[grid.Cell]struct{})
	expanded := 0

	for open.Len() > 0 {
		// Cooperative cancellation, once per pop.
		select {
		case <-cfg.Ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrCanceled, cfg.Ctx.Err())
		default:
		}
		if cfg.MaxExpansions > 0 && expanded >= cfg.MaxExpansions {
			return nil, fmt.Errorf("%w: limit %d", ErrExpansionBudget, cfg.MaxExpansions)
		}

		item := heap.Pop(&open).(*frontierItem)
		cur := store.at(item.handle)

		if cur.pos == goal {
			return &Result{
				Path:            store.path(item.handle),
				Cost:            cur.gCost,
				NodesExpanded:   expanded,
				ComputationTime: time.Since(began),
				Success:         true,
			}, nil
		}

		// Stale entry superseded by a cheaper re-push.
		if _, done := closed[cur.pos]; done {
			continue
		}
		closed[cur.pos] = struct{}{}
		expanded++

		for _, nb := range g.Neighbors(cur.pos, currentTime) {
			if _, done := closed[nb]; done {
				continue
			}
			tentative := cur.gCost + g.TerrainCost(nb)
			if handle, seen := store.lookup(nb); seen {
				if tentative < store.at(handle).gCost {
					store.improve(handle, tentative, item.handle)
					push(handle, tentative+store.at(handle).hCost)
				}
				continue
			}
			hCost := estimate(nb, goal)
			push(store.insert(nb, tentative, hCost, item.handle), tentative+hCost)
		}
	}

	// Frontier exhausted without reaching the goal.
	return &Result{
		Path:            nil,
		Cost:            math.Inf(1),
		NodesExpanded:   expanded,
		ComputationTime: time.Since(began),
		Success:         false,
	}, nil
}
