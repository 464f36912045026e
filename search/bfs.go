package search

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// bfsItem pairs a cell with the handle of its node in the store's arena.
type bfsItem struct {
	pos    grid.Cell
	handle int32
}

// BFS searches layer by layer from start to goal on g at the fixed time
// step currentTime, counting every step as unit cost. Terrain weights and
// WithHeuristic are ignored (documented: on a weighted grid BFS minimizes
// step count, not cost — use UniformCost or AStar for weighted optima).
// On all-unit-cost grids its result cost matches AStar and UniformCost.
//
// Result and error semantics match AStar: unreachable is Success=false
// with +Inf cost, WithContext and WithMaxExpansions abort with an error.
//
// Complexity: O(N) time and memory, N = cells discovered.
func BFS(g *grid.Grid, start, goal grid.Cell, currentTime int, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
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
	if !g.InBounds(start) || !g.InBounds(goal) {
		return &Result{
			Path:            nil,
			Cost:            math.Inf(1),
			NodesExpanded:   0,
			ComputationTime: time.Since(began),
			Success:         false,
		}, nil
	}

	store := newNodeStore(g.Width() * g.Height() / 4)
	queue := []bfsItem{{pos: start, handle: store.insert(start, 0, 0, noParent)}}
	expanded := 0

	for len(queue) > 0 {
		select {
		case <-cfg.Ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrCanceled, cfg.Ctx.Err())
		default:
		}
		if cfg.MaxExpansions > 0 && expanded >= cfg.MaxExpansions {
			return nil, fmt.Errorf("%w: limit %d", ErrExpansionBudget, cfg.MaxExpansions)
		}

		item := queue[0]
		queue = queue[1:]
		expanded++

		for _, nb := range g.Neighbors(item.pos, currentTime) {
			if _, seen := store.lookup(nb); seen {
				continue
			}
			depth := store.at(item.handle).gCost + 1
			handle := store.insert(nb, depth, 0, item.handle)
			if nb == goal {
				return &Result{
					Path:            store.path(handle),
					Cost:            depth,
					NodesExpanded:   expanded,
					ComputationTime: time.Since(began),
					Success:         true,
				}, nil
			}
			queue = append(queue, bfsItem{pos: nb, handle: handle})
		}
	}

	return &Result{
		Path:            nil,
		Cost:            math.Inf(1),
		NodesExpanded:   expanded,
		ComputationTime: time.Since(began),
		Success:         false,
	}, nil
}
