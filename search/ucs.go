package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// UniformCost searches for a minimum-cost path from start to goal on g at
// the fixed time step currentTime, ordering the frontier by accumulated
// terrain cost alone. It is AStar with a zero estimate: always optimal for
// non-negative costs, with no admissibility contract to uphold, at the
// price of expanding more nodes. WithHeuristic is ignored.
//
// Result and error semantics match AStar. UniformCost is also the
// independent optimality reference the A* tests compare against.
//
// Complexity: O(N log N) time, O(N) memory, N = cells discovered.
func UniformCost(g *grid.Grid, start, goal grid.Cell, currentTime int, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	return run(g, start, goal, currentTime, cfg, func(grid.Cell, grid.Cell) float64 { return 0 })
}
