// Package search implements shortest-path search over a grid.Grid at a
// fixed time step: A* with a pluggable admissible heuristic, plus
// breadth-first and uniform-cost references sharing the same Result
// boundary.
//
// What:
//
//   - AStar: best-first search ordered by g+h, optimal whenever the
//     selected heuristic never overestimates and terrain costs are
//     non-negative.
//   - UniformCost: Dijkstra over terrain costs (A* with a zero estimate).
//   - BFS: layer-by-layer search counting unit steps, ignoring terrain
//     weights.
//
// Each call is a self-contained, sequential computation: it owns its node
// bookkeeping, reads the grid through Neighbors/TerrainCost at the supplied
// time step, and returns a Result carrying the path, its cost, the number
// of node expansions, and wall-clock elapsed time. An unreachable goal is a
// normal outcome (Success=false, empty path, +Inf cost), not an error.
//
// Determinism:
//
//   - The frontier orders by total estimated cost with ties broken by push
//     sequence (FIFO), and the grid enumerates neighbors in a fixed
//     direction order, so identical inputs reproduce identical expansion
//     order, paths, and costs.
//
// Replanning:
//
//   - The time step is fixed for a whole call. Simulating an agent moving
//     through a dynamic environment is a caller-level loop: advance the
//     clock, re-invoke search.
//
// Bounding:
//
//   - The base contract has no timeout. WithContext (checked once per
//     frontier pop) and WithMaxExpansions bound a call externally; both
//     abort with an error rather than a partial Result.
//
// Complexity:
//
//   - Time:  O((W×H) log (W×H)) with lazy decrease-key re-pushes.
//   - Space: O(W×H) for the node arena, index, and frontier.
//
// Errors:
//
//   - ErrNilGrid: nil *grid.Grid.
//   - ErrOptionViolation: invalid option value (unknown heuristic kind,
//     negative expansion budget).
//   - ErrCanceled: the supplied context was canceled mid-search.
//   - ErrExpansionBudget: the expansion budget ran out before termination.
package search
