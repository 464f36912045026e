// Package grid models a rectangular, time-aware world for pathfinding:
// a fixed-size board of cells with static obstacles, a time-indexed
// schedule of dynamic obstacles, and per-cell terrain costs.
//
// What:
//
//   - Grid wraps Width×Height cells with tunable Connectivity (Conn4 or Conn8).
//   - IsObstacle answers occupancy for a cell at a given time step.
//   - Neighbors enumerates traversable adjacent cells in a fixed,
//     deterministic direction order.
//   - TerrainCost exposes the cost of entering a cell (+Inf for obstacles).
//   - Save/Load serialize a plain-text snapshot of the static layout.
//
// Why:
//
//   - Delivery routing: plan around parked (static) and moving (dynamic) traffic.
//   - Game maps: walkability queries with weighted terrain.
//   - Benchmarking: reproducible environments for search algorithms.
//
// Complexity:
//
//   - InBounds, IsObstacle, TerrainCost: O(1).
//   - Neighbors: O(d), d = 4 or 8.
//   - Save/Load: O(W×H).
//
// Concurrency:
//
//   - All mutators and readers synchronize on an internal RWMutex, so
//     obstacle edits may overlap concurrent read-only searches. A single
//     search call still observes one consistent snapshot only if no
//     mutation happens mid-search; interleaving edits with a running
//     search yields undefined results for that call.
//
// Policy:
//
//   - Mutators silently ignore out-of-bounds cells, negative time steps,
//     and non-positive terrain costs rather than returning an error.
//     Construction and snapshot parsing, by contrast, fail fast.
//
// Errors:
//
//   - ErrBadDimensions: width or height below 1.
//   - ErrBadConnectivity: connectivity value outside Conn4/Conn8.
//   - ErrMalformedSnapshot: snapshot text does not match the format.
//   - ErrBadCellCode: snapshot cell code outside the known set.
package grid
