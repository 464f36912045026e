package grid

import (
	"math"
	"sort"
	"sync"
)

// defaultTerrainCost is the cost of entering a cell with no explicit terrain.
const defaultTerrainCost = 1.0

// Grid is a rectangular, time-aware world. Width and Height are fixed for
// the lifetime of the instance; obstacles, terrain costs, and the start/goal
// metadata are mutable under an internal RWMutex.
type Grid struct {
	mu sync.RWMutex

	width, height int
	conn          Connectivity
	offsets       [][2]int

	static  map[Cell]struct{}         // permanently impassable cells
	dynamic map[int]map[Cell]struct{} // time step -> occupied cells
	terrain map[Cell]float64          // explicit per-cell entry costs

	start, goal       Cell
	hasStart, hasGoal bool
}

// New constructs an empty Grid of the given dimensions.
// Returns ErrBadDimensions if width or height is below 1,
// ErrBadConnectivity if WithConnectivity supplied an unknown value.
// Complexity: O(1) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var offsets [][2]int
	switch cfg.Conn {
	case Conn4:
		offsets = conn4Offsets
	case Conn8:
		offsets = conn8Offsets
	default:
		return nil, ErrBadConnectivity
	}

	g := &Grid{
		width:   width,
		height:  height,
		conn:    cfg.Conn,
		offsets: offsets,
		static:  make(map[Cell]struct{}),
		dynamic: make(map[int]map[Cell]struct{}),
		terrain: make(map[Cell]float64),
	}

	return g, nil
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height.
func (g *Grid) Height() int { return g.height }

// Connectivity returns the neighbor connectivity model.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsObstacle reports whether c is impassable at time step t: out of bounds,
// a static obstacle, or occupied by a dynamic obstacle scheduled at t.
// A time step with no scheduled occupancy means no dynamic obstacle is
// active at that instant.
// Complexity: O(1).
func (g *Grid) IsObstacle(c Cell, t int) bool {
	if !g.InBounds(c) {
		return true
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.isObstacleLocked(c, t)
}

// isObstacleLocked is IsObstacle without bounds check or locking.
// Callers must hold g.mu (read or write) and guarantee c is in bounds.
func (g *Grid) isObstacleLocked(c Cell, t int) bool {
	if _, blocked := g.static[c]; blocked {
		return true
	}
	if occ, ok := g.dynamic[t]; ok {
		if _, blocked := occ[c]; blocked {
			return true
		}
	}

	return false
}

// Neighbors returns the in-bounds, non-obstacle cells adjacent to c at time
// step t, in the fixed direction order of the active connectivity model.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Neighbors(c Cell, t int) []Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Cell, 0, len(g.offsets))
	for _, d := range g.offsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !g.InBounds(n) || g.isObstacleLocked(n, t) {
			continue
		}
		out = append(out, n)
	}

	return out
}

// TerrainCost returns the cost of entering c: the stored terrain cost
// (default 1) for traversable cells, +Inf when c is out of bounds or a
// static obstacle. Dynamic occupancy is a time question answered by
// IsObstacle, not by terrain.
// Complexity: O(1).
func (g *Grid) TerrainCost(c Cell) float64 {
	if !g.InBounds(c) {
		return math.Inf(1)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, blocked := g.static[c]; blocked {
		return math.Inf(1)
	}
	if cost, ok := g.terrain[c]; ok {
		return cost
	}

	return defaultTerrainCost
}

// AddStaticObstacle marks c permanently impassable.
// Out-of-bounds cells are silently ignored.
func (g *Grid) AddStaticObstacle(c Cell) {
	if !g.InBounds(c) {
		return
	}
	g.mu.Lock()
	g.static[c] = struct{}{}
	g.mu.Unlock()
}

// RemoveStaticObstacle clears a static obstacle at c, if any.
// Out-of-bounds cells are silently ignored.
func (g *Grid) RemoveStaticObstacle(c Cell) {
	if !g.InBounds(c) {
		return
	}
	g.mu.Lock()
	delete(g.static, c)
	g.mu.Unlock()
}

// AddDynamicObstacle schedules a dynamic obstacle occupying c at time step t.
// Out-of-bounds cells and negative time steps are silently ignored.
func (g *Grid) AddDynamicObstacle(c Cell, t int) {
	if !g.InBounds(c) || t < 0 {
		return
	}
	g.mu.Lock()
	occ, ok := g.dynamic[t]
	if !ok {
		occ = make(map[Cell]struct{})
		g.dynamic[t] = occ
	}
	occ[c] = struct{}{}
	g.mu.Unlock()
}

// AddDynamicObstacles schedules a whole time->cells occupancy table,
// applying the same silent-ignore policy as AddDynamicObstacle per entry.
func (g *Grid) AddDynamicObstacles(schedule map[int][]Cell) {
	for t, cells := range schedule {
		for _, c := range cells {
			g.AddDynamicObstacle(c, t)
		}
	}
}

// SetTerrainCost assigns the cost of entering c. Out-of-bounds cells and
// non-positive or non-finite costs are silently ignored.
func (g *Grid) SetTerrainCost(c Cell, cost float64) {
	if !g.InBounds(c) || cost <= 0 || math.IsInf(cost, 0) || math.IsNaN(cost) {
		return
	}
	g.mu.Lock()
	g.terrain[c] = cost
	g.mu.Unlock()
}

// SetStartGoal records designated start and goal cells as grid metadata.
// Each coordinate is accepted independently; an out-of-bounds one is
// silently ignored. The search engine takes start/goal as arguments and
// does not consult this metadata.
func (g *Grid) SetStartGoal(start, goal Cell) {
	g.mu.Lock()
	if g.InBounds(start) {
		g.start, g.hasStart = start, true
	}
	if g.InBounds(goal) {
		g.goal, g.hasGoal = goal, true
	}
	g.mu.Unlock()
}

// Start returns the designated start cell and whether one is set.
func (g *Grid) Start() (Cell, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start, g.hasStart
}

// Goal returns the designated goal cell and whether one is set.
func (g *Grid) Goal() (Cell, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.goal, g.hasGoal
}

// DynamicAt returns a sorted copy of the cells occupied by dynamic
// obstacles at time step t. The copy is row-major ordered (y, then x) so
// output is deterministic.
// Complexity: O(k log k), k = occupied cells at t.
func (g *Grid) DynamicAt(t int) []Cell {
	g.mu.RLock()
	occ, ok := g.dynamic[t]
	if !ok {
		g.mu.RUnlock()
		return nil
	}
	out := make([]Cell, 0, len(occ))
	for c := range occ {
		out = append(out, c)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}

		return out[i].X < out[j].X
	})

	return out
}

// hasDynamicAnywhere reports whether c appears in any scheduled occupancy
// set. Used only by Save to emit the informational dynamic marker.
// Callers must hold g.mu.
func (g *Grid) hasDynamicAnywhere(c Cell) bool {
	for _, occ := range g.dynamic {
		if _, ok := occ[c]; ok {
			return true
		}
	}

	return false
}
