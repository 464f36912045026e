package grid_test

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Construction and InBounds
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions and
// unknown connectivity values.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		opts []grid.Option
		err  error
	}{
		{"ZeroWidth", 0, 5, nil, grid.ErrBadDimensions},
		{"ZeroHeight", 5, 0, nil, grid.ErrBadDimensions},
		{"NegativeWidth", -3, 5, nil, grid.ErrBadDimensions},
		{"BadConnectivity", 5, 5, []grid.Option{grid.WithConnectivity(grid.Connectivity(7))}, grid.ErrBadConnectivity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.w, tc.h, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.w, tc.h, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []grid.Cell{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%s)=false; want true", c)
		}
	}
	invalid := []grid.Cell{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%s)=true; want false", c)
		}
	}
}

//----------------------------------------------------------------------------//
// Obstacle occupancy
//----------------------------------------------------------------------------//

// TestIsObstacle_Static covers out-of-bounds and static obstacle cells.
func TestIsObstacle_Static(t *testing.T) {
	g, err := grid.New(4, 4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	g.AddStaticObstacle(grid.Cell{X: 1, Y: 1})

	if !g.IsObstacle(grid.Cell{X: -1, Y: 0}, 0) {
		t.Error("out-of-bounds cell must be an obstacle")
	}
	if !g.IsObstacle(grid.Cell{X: 1, Y: 1}, 0) {
		t.Error("static obstacle not reported")
	}
	if g.IsObstacle(grid.Cell{X: 2, Y: 2}, 0) {
		t.Error("free cell reported as obstacle")
	}

	g.RemoveStaticObstacle(grid.Cell{X: 1, Y: 1})
	if g.IsObstacle(grid.Cell{X: 1, Y: 1}, 0) {
		t.Error("removed static obstacle still reported")
	}
}

// TestIsObstacle_Dynamic verifies time-indexed occupancy: a cell blocked at
// one time step is free at every other, and a time step with no schedule
// entry means no dynamic obstacle is active.
func TestIsObstacle_Dynamic(t *testing.T) {
	g, err := grid.New(4, 4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	blocked := grid.Cell{X: 2, Y: 0}
	g.AddDynamicObstacle(blocked, 5)

	if !g.IsObstacle(blocked, 5) {
		t.Errorf("IsObstacle(%s, 5)=false; want true", blocked)
	}
	for _, tm := range []int{0, 4, 6, 100} {
		if g.IsObstacle(blocked, tm) {
			t.Errorf("IsObstacle(%s, %d)=true; want false", blocked, tm)
		}
	}
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

// TestNeighbors_Conn4Order asserts the fixed N, E, S, W enumeration order
// and the filtering of obstacle and out-of-bounds cells.
func TestNeighbors_Conn4Order(t *testing.T) {
	g, err := grid.New(3, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	center := grid.Cell{X: 1, Y: 1}
	want := []grid.Cell{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}}
	got := g.Neighbors(center, 0)
	if len(got) != len(want) {
		t.Fatalf("Neighbors(%s) = %v; want %v", center, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors(%s)[%d] = %s; want %s", center, i, got[i], want[i])
		}
	}

	// Corner cell: only E and S survive the bounds filter.
	corner := grid.Cell{X: 0, Y: 0}
	want = []grid.Cell{{X: 1, Y: 0}, {X: 0, Y: 1}}
	got = g.Neighbors(corner, 0)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Neighbors(%s) = %v; want %v", corner, got, want)
	}

	// Obstacles leave the enumeration, both static and dynamic at t.
	g.AddStaticObstacle(grid.Cell{X: 2, Y: 1})
	g.AddDynamicObstacle(grid.Cell{X: 1, Y: 0}, 3)
	got = g.Neighbors(center, 3)
	want = []grid.Cell{{X: 1, Y: 2}, {X: 0, Y: 1}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Neighbors(%s, t=3) = %v; want %v", center, got, want)
	}
}

// TestNeighbors_Conn8 checks the diagonal enumeration order on an open grid.
func TestNeighbors_Conn8(t *testing.T) {
	g, err := grid.New(3, 3, grid.WithConnectivity(grid.Conn8))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	center := grid.Cell{X: 1, Y: 1}
	want := []grid.Cell{
		{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
		{X: 1, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0},
	}
	got := g.Neighbors(center, 0)
	if len(got) != len(want) {
		t.Fatalf("Neighbors(%s) = %v; want %v", center, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors(%s)[%d] = %s; want %s", center, i, got[i], want[i])
		}
	}
}

//----------------------------------------------------------------------------//
// Terrain cost
//----------------------------------------------------------------------------//

// TestTerrainCost covers the default cost, explicit costs, and the +Inf
// sentinel for obstacles and out-of-bounds cells.
func TestTerrainCost(t *testing.T) {
	g, err := grid.New(4, 4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if got := g.TerrainCost(grid.Cell{X: 1, Y: 1}); got != 1 {
		t.Errorf("default TerrainCost = %v; want 1", got)
	}

	g.SetTerrainCost(grid.Cell{X: 1, Y: 1}, 3.5)
	if got := g.TerrainCost(grid.Cell{X: 1, Y: 1}); got != 3.5 {
		t.Errorf("TerrainCost after set = %v; want 3.5", got)
	}

	g.AddStaticObstacle(grid.Cell{X: 2, Y: 2})
	if got := g.TerrainCost(grid.Cell{X: 2, Y: 2}); !math.IsInf(got, 1) {
		t.Errorf("obstacle TerrainCost = %v; want +Inf", got)
	}
	if got := g.TerrainCost(grid.Cell{X: 9, Y: 9}); !math.IsInf(got, 1) {
		t.Errorf("out-of-bounds TerrainCost = %v; want +Inf", got)
	}
}

//----------------------------------------------------------------------------//
// Mutator clamping policy
//----------------------------------------------------------------------------//

// TestMutators_SilentlyIgnoreInvalid pins the documented policy: mutators
// drop out-of-bounds cells, negative time steps, and unusable terrain costs
// without error.
func TestMutators_SilentlyIgnoreInvalid(t *testing.T) {
	g, err := grid.New(3, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	g.AddStaticObstacle(grid.Cell{X: 5, Y: 5})
	if g.IsObstacle(grid.Cell{X: 0, Y: 0}, 0) {
		t.Error("out-of-bounds AddStaticObstacle affected the grid")
	}

	g.AddDynamicObstacle(grid.Cell{X: -1, Y: 0}, 2)
	g.AddDynamicObstacle(grid.Cell{X: 1, Y: 1}, -2)
	if got := g.DynamicAt(2); got != nil {
		t.Errorf("DynamicAt(2) = %v; want nil", got)
	}

	free := grid.Cell{X: 1, Y: 1}
	g.SetTerrainCost(free, 0)
	g.SetTerrainCost(free, -4)
	g.SetTerrainCost(free, math.Inf(1))
	g.SetTerrainCost(free, math.NaN())
	if got := g.TerrainCost(free); got != 1 {
		t.Errorf("TerrainCost after invalid sets = %v; want default 1", got)
	}

	g.SetStartGoal(grid.Cell{X: 0, Y: 0}, grid.Cell{X: 9, Y: 9})
	if start, ok := g.Start(); !ok || start != (grid.Cell{X: 0, Y: 0}) {
		t.Errorf("Start() = %v,%v; want (0,0),true", start, ok)
	}
	if _, ok := g.Goal(); ok {
		t.Error("out-of-bounds goal was accepted")
	}
}

// TestAddDynamicObstacles applies a schedule table and checks sorted reads.
func TestAddDynamicObstacles(t *testing.T) {
	g, err := grid.New(4, 4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	g.AddDynamicObstacles(map[int][]grid.Cell{
		1: {{X: 3, Y: 2}, {X: 0, Y: 0}, {X: 1, Y: 2}},
		4: {{X: 2, Y: 2}, {X: 7, Y: 7}}, // second entry out of bounds, dropped
	})

	want1 := []grid.Cell{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 2}}
	got1 := g.DynamicAt(1)
	if len(got1) != len(want1) {
		t.Fatalf("DynamicAt(1) = %v; want %v", got1, want1)
	}
	for i := range want1 {
		if got1[i] != want1[i] {
			t.Errorf("DynamicAt(1)[%d] = %s; want %s", i, got1[i], want1[i])
		}
	}
	if got4 := g.DynamicAt(4); len(got4) != 1 || got4[0] != (grid.Cell{X: 2, Y: 2}) {
		t.Errorf("DynamicAt(4) = %v; want [(2,2)]", got4)
	}
}

//----------------------------------------------------------------------------//
// Concurrency
//----------------------------------------------------------------------------//

// TestConcurrentMutateAndRead mixes obstacle edits with occupancy and
// neighbor reads to verify no races or panics occur under the RWMutex.
func TestConcurrentMutateAndRead(t *testing.T) {
	g, err := grid.New(20, 20)
	require.NoError(t, err)

	const rounds = 200
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(i int) {
			defer wg.Done()
			g.AddStaticObstacle(grid.Cell{X: i % 20, Y: (i * 7) % 20})
			g.AddDynamicObstacle(grid.Cell{X: (i * 3) % 20, Y: i % 20}, i%10)
		}(i)
		go func(i int) {
			defer wg.Done()
			c := grid.Cell{X: i % 20, Y: i % 20}
			_ = g.IsObstacle(c, i%10)
			_ = g.Neighbors(c, i%10)
			_ = g.TerrainCost(c)
		}(i)
	}
	wg.Wait()

	// Every scheduled write must be visible afterwards.
	for i := 0; i < rounds; i++ {
		require.True(t, g.IsObstacle(grid.Cell{X: i % 20, Y: (i * 7) % 20}, 0),
			fmt.Sprintf("static obstacle from round %d missing", i))
	}
}
