// File: grid/example_test.go
package grid_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Load + Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleLoad demonstrates parsing a snapshot and querying traversability
// around the designated start cell.
// Scenario:
//
//   - 4×3 map with a wall segment, START/GOAL headers
//   - Neighbors enumerates N, E, S, W in that fixed order
//   - the wall cell (1,1) is filtered out of the enumeration
func ExampleLoad() {
	snapshot := "4 3\n" +
		"START 0 1\n" +
		"GOAL 3 1\n" +
		"0 0 0 0\n" +
		"0 1 1 0\n" +
		"0 0 0 0\n"

	g, _ := grid.Load(strings.NewReader(snapshot))
	start, _ := g.Start()

	fmt.Println("start:", start)
	fmt.Println("obstacle(1,1):", g.IsObstacle(grid.Cell{X: 1, Y: 1}, 0))
	fmt.Println("neighbors:", g.Neighbors(start, 0))

	// Output:
	// start: (0,1)
	// obstacle(1,1): true
	// neighbors: [(0,0) (0,2)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: dynamic obstacles
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_AddDynamicObstacle shows time-indexed occupancy: the same
// cell is blocked at t=5 and free at every other instant.
func ExampleGrid_AddDynamicObstacle() {
	g, _ := grid.New(3, 3)
	g.AddDynamicObstacle(grid.Cell{X: 1, Y: 1}, 5)

	fmt.Println("t=0:", g.IsObstacle(grid.Cell{X: 1, Y: 1}, 0))
	fmt.Println("t=5:", g.IsObstacle(grid.Cell{X: 1, Y: 1}, 5))

	// Output:
	// t=0: false
	// t=5: true
}
