// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and snapshot parsing.
var (
	// ErrBadDimensions indicates a width or height below 1.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrBadConnectivity indicates a connectivity value outside Conn4/Conn8.
	ErrBadConnectivity = errors.New("grid: connectivity must be Conn4 or Conn8")
	// ErrMalformedSnapshot indicates snapshot text that does not match the format.
	ErrMalformedSnapshot = errors.New("grid: malformed snapshot")
	// ErrBadCellCode indicates a snapshot cell code outside the known set.
	ErrBadCellCode = errors.New("grid: unknown cell code")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is an integer grid coordinate. Identity is structural: two Cells
// with equal X and Y are the same cell.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Snapshot cell codes used by Save and Load.
const (
	codeFree     = 0
	codeObstacle = 1
	codeStart    = 2
	codeGoal     = 3
	codeDynamic  = 4
)

// Neighbor offset tables. Order is fixed so that two runs over identical
// input enumerate neighbors identically: N, E, S, W for Conn4 and
// N, NE, E, SE, S, SW, W, NW for Conn8.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// Option represents a functional option for configuring a Grid.
type Option func(*Options)

// WithConnectivity selects the neighbor connectivity model.
// The value is validated in New; an unknown value yields ErrBadConnectivity.
func WithConnectivity(conn Connectivity) Option {
	return func(o *Options) {
		o.Conn = conn
	}
}

// DefaultOptions returns an Options with default settings: Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		Conn: Conn4,
	}
}
