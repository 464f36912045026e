package heuristic

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrUnknownKind indicates a heuristic name or Kind value outside the known set.
var ErrUnknownKind = errors.New("heuristic: unknown heuristic kind")

// Kind enumerates the available estimators. The zero value is Manhattan.
type Kind int

const (
	// Manhattan is the L1 distance: |dx| + |dy|.
	Manhattan Kind = iota
	// Euclidean is the L2 straight-line distance.
	Euclidean
	// Octile is the 8-connected diagonal distance:
	// max(dx,dy) + (√2−1)·min(dx,dy).
	Octile
)

// Valid reports whether k names a known estimator.
func (k Kind) Valid() bool {
	return k >= Manhattan && k <= Octile
}

// String returns the lower-case name of the estimator.
func (k Kind) String() string {
	switch k {
	case Manhattan:
		return "manhattan"
	case Euclidean:
		return "euclidean"
	case Octile:
		return "diagonal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a name ("manhattan", "euclidean", "diagonal" or "octile")
// to its Kind. Returns ErrUnknownKind for anything else.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "manhattan":
		return Manhattan, nil
	case "euclidean":
		return Euclidean, nil
	case "diagonal", "octile":
		return Octile, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// Estimate returns k's estimated remaining cost between a and b.
// Panics with ErrUnknownKind for an invalid Kind; callers selecting a Kind
// from external input should validate via ParseKind or Valid first.
func (k Kind) Estimate(a, b grid.Cell) float64 {
	switch k {
	case Manhattan:
		return ManhattanDistance(a, b)
	case Euclidean:
		return EuclideanDistance(a, b)
	case Octile:
		return OctileDistance(a, b)
	default:
		panic(ErrUnknownKind.Error())
	}
}

// ManhattanDistance returns |ax−bx| + |ay−by|.
func ManhattanDistance(a, b grid.Cell) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// EuclideanDistance returns the straight-line distance between a and b.
func EuclideanDistance(a, b grid.Cell) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Hypot(dx, dy)
}

// OctileDistance returns max(dx,dy) + (√2−1)·min(dx,dy), the shortest-path
// length on an obstacle-free 8-connected grid with unit orthogonal and
// √2 diagonal steps.
func OctileDistance(a, b grid.Cell) float64 {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx < dy {
		dx, dy = dy, dx
	}

	return float64(dx) + (math.Sqrt2-1)*float64(dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
