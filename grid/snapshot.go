package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Save writes a plain-text snapshot of the grid to w:
//
//	<width> <height>
//	[START <x> <y>]
//	[GOAL <x> <y>]
//	<height rows of <width> space-separated cell codes>
//
// Cell codes: 0 free, 1 static obstacle, 2 start, 3 goal, 4 dynamic marker.
// The dynamic marker is informational only: it flags cells occupied at any
// scheduled time step, but the time->cells schedule itself is not part of
// the snapshot. Output is deterministic (row-major).
// Complexity: O(W×H×T), T = scheduled time steps (marker scan).
func (g *Grid) Save(w io.Writer) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.width, g.height); err != nil {
		return err
	}
	if g.hasStart {
		if _, err := fmt.Fprintf(bw, "START %d %d\n", g.start.X, g.start.Y); err != nil {
			return err
		}
	}
	if g.hasGoal {
		if _, err := fmt.Fprintf(bw, "GOAL %d %d\n", g.goal.X, g.goal.Y); err != nil {
			return err
		}
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%d", g.cellCode(Cell{X: x, Y: y})); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// cellCode maps a cell to its snapshot code. Static obstacles win over
// markers; start wins over goal when both designate the same cell.
// Callers must hold g.mu.
func (g *Grid) cellCode(c Cell) int {
	if _, blocked := g.static[c]; blocked {
		return codeObstacle
	}
	if g.hasStart && c == g.start {
		return codeStart
	}
	if g.hasGoal && c == g.goal {
		return codeGoal
	}
	if g.hasDynamicAnywhere(c) {
		return codeDynamic
	}

	return codeFree
}

// SaveFile writes the snapshot to the named file, creating or truncating it.
func (g *Grid) SaveFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = g.Save(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Load parses a snapshot written in the Save format and returns a new Grid.
// The optional START and GOAL header lines may appear zero, one, or both
// times, in either order, before the grid body; they take precedence over
// inline start/goal codes in the body. A body code 1 becomes a static
// obstacle; codes 2 and 3 set start/goal when no header line claimed them;
// code 4 is an informational marker and is ignored (the dynamic schedule is
// supplied separately via AddDynamicObstacles).
//
// Returns ErrBadDimensions, ErrMalformedSnapshot, or ErrBadCellCode
// (wrapped with line context) on invalid input; nothing is silently
// defaulted. Options apply to the constructed grid (e.g. WithConnectivity).
// Complexity: O(W×H).
func Load(r io.Reader, opts ...Option) (*Grid, error) {
	sc := bufio.NewScanner(r)
	ln := 0

	line, ok := nextLine(sc, &ln)
	if !ok {
		return nil, fmt.Errorf("%w: missing dimensions line", ErrMalformedSnapshot)
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: line %d: want \"<width> <height>\", got %q", ErrMalformedSnapshot, ln, line)
	}
	width, errW := strconv.Atoi(fields[0])
	height, errH := strconv.Atoi(fields[1])
	if errW != nil || errH != nil {
		return nil, fmt.Errorf("%w: line %d: non-integer dimensions %q", ErrMalformedSnapshot, ln, line)
	}

	g, err := New(width, height, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %d×%d", err, ln, width, height)
	}

	// Optional START/GOAL header lines, any order, each at most once.
	var (
		headStart, headGoal       Cell
		hasHeadStart, hasHeadGoal bool
	)
	line, ok = nextLine(sc, &ln)
	for ok {
		fields = strings.Fields(line)
		key := fields[0]
		if key != "START" && key != "GOAL" {
			break
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want \"%s <x> <y>\", got %q", ErrMalformedSnapshot, ln, key, line)
		}
		x, errX := strconv.Atoi(fields[1])
		y, errY := strconv.Atoi(fields[2])
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: non-integer coordinate in %q", ErrMalformedSnapshot, ln, line)
		}
		switch key {
		case "START":
			if hasHeadStart {
				return nil, fmt.Errorf("%w: line %d: duplicate START header", ErrMalformedSnapshot, ln)
			}
			headStart, hasHeadStart = Cell{X: x, Y: y}, true
		case "GOAL":
			if hasHeadGoal {
				return nil, fmt.Errorf("%w: line %d: duplicate GOAL header", ErrMalformedSnapshot, ln)
			}
			headGoal, hasHeadGoal = Cell{X: x, Y: y}, true
		}
		line, ok = nextLine(sc, &ln)
	}

	// Grid body: height rows of width integer cell codes.
	var (
		bodyStart, bodyGoal       Cell
		hasBodyStart, hasBodyGoal bool
	)
	for y := 0; y < height; y++ {
		if y > 0 {
			line, ok = nextLine(sc, &ln)
		}
		if !ok {
			return nil, fmt.Errorf("%w: want %d grid rows, got %d", ErrMalformedSnapshot, height, y)
		}
		fields = strings.Fields(line)
		if len(fields) != width {
			return nil, fmt.Errorf("%w: line %d: want %d cells, got %d", ErrMalformedSnapshot, ln, width, len(fields))
		}
		for x, f := range fields {
			code, errC := strconv.Atoi(f)
			if errC != nil {
				return nil, fmt.Errorf("%w: line %d: non-integer cell %q", ErrMalformedSnapshot, ln, f)
			}
			c := Cell{X: x, Y: y}
			switch code {
			case codeFree, codeDynamic:
				// free; the dynamic marker carries no schedule to restore
			case codeObstacle:
				g.AddStaticObstacle(c)
			case codeStart:
				bodyStart, hasBodyStart = c, true
			case codeGoal:
				bodyGoal, hasBodyGoal = c, true
			default:
				return nil, fmt.Errorf("%w: line %d: code %d at %s", ErrBadCellCode, ln, code, c)
			}
		}
	}

	if err = sc.Err(); err != nil {
		return nil, err
	}

	// Header markers win over inline body codes.
	g.mu.Lock()
	if hasHeadStart || hasBodyStart {
		start := bodyStart
		if hasHeadStart {
			start = headStart
		}
		if g.InBounds(start) {
			g.start, g.hasStart = start, true
		}
	}
	if hasHeadGoal || hasBodyGoal {
		goal := bodyGoal
		if hasHeadGoal {
			goal = headGoal
		}
		if g.InBounds(goal) {
			g.goal, g.hasGoal = goal, true
		}
	}
	g.mu.Unlock()

	return g, nil
}

// LoadFile parses the snapshot stored in the named file.
func LoadFile(name string, opts ...Option) (*Grid, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f, opts...)
}

// nextLine advances sc to the next non-blank line, tracking the 1-based
// line number in *ln. Returns false when input is exhausted.
func nextLine(sc *bufio.Scanner, ln *int) (string, bool) {
	for sc.Scan() {
		*ln++
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			return line, true
		}
	}

	return "", false
}
