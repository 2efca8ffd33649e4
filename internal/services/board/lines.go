package board

import (
	"slices"
	"sync"

	"github.com/mcoot/blockhive/internal/model"
)

// Axis names one of the three line families of a hex board
type Axis string

const (
	AxisR Axis = "r"
	AxisQ Axis = "q"
	AxisS Axis = "s"
)

// Axes lists the families in scan order
var Axes = []Axis{AxisR, AxisQ, AxisS}

// Line is a maximal straight run of cells sharing one cube coordinate
type Line struct {
	Axis  Axis
	Value int
	Cells []model.Coord
}

// Len returns the number of cells in the line
func (l Line) Len() int {
	return len(l.Cells)
}

// LineLength returns 2R+1-|v|, the length of the line with axis value v
func LineLength(radius, v int) int {
	if v < 0 {
		v = -v
	}
	if v > radius {
		return 0
	}
	return 2*radius + 1 - v
}

func axisValue(axis Axis, c model.Coord) int {
	switch axis {
	case AxisQ:
		return c.Q
	case AxisS:
		return c.S()
	default:
		return c.R
	}
}

// lineTables caches the line layout per radius. Tables are never mutated
// once stored.
var (
	lineTablesMu sync.RWMutex
	lineTables   = make(map[int][]Line)
)

func lineTable(radius int) []Line {
	if radius < 0 {
		radius = 0
	}

	lineTablesMu.RLock()
	table, ok := lineTables[radius]
	lineTablesMu.RUnlock()
	if ok {
		return table
	}

	table = buildLines(radius)
	lineTablesMu.Lock()
	defer lineTablesMu.Unlock()
	if existing, ok := lineTables[radius]; ok {
		return existing
	}
	lineTables[radius] = table
	return table
}

func buildLines(radius int) []Line {
	side := 2*radius + 1
	lines := make([]Line, 0, 3*side)
	coords := model.NewBoard(radius).Coords()

	for _, axis := range Axes {
		for v := -radius; v <= radius; v++ {
			line := Line{Axis: axis, Value: v, Cells: make([]model.Coord, 0, LineLength(radius, v))}
			for _, c := range coords {
				if axisValue(axis, c) == v {
					line.Cells = append(line.Cells, c)
				}
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// Lines enumerates the 3(2R+1) candidate lines of a board, ordered by axis
// then by axis value. The result is the caller's to modify.
func Lines(radius int) []Line {
	table := lineTable(radius)
	lines := make([]Line, len(table))
	for i, line := range table {
		lines[i] = line.clone()
	}
	return lines
}

func (l Line) clone() Line {
	l.Cells = slices.Clone(l.Cells)
	return l
}

// LineClear is the result of one detection pass
type LineClear struct {
	// Lines holds every complete line. A cell may belong to several.
	Lines []Line
	// Cells is the union of the complete lines' cells, each listed once
	Cells []model.Coord
}

// Count returns the number of complete lines, the figure used for scoring
func (lc LineClear) Count() int {
	return len(lc.Lines)
}

// Empty returns true if nothing completed
func (lc LineClear) Empty() bool {
	return len(lc.Lines) == 0
}

// Contains reports whether c is in the clear set
func (lc LineClear) Contains(c model.Coord) bool {
	for _, x := range lc.Cells {
		if x == c {
			return true
		}
	}
	return false
}

// DetectLines scans every candidate line once and collects the complete
// ones. There is no re-check after a clear.
func DetectLines(b *model.Board) LineClear {
	var result LineClear
	seen := make(map[model.Coord]bool)

	for _, line := range lineTable(b.Radius) {
		occupied := 0
		for _, c := range line.Cells {
			if !b.IsEmpty(c) {
				occupied++
			}
		}
		if occupied != LineLength(b.Radius, line.Value) {
			continue
		}

		result.Lines = append(result.Lines, line.clone())
		for _, c := range line.Cells {
			if !seen[c] {
				seen[c] = true
				result.Cells = append(result.Cells, c)
			}
		}
	}
	return result
}

// ClearCells empties the given cells and returns how many were occupied
func ClearCells(b *model.Board, cells []model.Coord) int {
	n := 0
	for _, c := range cells {
		if b.InBounds(c) && !b.IsEmpty(c) {
			b.Set(c, model.Empty)
			n++
		}
	}
	return n
}
