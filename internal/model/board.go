package model

// Color is an occupant token for a board cell. The empty string means the cell is free.
type Color string

// Empty marks an unoccupied cell
const Empty Color = ""

// Board is a hexagonal region of the given radius: every (q, r) with
// |q|, |r| and |s| all at most Radius. The set of cells never changes after
// creation, only their occupants do.
type Board struct {
	Radius int
	cells  []Color // dense (2R+1)^2 grid, index (r+R)*(2R+1) + (q+R)
	coords []Coord // in-bounds cells in row-major order
}

// NewBoard creates an empty board of the given radius
func NewBoard(radius int) *Board {
	if radius < 0 {
		radius = 0
	}
	side := 2*radius + 1
	b := &Board{
		Radius: radius,
		cells:  make([]Color, side*side),
		coords: make([]Coord, 0, CellCountForRadius(radius)),
	}
	for r := -radius; r <= radius; r++ {
		for q := -radius; q <= radius; q++ {
			c := Coord{Q: q, R: r}
			if b.InBounds(c) {
				b.coords = append(b.coords, c)
			}
		}
	}
	return b
}

// CellCountForRadius returns 3R^2 + 3R + 1
func CellCountForRadius(radius int) int {
	return 3*radius*radius + 3*radius + 1
}

// InBounds returns true if the coordinate is a cell of this board
func (b *Board) InBounds(c Coord) bool {
	return abs(c.Q) <= b.Radius && abs(c.R) <= b.Radius && abs(c.S()) <= b.Radius
}

func (b *Board) index(c Coord) int {
	side := 2*b.Radius + 1
	return (c.R+b.Radius)*side + (c.Q + b.Radius)
}

// Get returns the occupant at c, or Empty if c is empty or out of bounds
func (b *Board) Get(c Coord) Color {
	if !b.InBounds(c) {
		return Empty
	}
	return b.cells[b.index(c)]
}

// Set writes an occupant. Out-of-bounds coordinates are ignored.
func (b *Board) Set(c Coord, color Color) {
	if b.InBounds(c) {
		b.cells[b.index(c)] = color
	}
}

// IsEmpty returns true if c is in bounds and unoccupied
func (b *Board) IsEmpty(c Coord) bool {
	return b.InBounds(c) && b.cells[b.index(c)] == Empty
}

// Coords returns every cell of the board. The slice must not be modified.
func (b *Board) Coords() []Coord {
	return b.coords
}

// CellCount returns the number of cells on the board
func (b *Board) CellCount() int {
	return len(b.coords)
}

// EmptyCells returns all unoccupied cells
func (b *Board) EmptyCells() []Coord {
	result := make([]Coord, 0, len(b.coords))
	for _, c := range b.coords {
		if b.cells[b.index(c)] == Empty {
			result = append(result, c)
		}
	}
	return result
}

// OccupiedCount returns the number of occupied cells
func (b *Board) OccupiedCount() int {
	count := 0
	for _, c := range b.coords {
		if b.cells[b.index(c)] != Empty {
			count++
		}
	}
	return count
}

// Cells returns a "q,r" -> colour snapshot of every cell, empty cells included
func (b *Board) Cells() map[string]Color {
	result := make(map[string]Color, len(b.coords))
	for _, c := range b.coords {
		result[c.Key()] = b.cells[b.index(c)]
	}
	return result
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		Radius: b.Radius,
		cells:  cells,
		coords: b.coords,
	}
}

// Equal reports whether two boards have the same radius and occupants
func (b *Board) Equal(o *Board) bool {
	if b.Radius != o.Radius {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
