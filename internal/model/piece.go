package model

// PieceID identifies a piece within a game's tray history
type PieceID int

// Piece is a polyhex in a single fixed orientation. Shape offsets are
// relative to the anchor and always include (0,0).
type Piece struct {
	ID    PieceID
	Shape []Coord
	Color Color
}

// Size returns the number of cells in the piece
func (p *Piece) Size() int {
	return len(p.Shape)
}

// HasCell returns true if the relative offset is part of the shape
func (p *Piece) HasCell(offset Coord) bool {
	for _, c := range p.Shape {
		if c == offset {
			return true
		}
	}
	return false
}

// Cells returns the absolute cells covered when anchored at anchor
func (p *Piece) Cells(anchor Coord) []Coord {
	result := make([]Coord, len(p.Shape))
	for i, c := range p.Shape {
		result[i] = anchor.Add(c)
	}
	return result
}

// Clone returns a copy that shares nothing with p
func (p *Piece) Clone() *Piece {
	shape := make([]Coord, len(p.Shape))
	copy(shape, p.Shape)
	return &Piece{ID: p.ID, Shape: shape, Color: p.Color}
}

// Palette holds the piece colours. Colour and shape are drawn independently.
var Palette = []Color{
	"gold",
	"#3b82f6",
	"#ef4444",
	"#22c55e",
	"#a855f7",
	"#f97316",
	"#14b8a6",
}

// InvalidTint is the preview colour for cells of an illegal placement
const InvalidTint Color = "rgba(239, 68, 68, 0.7)"

// Shape is a named entry in the piece catalog
type Shape struct {
	Name  string
	Tier  int
	Cells []Coord
}

// Catalog is the fixed ordered list of shapes, grouped by tier
var Catalog = []Shape{
	// Tier 1
	{Name: "single", Tier: 1, Cells: []Coord{{0, 0}}},
	{Name: "double", Tier: 1, Cells: []Coord{{0, 0}, {1, 0}}},
	{Name: "triple-line", Tier: 1, Cells: []Coord{{0, 0}, {1, 0}, {-1, 0}}},
	{Name: "triple-l", Tier: 1, Cells: []Coord{{0, 0}, {1, 0}, {0, 1}}},

	// Tier 2
	{Name: "four-line", Tier: 2, Cells: []Coord{{0, 0}, {1, 0}, {-1, 0}, {2, 0}}},
	{Name: "four-square", Tier: 2, Cells: []Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	{Name: "four-t", Tier: 2, Cells: []Coord{{0, 0}, {-1, 0}, {1, 0}, {0, 1}}},

	// Tier 3
	{Name: "big-l", Tier: 3, Cells: []Coord{{0, 0}, {0, 1}, {0, 2}, {1, 2}}},
	{Name: "s", Tier: 3, Cells: []Coord{{0, 0}, {1, 0}, {0, 1}, {-1, 1}}},
	{Name: "triangle", Tier: 3, Cells: []Coord{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {0, 2}}},
	{Name: "chevron", Tier: 3, Cells: []Coord{{0, 0}, {1, 0}, {2, 0}, {-1, 1}, {0, 1}}},
}
