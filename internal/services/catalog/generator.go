package catalog

import (
	"github.com/mcoot/blockhive/internal/dependencies/random"
	"github.com/mcoot/blockhive/internal/model"
)

// Generator deals random pieces from a difficulty's shape subset
type Generator struct {
	random random.Random
}

// New creates a new Generator
func New(rng random.Random) *Generator {
	return &Generator{
		random: rng,
	}
}

// NewPiece draws a shape and a colour independently, each uniformly
func (g *Generator) NewPiece(id model.PieceID, difficulty model.Difficulty) (*model.Piece, error) {
	settings, err := difficulty.Settings()
	if err != nil {
		return nil, err
	}

	shape := settings.Shapes[g.random.Intn(len(settings.Shapes))]
	color := model.Palette[g.random.Intn(len(model.Palette))]

	cells := make([]model.Coord, len(shape.Cells))
	copy(cells, shape.Cells)

	return &model.Piece{
		ID:    id,
		Shape: cells,
		Color: color,
	}, nil
}

// NewTray deals a full tray with consecutive IDs starting at firstID
func (g *Generator) NewTray(difficulty model.Difficulty, firstID model.PieceID) (model.Tray, error) {
	var tray model.Tray
	for i := range tray {
		piece, err := g.NewPiece(firstID+model.PieceID(i), difficulty)
		if err != nil {
			return model.Tray{}, err
		}
		tray[i] = piece
	}
	return tray, nil
}

// ShapeName returns the catalog name of the piece's shape, or "" if the
// shape is not in the catalog
func ShapeName(piece *model.Piece) string {
	for _, shape := range model.Catalog {
		if sameCells(shape.Cells, piece.Shape) {
			return shape.Name
		}
	}
	return ""
}

func sameCells(a, b []model.Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Interface for dependency injection
type GeneratorInterface interface {
	NewPiece(id model.PieceID, difficulty model.Difficulty) (*model.Piece, error)
	NewTray(difficulty model.Difficulty, firstID model.PieceID) (model.Tray, error)
}

var _ GeneratorInterface = (*Generator)(nil)
