package board

import (
	"log/slog"

	"github.com/mcoot/blockhive/internal/model"
)

// Service provides placement and line-clear operations on hex boards
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// CanPlace reports whether every cell of the piece, anchored at anchor, is
// on the board and empty. It never mutates its arguments.
func CanPlace(b *model.Board, piece *model.Piece, anchor model.Coord) bool {
	for _, offset := range piece.Shape {
		if !b.IsEmpty(anchor.Add(offset)) {
			return false
		}
	}
	return true
}

// CanPlace is the method form of the package-level CanPlace
func (s *Service) CanPlace(b *model.Board, piece *model.Piece, anchor model.Coord) bool {
	return CanPlace(b, piece, anchor)
}

// Place writes the piece into the board. It returns the stagger index of each
// absolute cell for the placement animation. An illegal placement leaves the
// board untouched.
func (s *Service) Place(b *model.Board, piece *model.Piece, anchor model.Coord) (map[model.Coord]int, error) {
	if !CanPlace(b, piece, anchor) {
		return nil, model.ErrInvalidPlacement
	}

	placing := make(map[model.Coord]int, piece.Size())
	for i, offset := range piece.Shape {
		c := anchor.Add(offset)
		b.Set(c, piece.Color)
		placing[c] = i
	}

	s.logger.Debug("piece placed",
		slog.Int("piece_id", int(piece.ID)),
		slog.String("anchor", anchor.Key()),
		slog.Int("cells", piece.Size()),
	)
	return placing, nil
}

// DetectLines finds every complete line on the board
func (s *Service) DetectLines(b *model.Board) LineClear {
	return DetectLines(b)
}

// ClearLines empties the cells of a detected clear and returns how many
// cells were emptied
func (s *Service) ClearLines(b *model.Board, lc LineClear) int {
	n := ClearCells(b, lc.Cells)
	if n > 0 {
		s.logger.Debug("lines cleared",
			slog.Int("lines", lc.Count()),
			slog.Int("cells", n),
		)
	}
	return n
}

// LegalAnchors returns every anchor at which the piece fits. Anchors are
// drawn from the board's empty cells, so pieces whose origin cell would sit
// off the board are not considered.
func LegalAnchors(b *model.Board, piece *model.Piece) []model.Coord {
	var result []model.Coord
	for _, c := range b.EmptyCells() {
		if CanPlace(b, piece, c) {
			result = append(result, c)
		}
	}
	return result
}

// Interface for dependency injection
type ServiceInterface interface {
	CanPlace(b *model.Board, piece *model.Piece, anchor model.Coord) bool
	Place(b *model.Board, piece *model.Piece, anchor model.Coord) (map[model.Coord]int, error)
	DetectLines(b *model.Board) LineClear
	ClearLines(b *model.Board, lc LineClear) int
}

var _ ServiceInterface = (*Service)(nil)
