package scoring

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"

	"github.com/mcoot/blockhive/internal/model"
	"github.com/mcoot/blockhive/internal/services/board"
	"github.com/mcoot/blockhive/internal/storage"
)

const (
	PointsPerHex  = 10
	PointsPerLine = 100
	ComboStep     = 0.5
)

// PlacementScore is awarded as soon as a piece is committed
func PlacementScore(piece *model.Piece) int {
	return PointsPerHex * piece.Size()
}

// ClearScore returns floor(100 * n * (1 + (n-1) * 0.5)) for n simultaneous lines
func ClearScore(lines int) int {
	if lines <= 0 {
		return 0
	}
	n := float64(lines)
	return int(math.Floor(PointsPerLine * n * (1 + (n-1)*ComboStep)))
}

// IsGameOver returns true when no remaining tray piece fits on any empty
// cell. An empty tray is never game over.
func IsGameOver(b *model.Board, tray *model.Tray) bool {
	pieces := tray.Pieces()
	if len(pieces) == 0 {
		return false
	}
	for _, c := range b.EmptyCells() {
		for _, p := range pieces {
			if board.CanPlace(b, p, c) {
				return false
			}
		}
	}
	return true
}

// Move lists the anchors at which one tray piece fits
type Move struct {
	PieceID model.PieceID
	Anchors []model.Coord
}

// LegalMoves returns one Move per remaining tray piece, in slot order
func LegalMoves(b *model.Board, tray *model.Tray) []Move {
	pieces := tray.Pieces()
	moves := make([]Move, 0, len(pieces))
	for _, p := range pieces {
		moves = append(moves, Move{
			PieceID: p.ID,
			Anchors: board.LegalAnchors(b, p),
		})
	}
	return moves
}

// Service keeps the high-score watermark in storage
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new ScoringService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// LoadHighScore reads the stored watermark. A missing key is 0.
func (s *Service) LoadHighScore(ctx context.Context) (int, error) {
	raw, err := s.storage.Get(ctx, storage.KeyHighScore)
	if err != nil {
		if errors.Is(err, model.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		s.logger.Warn("ignoring malformed high score", slog.String("value", raw))
		return 0, nil
	}
	return value, nil
}

// UpdateHighScore raises the watermark when score exceeds current and
// persists it. It returns the resulting watermark and whether it changed.
// A storage failure is logged and does not undo the new in-memory value.
func (s *Service) UpdateHighScore(ctx context.Context, score, current int) (int, bool) {
	if score <= current {
		return current, false
	}
	if err := s.storage.Set(ctx, storage.KeyHighScore, strconv.Itoa(score)); err != nil {
		s.logger.Error("failed to persist high score",
			slog.Int("score", score),
			slog.String("error", err.Error()),
		)
	}
	return score, true
}

// Interface for dependency injection
type ServiceInterface interface {
	LoadHighScore(ctx context.Context) (int, error)
	UpdateHighScore(ctx context.Context, score, current int) (int, bool)
}

var _ ServiceInterface = (*Service)(nil)
