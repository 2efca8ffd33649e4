package request

import (
	"github.com/mcoot/blockhive/internal/model"
)

// DragRequest is the request body for picking up a piece.
// A missing offset pins the piece's origin cell.
type DragRequest struct {
	PieceID int          `json:"piece_id"`
	Offset  *model.Coord `json:"offset,omitempty"`
}

// PinnedOffset returns the offset, defaulting to (0,0)
func (r DragRequest) PinnedOffset() model.Coord {
	if r.Offset == nil {
		return model.Coord{}
	}
	return *r.Offset
}

// TargetRequest names a board cell directly or by a board-local pixel point
type TargetRequest struct {
	Coord   *model.Coord `json:"coord,omitempty"`
	Point   *model.Point `json:"point,omitempty"`
	HexSize float64      `json:"hex_size,omitempty"`
}

// Resolve returns the targeted cell, or nil when neither form was given.
// Coord wins over Point.
func (r TargetRequest) Resolve() *model.Coord {
	if r.Coord != nil {
		c := *r.Coord
		return &c
	}
	if r.Point != nil {
		c := model.PixelToAxial(*r.Point, r.HexSize)
		return &c
	}
	return nil
}

// PlaceRequest drags and drops a piece in one call
type PlaceRequest struct {
	DragRequest
	TargetRequest
}

// DifficultyRequest is the request body for switching level
type DifficultyRequest struct {
	Difficulty string `json:"difficulty"`
}

// LocateRequest converts a board-local pixel point to a cell
type LocateRequest struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	HexSize float64 `json:"hex_size,omitempty"`
}
