package response

import (
	"slices"
	"time"

	"github.com/mcoot/blockhive/internal/model"
	"github.com/mcoot/blockhive/internal/services/catalog"
	"github.com/mcoot/blockhive/internal/services/scoring"
)

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}

// Piece represents a tray piece
type Piece struct {
	ID    int           `json:"id"`
	Shape []model.Coord `json:"shape"`
	Color string        `json:"color"`
	Name  string        `json:"name,omitempty"`
}

// PieceFromModel converts a model.Piece. A nil piece stays nil.
func PieceFromModel(p *model.Piece) *Piece {
	if p == nil {
		return nil
	}
	shape := make([]model.Coord, len(p.Shape))
	copy(shape, p.Shape)
	return &Piece{
		ID:    int(p.ID),
		Shape: shape,
		Color: string(p.Color),
		Name:  catalog.ShapeName(p),
	}
}

// Drag describes the piece currently held
type Drag struct {
	PieceID int         `json:"piece_id"`
	Offset  model.Coord `json:"offset"`
}

// GameState is the full renderable view of the game
type GameState struct {
	GameID        string            `json:"game_id"`
	Difficulty    string            `json:"difficulty"`
	BoardRadius   int               `json:"board_radius"`
	State         string            `json:"state"`
	Board         map[string]string `json:"board"`
	Tray          []*Piece          `json:"tray"`
	Score         int               `json:"score"`
	HighScore     int               `json:"high_score"`
	GameOver      bool              `json:"game_over"`
	Animating     bool              `json:"animating"`
	Drag          *Drag             `json:"drag,omitempty"`
	Preview       map[string]string `json:"preview"`
	PlacingCells  map[string]int    `json:"placing_cells"`
	ClearingCells []string          `json:"clearing_cells"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// GameStateFromSnapshot converts a controller snapshot
func GameStateFromSnapshot(snap *model.Snapshot) GameState {
	board := make(map[string]string, snap.Board.CellCount())
	for key, color := range snap.Board.Cells() {
		board[key] = string(color)
	}

	tray := make([]*Piece, len(snap.Tray))
	for i, p := range snap.Tray {
		tray[i] = PieceFromModel(p)
	}

	preview := make(map[string]string, len(snap.Preview))
	for c, color := range snap.Preview {
		preview[c.Key()] = string(color)
	}

	placing := make(map[string]int, len(snap.PlacingCells))
	for c, idx := range snap.PlacingCells {
		placing[c.Key()] = idx
	}

	clearing := make([]string, 0, len(snap.ClearingCells))
	for c, on := range snap.ClearingCells {
		if on {
			clearing = append(clearing, c.Key())
		}
	}
	slices.Sort(clearing)

	var drag *Drag
	if snap.Drag != nil {
		drag = &Drag{PieceID: int(snap.Drag.Piece.ID), Offset: snap.Drag.Offset}
	}

	return GameState{
		GameID:        string(snap.GameID),
		Difficulty:    string(snap.Difficulty),
		BoardRadius:   snap.BoardRadius,
		State:         string(snap.State),
		Board:         board,
		Tray:          tray,
		Score:         snap.Score,
		HighScore:     snap.HighScore,
		GameOver:      snap.GameOver,
		Animating:     snap.Animating,
		Drag:          drag,
		Preview:       preview,
		PlacingCells:  placing,
		ClearingCells: clearing,
		UpdatedAt:     snap.UpdatedAt,
	}
}

// Outcome reports what a drop did
type Outcome struct {
	Accepted      bool          `json:"accepted"`
	Reason        string        `json:"reason,omitempty"`
	Anchor        model.Coord   `json:"anchor"`
	PointsAwarded int           `json:"points_awarded"`
	PlacedCells   []model.Coord `json:"placed_cells,omitempty"`
	PendingClear  bool          `json:"pending_clear"`
	State         string        `json:"state"`
}

// OutcomeFromModel converts a model.Outcome
func OutcomeFromModel(o model.Outcome) Outcome {
	return Outcome{
		Accepted:      o.Accepted,
		Reason:        o.Reason,
		Anchor:        o.Anchor,
		PointsAwarded: o.PointsAwarded,
		PlacedCells:   o.PlacedCells,
		PendingClear:  o.PendingClear,
		State:         string(o.StateAfterDrop),
	}
}

// DropResponse is returned by the drop and place endpoints
type DropResponse struct {
	Outcome Outcome   `json:"outcome"`
	Game    GameState `json:"game"`
}

// Move lists the anchors where one tray piece fits
type Move struct {
	PieceID int           `json:"piece_id"`
	Anchors []model.Coord `json:"anchors"`
}

// Hints is the response for the hints endpoint
type Hints struct {
	Moves []Move `json:"moves"`
}

// HintsFromMoves converts scoring moves
func HintsFromMoves(moves []scoring.Move) Hints {
	result := Hints{Moves: make([]Move, 0, len(moves))}
	for _, m := range moves {
		anchors := m.Anchors
		if anchors == nil {
			anchors = []model.Coord{}
		}
		result.Moves = append(result.Moves, Move{PieceID: int(m.PieceID), Anchors: anchors})
	}
	return result
}

// Difficulty describes one level
type Difficulty struct {
	Name        string   `json:"name"`
	BoardRadius int      `json:"board_radius"`
	CellCount   int      `json:"cell_count"`
	Shapes      []string `json:"shapes"`
}

// DifficultyFromSettings converts model.DifficultySettings
func DifficultyFromSettings(s model.DifficultySettings) Difficulty {
	shapes := make([]string, len(s.Shapes))
	for i, shape := range s.Shapes {
		shapes[i] = shape.Name
	}
	return Difficulty{
		Name:        string(s.Difficulty),
		BoardRadius: s.BoardRadius,
		CellCount:   model.CellCountForRadius(s.BoardRadius),
		Shapes:      shapes,
	}
}

// Location is the response for the locate endpoint
type Location struct {
	Coord    model.Coord `json:"coord"`
	Key      string      `json:"key"`
	InBounds bool        `json:"in_bounds"`
}

// Event is an SSE payload for anything other than a state change
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	GameID    string    `json:"game_id"`
	Payload   any       `json:"payload,omitempty"`
}

// PiecePlaced is the payload of a piece-placed event
type PiecePlaced struct {
	PieceID int         `json:"piece_id"`
	Anchor  model.Coord `json:"anchor"`
	Points  int         `json:"points"`
}

// LinesCleared is the payload of a lines-cleared event
type LinesCleared struct {
	Lines  int `json:"lines"`
	Cells  int `json:"cells"`
	Points int `json:"points"`
}

// GameOver is the payload of a game-over event
type GameOver struct {
	Score     int `json:"score"`
	HighScore int `json:"high_score"`
}

// GameRestarted is the payload of a game-restarted event
type GameRestarted struct {
	Difficulty  string `json:"difficulty"`
	BoardRadius int    `json:"board_radius"`
}

// EventFromModel converts a model.Event
func EventFromModel(e model.Event) Event {
	result := Event{
		Type:      string(e.Type),
		Timestamp: e.Timestamp,
		GameID:    string(e.GameID),
	}

	switch p := e.Payload.(type) {
	case model.PiecePlacedPayload:
		result.Payload = PiecePlaced{PieceID: int(p.PieceID), Anchor: p.Anchor, Points: p.Points}
	case model.LinesClearedPayload:
		result.Payload = LinesCleared{Lines: p.Lines, Cells: p.Cells, Points: p.Points}
	case model.GameOverPayload:
		result.Payload = GameOver{Score: p.Score, HighScore: p.HighScore}
	case model.GameRestartedPayload:
		result.Payload = GameRestarted{Difficulty: string(p.Difficulty), BoardRadius: p.BoardRadius}
	}

	return result
}
