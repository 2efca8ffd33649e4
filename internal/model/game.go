package model

import "time"

// GameID uniquely identifies one game from restart to restart
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateIdle     GameState = "idle"      // Waiting for a drag
	GameStateDragging GameState = "dragging"  // A piece is held
	GameStatePlacing  GameState = "placing"   // Piece committed, placement animation running
	GameStateClearing GameState = "clearing"  // Completed lines animating out
	GameStateOver     GameState = "game_over" // No tray piece fits anywhere
)

// IsAnimating returns true while a timed transition is pending
func (s GameState) IsAnimating() bool {
	return s == GameStatePlacing || s == GameStateClearing
}

// DragSession records the piece being dragged and which of its cells is
// pinned under the pointer
type DragSession struct {
	Piece  *Piece
	Offset Coord
}

// Anchor returns the anchor that puts the pinned cell on target
func (d *DragSession) Anchor(target Coord) Coord {
	return target.Sub(d.Offset)
}

// Snapshot is a read-only copy of everything a renderer needs
type Snapshot struct {
	GameID        GameID
	Difficulty    Difficulty
	BoardRadius   int
	State         GameState
	Board         *Board
	Tray          Tray
	Score         int
	HighScore     int
	GameOver      bool
	Animating     bool
	Drag          *DragSession
	Preview       map[Coord]Color
	PlacingCells  map[Coord]int
	ClearingCells map[Coord]bool
	UpdatedAt     time.Time
}

// Outcome reports what a Drop did
type Outcome struct {
	Accepted       bool
	Reason         string // Why the drop was ignored, empty when accepted
	Anchor         Coord
	PointsAwarded  int
	PlacedCells    []Coord
	PendingClear   bool
	StateAfterDrop GameState
}

// Reasons a drop can be ignored
const (
	DropIgnoredNoDrag    = "no_drag"
	DropIgnoredAnimating = "animating"
	DropIgnoredGameOver  = "game_over"
	DropIgnoredIllegal   = "illegal_placement"
)
