package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventStateChanged  EventType = "state"
	EventPiecePlaced   EventType = "piece-placed"
	EventLinesCleared  EventType = "lines-cleared"
	EventTrayRefilled  EventType = "tray-refilled"
	EventGameOver      EventType = "game-over"
	EventGameRestarted EventType = "game-restarted"
)

// Event is emitted by the game controller after a transition
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID
	Payload   any // Type-specific data
}

// PiecePlacedPayload contains data for piece placed events
type PiecePlacedPayload struct {
	PieceID PieceID
	Anchor  Coord
	Points  int
}

// LinesClearedPayload contains data for lines cleared events
type LinesClearedPayload struct {
	Lines  int
	Cells  int
	Points int
}

// GameOverPayload contains data for game over events
type GameOverPayload struct {
	Score     int
	HighScore int
}

// GameRestartedPayload contains data for game restarted events
type GameRestartedPayload struct {
	Difficulty  Difficulty
	BoardRadius int
}
