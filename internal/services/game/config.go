package game

import (
	"time"

	"github.com/mcoot/blockhive/internal/model"
)

// Config holds the controller's tunables
type Config struct {
	// Difficulty is the level the first game starts at
	Difficulty model.Difficulty

	// PlaceDelay is the placement animation window
	PlaceDelay time.Duration

	// ClearDelay is the line-clear animation window
	ClearDelay time.Duration

	// BoardRadius overrides the difficulty's radius when positive
	BoardRadius int
}

// DefaultConfig returns the reference timings at medium difficulty
func DefaultConfig() Config {
	return Config{
		Difficulty: model.DefaultDifficulty,
		PlaceDelay: 400 * time.Millisecond,
		ClearDelay: 500 * time.Millisecond,
	}
}
