package model

import "fmt"

// Difficulty selects the board radius and the shapes that may be dealt
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is used when nothing else is configured
const DefaultDifficulty = DifficultyMedium

// Difficulties lists the levels in display order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// DifficultySettings is the fixed configuration for one level
type DifficultySettings struct {
	Difficulty  Difficulty
	BoardRadius int
	Shapes      []Shape
}

var difficultySettings = map[Difficulty]DifficultySettings{
	DifficultyEasy: {
		Difficulty:  DifficultyEasy,
		BoardRadius: 3,
		Shapes:      Catalog[0:4], // tier 1
	},
	DifficultyMedium: {
		Difficulty:  DifficultyMedium,
		BoardRadius: 4,
		Shapes:      Catalog[0:7], // tiers 1-2
	},
	DifficultyHard: {
		Difficulty:  DifficultyHard,
		BoardRadius: 5,
		Shapes:      Catalog[4:11], // tiers 2-3
	},
}

// Settings returns the configuration for the level
func (d Difficulty) Settings() (DifficultySettings, error) {
	s, ok := difficultySettings[d]
	if !ok {
		return DifficultySettings{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, string(d))
	}
	return s, nil
}

// Valid returns true for the three known levels
func (d Difficulty) Valid() bool {
	_, ok := difficultySettings[d]
	return ok
}

// ParseDifficulty validates a level name
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}
