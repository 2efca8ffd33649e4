package storage

import (
	"context"
)

// Storage is the small key-value store that carries state across games,
// such as the high-score watermark
type Storage interface {
	// Get returns the value for key, or model.ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error
}

// Well-known keys
const (
	KeyHighScore = "highscore"
)
