package model

import "errors"

// Common errors used across the application
var (
	// Coordinate errors
	ErrInvalidCoordKey = errors.New("invalid coordinate key")

	// Configuration errors
	ErrUnknownDifficulty = errors.New("unknown difficulty")

	// Game errors
	ErrPieceNotInTray   = errors.New("piece is not in the tray")
	ErrInvalidOffset    = errors.New("offset is not a cell of the piece")
	ErrInvalidPlacement = errors.New("piece does not fit at that position")
	ErrGameOver         = errors.New("game is over")

	// Storage errors
	ErrKeyNotFound = errors.New("key not found")
)
