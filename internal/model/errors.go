package model

import "errors"

// Common errors used across the application
var (
	// Tournament errors
	ErrNameRequired  = errors.New("name is required")
	ErrInvalidStatus = errors.New("invalid tournament status")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Match errors
	ErrMatchNotFound = errors.New("match not found")
	ErrSamePlayer    = errors.New("a player cannot be matched against themselves")
	ErrInvalidRound  = errors.New("round must be at least 1")
	ErrInvalidWinner = errors.New("winner must be one of the match players")
)
