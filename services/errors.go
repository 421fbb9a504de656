package services

import "errors"

// Errors shared by the services and mapped to HTTP statuses in handlers.
var (
	ErrUnknownModel        = errors.New("unknown bracket model")
	ErrMatchNotPlayable    = errors.New("match has no opponent to score against")
	ErrInvalidAdvanceCount = errors.New("rounds must be between 1 and 64")
	ErrUnknownAction       = errors.New("unknown tournament action")
	ErrTournamentDecided   = errors.New("tournament already has a champion")
	ErrInvalidScore        = errors.New("scores must not be negative")
)
