package service

import "errors"

var (
	ErrNoUserInContext      = errors.New("user ID not found in the context")
	ErrTournamentInProgress = errors.New("tournament is still in progress")
	ErrSelectionConflict    = errors.New("match was already decided")
	ErrNotOwner             = errors.New("tournament belongs to another user")
)
