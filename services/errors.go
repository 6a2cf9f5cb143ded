package services

import "errors"

// Errors shared between services and the HTTP mapping.
var (
	ErrNotFound           = errors.New("requested resource not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrPlayerNotFound     = errors.New("player is not on the tournament roster")

	ErrValidationFailed        = errors.New("validation failed")
	ErrTitleRequired           = errors.New("tournament title is required")
	ErrInvalidStatus           = errors.New("invalid tournament status provided")
	ErrInvalidStatusTransition = errors.New("invalid tournament status transition")
	ErrUnknownCommand          = errors.New("unknown setup command")
	ErrSlotFed                 = errors.New("slot is fed by another match and cannot be edited manually")
	ErrEdgeEditOutsideSetup    = errors.New("edges can only be edited while the tournament is in setup")
	ErrSheetRequired           = errors.New("a score sheet image is required")
)
