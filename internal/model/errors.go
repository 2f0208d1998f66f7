package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrInvalidSeatCount = errors.New("a session needs one or two seats")
	ErrInvalidSeatSetup = errors.New("only the second seat can be AI-controlled")
	ErrNoGameInProgress = errors.New("no game in progress")
	ErrSaveNotFound     = errors.New("save not found")
	ErrInvalidSnapshot  = errors.New("invalid snapshot")
	ErrSessionClosed    = errors.New("session host is not running")

	// Action errors
	ErrInvalidAction  = errors.New("invalid action")
	ErrActionRejected = errors.New("action rejected")

	// Catalog errors
	ErrCatalogInvalid = errors.New("catalog is invalid")
)
