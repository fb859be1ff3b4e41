package models

import "errors"

// Domain errors. Callers wrap them with context and handlers match them with errors.Is.
var (
	ErrValidation             = errors.New("validation error")
	ErrNotFound               = errors.New("not found")
	ErrConflict               = errors.New("conflict")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrInvalidOwner           = errors.New("credit limit can only be set for agent wallets")
	ErrDuplicateClaim         = errors.New("a claim already exists for this booking")
	ErrInvalidBookingState    = errors.New("booking is not in a claimable state")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrUserAlreadyExists      = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
)
