package domain

import "errors"

var (
	// Registration validation errors, reported to the caller for
	// correction, never as a system fault.
	ErrUnderage            = errors.New("holder must be at least 18 years old")
	ErrInvalidNationalID   = errors.New("national id must be exactly 10 digits")
	ErrInvalidName         = errors.New("name must contain only letters and spaces")
	ErrDuplicateNationalID = errors.New("national id already registered")
	ErrWeakPassword        = errors.New("password must be at least 8 characters")
	ErrInvalidAccountType  = errors.New("invalid account type")

	// Session errors
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrMissingDestination = errors.New("destination account number is required")
	ErrSessionClosed      = errors.New("session is closed")
	ErrSessionNotFound    = errors.New("session not found")

	// Directory errors
	ErrAccountNotFound = errors.New("account not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
)
