package core

import "errors"

// Error codes for domain errors surfaced to the originating connection.
const (
	ErrCodeBadRequest     = "bad_request"
	ErrCodeNotAuthorized  = "not_authorized"
	ErrCodeNotFound       = "not_found"
	ErrCodeUnknownCommand = "unknown_command"
	ErrCodeRateLimited    = "rate_limited"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
