package models

import "errors"

// Error kinds shared by the store, the poll engine and the HTTP layer.
// Callers match them with errors.Is; the wrapped message carries detail.
var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrExpired         = errors.New("poll has expired")
	ErrAlreadyVoted    = errors.New("already voted in this poll")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrStorage         = errors.New("storage failure")
)
