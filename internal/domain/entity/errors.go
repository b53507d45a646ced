package entity

import "errors"

// Standard domain errors
var (
	ErrProviderUnavailable = errors.New("completion provider not available")
	ErrEmptyCompletion     = errors.New("completion returned no choices")
	ErrInvalidRequest      = errors.New("invalid request parameters")
)
