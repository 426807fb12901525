package matches

import "errors"

var (
	// ErrNotFound indicates the requested match score does not exist for the user.
	ErrNotFound = errors.New("match score not found")
	// ErrInvalidInput indicates the request failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrLimitExceeded indicates the user's scoring quota is exhausted.
	ErrLimitExceeded = errors.New("scoring limit exceeded")
)
