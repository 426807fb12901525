package documents

import "errors"

var (
	// ErrNotFound is returned when a document does not exist for the user.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidInput is returned for malformed upload requests.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoText is returned when a document has no extracted text to score against.
	ErrNoText = errors.New("document has no extracted text")
)
