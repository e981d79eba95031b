package store

import "errors"

// Sentinel errors for store operations.
var (
	ErrInvalidIndex = errors.New("invalid task index")
	ErrNotANumber   = errors.New("input must be a valid index")
)
