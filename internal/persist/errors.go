package persist

import "errors"

// Sentinel errors for the task file.
var (
	ErrNoData     = errors.New("no task file")
	ErrUnreadable = errors.New("task file unreadable")
	ErrMalformed  = errors.New("task file malformed")
	ErrEncode     = errors.New("serialize tasks")
	ErrWrite      = errors.New("write task file")
)
