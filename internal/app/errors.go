package service

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrNotStarted is returned by read operations before Start or after Stop.
	ErrNotStarted = errors.New("service not started")
)
