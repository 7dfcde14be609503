package app

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNotStarted  = errors.New("service not started")
	ErrScoreFailed = errors.New("pair scoring failed")
)
