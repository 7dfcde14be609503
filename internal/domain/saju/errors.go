package saju

import "errors"

// Sentinel kinds for pillar computation errors.
var (
	// ErrInvalidDate marks an input that does not form a real calendar
	// date. It is the only hard failure of the calendar engine.
	ErrInvalidDate = errors.New("invalid calendar date")
)
