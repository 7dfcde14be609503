package repository

import "errors"

// Sentinel kinds for profile store errors.
var (
	ErrNotFound      = errors.New("profile not found")
	ErrMissingUserID = errors.New("profile has no user id")
)
