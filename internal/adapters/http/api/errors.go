package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	ErrSelfMatch  = errors.New("cannot score a user against themselves")
)
