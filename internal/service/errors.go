package service

import "errors"

// Error kinds returned by the service. Callers match them with errors.Is; the
// wrapped message carries the detail.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
)
