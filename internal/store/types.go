package store

import "errors"

// ErrNotFound is the absence signal for single-record lookups.
var ErrNotFound = errors.New("record not found")
