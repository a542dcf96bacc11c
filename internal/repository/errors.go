package repository

import "errors"

// ErrNotFound is returned when a row does not exist. Services translate it
// into the domain NOT_FOUND error with resource context.
var ErrNotFound = errors.New("not found")
