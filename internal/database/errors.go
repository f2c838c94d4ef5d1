package database

import "errors"

// ErrNotFound is returned when a sentence lookup matches no row.
var ErrNotFound = errors.New("sentence not found")
