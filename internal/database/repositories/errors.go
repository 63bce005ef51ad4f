package repositories

import "errors"

var (
	// ErrNotFound is returned when a lookup or mutation matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("record already exists")
)
