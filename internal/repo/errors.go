// Package repo holds the error vocabulary shared by every entity store.
package repo

import "errors"

var (
	// ErrNotFound is returned when no row matches both the id and the
	// owning user. A row owned by someone else is reported the same way
	// as a row that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an insert collides with an existing
	// id or unique value.
	ErrConflict = errors.New("already exists")
)
