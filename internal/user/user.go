package user

import (
	"errors"
	"time"
)

var (
	// ErrEmailTaken is returned by strict signup for a duplicate email.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials deliberately covers both an unknown email and
	// a wrong password, so callers cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNameRequired is returned by the combined signin flow when the
	// email is unknown and no name was supplied for registration.
	ErrNameRequired = errors.New("name is required for new user registration")
)

// User is a registered principal. PasswordHash never leaves the package
// boundary; response shaping strips it.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
