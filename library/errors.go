package library

import "errors"

// Lending operations wrap these sentinels so callers can classify
// failures with errors.Is.
var (
	// ErrNotAvailable is returned when a checkout is attempted on a book
	// that is already checked out.
	ErrNotAvailable = errors.New("book is not available")

	// ErrAlreadyHeld is returned when a user borrows a book they already
	// hold.
	ErrAlreadyHeld = errors.New("book is already checked out by this user")

	// ErrNotFound is returned when a title lookup finds no match.
	ErrNotFound = errors.New("book not found")
)
