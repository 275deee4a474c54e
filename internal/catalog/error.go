package catalog

import "errors"

var (
	// -- Book form --
	ErrTitleRequired  = errors.New("title is required")
	ErrAuthorRequired = errors.New("author is required")
	ErrGenreRequired  = errors.New("genre is required")
	ErrUnknownGenre   = errors.New("genre is not one of the listed genres")
	ErrInvalidPrice   = errors.New("price must be greater than zero")
	ErrInvalidPages   = errors.New("pages must not be negative")
	ErrInvalidStock   = errors.New("stock must not be negative")

	// -- Ownership --
	ErrNotBookOwner = errors.New("book belongs to another seller")
	ErrBookNotFound = errors.New("book not found")
)
