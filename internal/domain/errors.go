package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict, e.g. a duplicate phone number.
	ErrAlreadyExists = errors.New("already exists")
	// ErrForbidden indicates the caller may not access the entity.
	ErrForbidden = errors.New("forbidden")
)
