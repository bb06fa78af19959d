package models

import "errors"

// Shared domain errors surfaced across layers. The persistence layer maps
// driver errors onto these; services and controllers branch on them with
// errors.Is.
var (
	// ErrNotFound means the requested record does not exist in any backing store.
	ErrNotFound = errors.New("not found")

	// ErrCookbookConflict means a cookbook copy already exists for the
	// (user, original recipe) pair. Callers treat it as a resync signal.
	ErrCookbookConflict = errors.New("recipe is already in the cookbook")

	// ErrEmailTaken means a user with that email already exists.
	ErrEmailTaken = errors.New("email is already registered")
)
