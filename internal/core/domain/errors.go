package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrInvalidReaction    = errors.New("invalid reaction type")
	// ErrReactionConflict is returned when two concurrent requests race on
	// creating a reaction for the same (user, post) pair. The losing request
	// should be retried by the client.
	ErrReactionConflict = errors.New("reaction already exists")
)
