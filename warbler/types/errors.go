package types

import "errors"

// Domain error taxonomy. Every failure a handler can recover from is one
// of these sentinels; handlers map them to HTTP statuses and the request
// carries on. DAOs translate storage errors (record not found, unique
// constraint violation) into this set so controllers never inspect
// driver-specific errors.
var (
	// ErrInvalidInput is returned when a required field is empty or a
	// bounded field exceeds its limit.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPassword is returned by signup when the password is
	// empty or missing.
	ErrInvalidPassword = errors.New("password must not be empty")

	// ErrDuplicateIdentity is returned when a signup collides with an
	// existing username or email.
	ErrDuplicateIdentity = errors.New("username or email already taken")

	// ErrSelfLike is returned when a user tries to like their own message.
	ErrSelfLike = errors.New("cannot like your own message")

	// ErrSelfFollow is returned when a user tries to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrNotOwner is returned when a user tries to mutate a resource
	// owned by someone else.
	ErrNotOwner = errors.New("not the owner of this resource")

	// ErrNotFound is returned when a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")
)
