package domain

import "errors"

var (
	// ErrNotFound is returned when a post or user id has no record.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on unique-constraint violations
	// (post title, user name, user email).
	ErrConflict = errors.New("already exists")
	// ErrUnauthorized is returned on bad credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDelivery is returned when outbound mail cannot be sent.
	ErrDelivery = errors.New("delivery failed")
)
