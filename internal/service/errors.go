package service

import "errors"

// Common service-level errors.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrNotOwned indicates the entity belongs to another user.
	ErrNotOwned = errors.New("unauthorized access: entity not owned by user")
)
