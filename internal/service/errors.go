package service

import "errors"

var (
	// ErrNotFound is returned when the targeted daily log, task or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a mutation kept losing write races and gave up.
	ErrConflict = errors.New("conflicting concurrent update")

	// ErrInvalidTask wraps the model validation error that rejected a draft or patch.
	ErrInvalidTask = errors.New("invalid task")
)
