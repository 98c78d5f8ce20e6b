// Package usecase implements the business logic for the tasks feature.
package usecase

import "errors"

var (
	// ErrTaskNotFound is returned when a task does not exist or belongs to a
	// different user. The two cases are deliberately indistinguishable so
	// that task existence is not leaked across users.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyTitle is returned when a task title is empty after trimming whitespace.
	ErrEmptyTitle = errors.New("task title is required")
)
