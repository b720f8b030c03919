// Package service contains the application services that sit between the
// HTTP layer and the stores.
package service

import "errors"

// Common service errors
var (
	// ErrTaskNotOwned is returned when an authenticated user attempts to
	// read or mutate a task owned by a different user. The error carries
	// no detail about the task or its actual owner.
	ErrTaskNotOwned = errors.New("task not owned by user")
)
