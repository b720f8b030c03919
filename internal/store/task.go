package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/rgoodall/taskboard/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors wrapped in ErrInvalidEntity if the task
	// data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID regardless of owner.
	// Ownership checks are the caller's responsibility; the service layer
	// uses the result to distinguish "not found" from "not yours".
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ListByUser retrieves all tasks owned by userID ordered by creation
	// time descending (newest first). Returns an empty slice when the
	// user has no tasks.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// Update persists the full task record. The caller must provide a
	// complete task; partial patches are applied at the service layer.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID. The removal is
	// permanent. Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
