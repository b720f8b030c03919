package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rgoodall/taskboard/internal/domain"
	"github.com/rgoodall/taskboard/internal/platform/logger"
	"github.com/rgoodall/taskboard/internal/store"
)

// TaskPatch describes a partial update to a task. Nil fields are left
// untouched; set fields are applied as-is.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	DueDate     *time.Time
	Priority    *domain.Priority
}

// CreateTaskParams carries the caller-supplied fields for a new task.
type CreateTaskParams struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    domain.Priority
}

// TaskService enforces task ownership: a user may only read, modify or
// delete tasks they own. All lookups go through the store by task ID and
// compare the record's owning user against the authenticated identity
// before anything else happens.
type TaskService struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService with the given dependencies.
func NewTaskService(taskStore store.TaskStore, log *slog.Logger) *TaskService {
	if taskStore == nil {
		panic("taskStore cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &TaskService{
		taskStore: taskStore,
		logger:    log.With(slog.String("component", "task_service")),
	}
}

// CreateTask creates a new task owned by ownerID.
// Returns domain validation errors for bad input (empty title, unknown
// priority) and store errors for persistence failures.
func (s *TaskService) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	params CreateTaskParams,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(ownerID, params.Title, params.Description, params.DueDate, params.Priority)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to create task",
			"user_id", ownerID,
			"error", err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", ownerID.String()))

	return task, nil
}

// ListTasks returns all tasks owned by ownerID, newest first.
func (s *TaskService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.taskStore.ListByUser(ctx, ownerID)
	if err != nil {
		log.Error("failed to list tasks",
			"user_id", ownerID,
			"error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask applies the patch to the task identified by taskID, provided
// it is owned by ownerID. Returns store.ErrTaskNotFound if no such task
// exists, and ErrTaskNotOwned if it belongs to another user; in the
// latter case no mutation occurs and the error reveals nothing about the
// task's contents.
func (s *TaskService) UpdateTask(
	ctx context.Context,
	taskID, ownerID uuid.UUID,
	patch TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.getOwned(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}

	applyPatch(task, patch)
	if err := task.Validate(); err != nil {
		return nil, err
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskStore.Update(ctx, task); err != nil {
		log.Error("failed to update task",
			"task_id", taskID,
			"user_id", ownerID,
			"error", err)
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask permanently removes the task identified by taskID, provided
// it is owned by ownerID. Failure modes match UpdateTask.
func (s *TaskService) DeleteTask(ctx context.Context, taskID, ownerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.getOwned(ctx, taskID, ownerID); err != nil {
		return err
	}

	if err := s.taskStore.Delete(ctx, taskID); err != nil {
		log.Error("failed to delete task",
			"task_id", taskID,
			"user_id", ownerID,
			"error", err)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	log.Debug("task deleted",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", ownerID.String()))

	return nil
}

// getOwned fetches a task and runs the ownership check. The distinction
// between "absent" and "someone else's" is internal; callers translate
// both into the two documented failure kinds and nothing more.
func (s *TaskService) getOwned(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !task.IsOwnedBy(ownerID) {
		logger.FromContextOrDefault(ctx, s.logger).Warn("ownership check failed",
			slog.String("task_id", taskID.String()),
			slog.String("user_id", ownerID.String()))
		return nil, ErrTaskNotOwned
	}

	return task, nil
}

// applyPatch copies the set fields of the patch onto the task.
func applyPatch(task *domain.Task, patch TaskPatch) {
	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
}
