package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"focusd/internal/domain"
	"focusd/internal/logging"
	"focusd/internal/ports"
)

// ErrInvalidTask reports a task payload that fails validation
var ErrInvalidTask = errors.New("invalid task")

// TaskService manages the task board sessions reference
type TaskService struct {
	tasks ports.TaskRepository
	now   func() time.Time
}

// NewTaskService creates a new TaskService
func NewTaskService(tasks ports.TaskRepository) *TaskService {
	return &TaskService{
		tasks: tasks,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// ListTasks returns the user's live tasks, newest first
func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	tasks, err := s.tasks.ListTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask validates and persists a new task
func (s *TaskService) CreateTask(ctx context.Context, userID string, params CreateTaskParams) (*domain.Task, error) {
	if params.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidTask)
	}

	priority := domain.Priority(params.Priority)
	if params.Priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidTask, params.Priority)
	}

	if params.EstimatedPomodoros < 0 {
		return nil, fmt.Errorf("%w: estimated pomodoros must be non-negative", ErrInvalidTask)
	}

	task := domain.Task{
		CreatedAt:          s.now(),
		Description:        params.Description,
		EstimatedPomodoros: params.EstimatedPomodoros,
		ID:                 uuid.NewString(),
		Priority:           priority,
		Title:              params.Title,
		UserID:             userID,
	}

	if err := s.tasks.AddTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	logging.Logger.Info("task created", "user", userID, "task", task.ID)
	return &task, nil
}

// UpdateTask applies the non-nil fields of params to an existing task
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID string, params UpdateTaskParams) (*domain.Task, error) {
	task, err := s.tasks.GetTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		if *params.Title == "" {
			return nil, fmt.Errorf("%w: title is required", ErrInvalidTask)
		}
		task.Title = *params.Title
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Priority != nil {
		priority := domain.Priority(*params.Priority)
		if !priority.Valid() {
			return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidTask, *params.Priority)
		}
		task.Priority = priority
	}
	if params.EstimatedPomodoros != nil {
		if *params.EstimatedPomodoros < 0 {
			return nil, fmt.Errorf("%w: estimated pomodoros must be non-negative", ErrInvalidTask)
		}
		task.EstimatedPomodoros = *params.EstimatedPomodoros
	}
	if params.Completed != nil && *params.Completed != task.Completed {
		task.Completed = *params.Completed
		if task.Completed {
			completedAt := s.now()
			task.CompletedAt = &completedAt
		} else {
			task.CompletedAt = nil
		}
	}

	if err := s.tasks.UpdateTask(ctx, *task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// DeleteTask soft-deletes a task so historical sessions keep their
// reference
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if err := s.tasks.DeleteTask(ctx, taskID, userID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	logging.Logger.Info("task deleted", "user", userID, "task", taskID)
	return nil
}
