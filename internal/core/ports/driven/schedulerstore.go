package driven

import (
	"context"

	"github.com/openlegis/lexfeed/internal/core/domain"
)

// SchedulerStore persists background task state and execution history.
type SchedulerStore interface {
	// GetTask retrieves a task by ID.
	// Returns nil and no error if the task does not exist.
	GetTask(ctx context.Context, taskID string) (*domain.ScheduledTask, error)

	// ListTasks returns all scheduled tasks.
	ListTasks(ctx context.Context) ([]domain.ScheduledTask, error)

	// SaveTask creates or updates a task's state.
	SaveTask(ctx context.Context, task *domain.ScheduledTask) error

	// RecordResult logs a task execution result.
	RecordResult(ctx context.Context, result *domain.TaskResult) error

	// PruneHistory removes old results, keeping the most recent 'keep'
	// per task.
	PruneHistory(ctx context.Context, keep int) error
}
