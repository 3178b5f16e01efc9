package repository

import (
	"context"
	"time"

	"taskboard-backend/internal/domain"
	"taskboard-backend/internal/task/query"

	"gorm.io/gorm"
)

// TaskRepository defines task data access. Every method is scoped to the
// owning user; lookups return (nil, nil) when nothing matches.
type TaskRepository interface {
	WithTx(tx *gorm.DB) TaskRepository

	Create(ctx context.Context, task *domain.Task) error

	// FindByID loads the bare row
	FindByID(ctx context.Context, userID, id string) (*domain.Task, error)

	// FindDetailed loads the task with project, labels, subtasks, reminders and attachments
	FindDetailed(ctx context.Context, userID, id string) (*domain.Task, error)

	// List applies the filter and the fixed sort order. Search is not applied here.
	List(ctx context.Context, userID string, filter query.Filter, now time.Time) ([]domain.Task, error)

	// ListUnarchived feeds the views endpoint
	ListUnarchived(ctx context.Context, userID string) ([]domain.Task, error)

	Update(ctx context.Context, userID, id string, fields map[string]interface{}) (int64, error)

	// Delete removes the task with its labels links, comments, reminders and
	// attachment rows, and detaches its subtasks.
	Delete(ctx context.Context, userID, id string) (int64, error)
}
