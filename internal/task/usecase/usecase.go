package usecase

import (
	"context"
	"time"

	"taskboard-backend/internal/domain"
	taskdto "taskboard-backend/internal/task/dto"
	"taskboard-backend/internal/task/query"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// List applies the filter; Search is matched fuzzily on title and description
	List(ctx context.Context, userID string, filter query.Filter) ([]domain.Task, error)

	// Get returns the task with its project, labels, subtasks, reminders and attachments
	Get(ctx context.Context, userID, id string) (*domain.Task, error)

	Create(ctx context.Context, userID string, req *taskdto.CreateTaskRequest) (*domain.Task, error)

	// Update records exactly one activity chosen by what changed
	Update(ctx context.Context, userID, id string, req *taskdto.UpdateTaskRequest) (*domain.Task, error)

	Delete(ctx context.Context, userID, id string) error

	// Views groups open tasks into overdue/today/tomorrow/nextWeek/later/inbox
	Views(ctx context.Context, userID string) (*taskdto.ViewsResponse, error)

	// Import creates a task tree from a YAML document in one transaction
	Import(ctx context.Context, userID string, data []byte) (*taskdto.ImportResponse, error)

	// SetAttachmentStorage lets Delete remove stored files after commit
	SetAttachmentStorage(storage FileRemover)

	SetClock(now func() time.Time)
}

// FileRemover deletes a stored attachment file.
type FileRemover interface {
	Remove(path string) error
}
