package usecase

import (
	"context"
	"fmt"

	"taskboard-backend/internal/activity/repository"
	"taskboard-backend/internal/domain"

	"gorm.io/gorm"
)

// Entry describes one feed line. TaskID and ProjectID may name rows that
// are about to be deleted.
type Entry struct {
	Action    domain.ActivityAction
	UserID    string
	TaskID    *string
	ProjectID *string
	Details   string
}

// Recorder appends activities. Callers pass the transaction of the primary
// write so both commit or roll back together; a nil tx writes directly.
type Recorder interface {
	Record(ctx context.Context, tx *gorm.DB, entry Entry) error
}

type recorder struct {
	repo repository.ActivityRepository
}

func NewRecorder(repo repository.ActivityRepository) Recorder {
	return &recorder{repo: repo}
}

func (r *recorder) Record(ctx context.Context, tx *gorm.DB, entry Entry) error {
	repo := r.repo
	if tx != nil {
		repo = repo.WithTx(tx)
	}

	activity := &domain.Activity{
		Action:    entry.Action,
		UserID:    entry.UserID,
		TaskID:    entry.TaskID,
		ProjectID: entry.ProjectID,
	}
	if entry.Details != "" {
		details := entry.Details
		activity.Details = &details
	}

	if err := repo.Create(ctx, activity); err != nil {
		return fmt.Errorf("record %s: %w", entry.Action, err)
	}
	return nil
}
