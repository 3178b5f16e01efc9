package repository

import (
	"context"
	"errors"
	"time"

	"taskboard-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskLabelRepository trusts callers to have checked task and label ownership.
type TaskLabelRepository interface {
	WithTx(tx *gorm.DB) TaskLabelRepository
	Create(ctx context.Context, taskLabel *domain.TaskLabel) error
	Find(ctx context.Context, taskID, labelID string) (*domain.TaskLabel, error)
	Delete(ctx context.Context, taskID, labelID string) (int64, error)
}

type taskLabelRepository struct {
	db *gorm.DB
}

func NewTaskLabelRepository(db *gorm.DB) TaskLabelRepository {
	return &taskLabelRepository{db: db}
}

func (r *taskLabelRepository) WithTx(tx *gorm.DB) TaskLabelRepository {
	return &taskLabelRepository{db: tx}
}

func (r *taskLabelRepository) Create(ctx context.Context, taskLabel *domain.TaskLabel) error {
	taskLabel.ID = uuid.New().String()
	taskLabel.CreatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Omit("Label", "Task").Create(taskLabel).Error
}

func (r *taskLabelRepository) Find(ctx context.Context, taskID, labelID string) (*domain.TaskLabel, error) {
	var taskLabel domain.TaskLabel
	err := r.db.WithContext(ctx).
		Where("task_id = ? AND label_id = ?", taskID, labelID).
		First(&taskLabel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &taskLabel, nil
}

func (r *taskLabelRepository) Delete(ctx context.Context, taskID, labelID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("task_id = ? AND label_id = ?", taskID, labelID).
		Delete(&domain.TaskLabel{})
	return res.RowsAffected, res.Error
}
