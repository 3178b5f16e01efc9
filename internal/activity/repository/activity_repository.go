package repository

import (
	"context"
	"time"

	"taskboard-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFilter narrows the activity feed; nil fields are ignored.
type ListFilter struct {
	TaskID    *string
	ProjectID *string
	Limit     int
	Offset    int
}

// ActivityRepository is append-only: there is no update or delete.
type ActivityRepository interface {
	WithTx(tx *gorm.DB) ActivityRepository
	Create(ctx context.Context, activity *domain.Activity) error
	List(ctx context.Context, userID string, filter ListFilter) ([]domain.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) WithTx(tx *gorm.DB) ActivityRepository {
	return &activityRepository{db: tx}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) List(ctx context.Context, userID string, filter ListFilter) ([]domain.Activity, error) {
	query := r.db.WithContext(ctx).Model(&domain.Activity{}).Where("user_id = ?", userID)
	if filter.TaskID != nil {
		query = query.Where("task_id = ?", *filter.TaskID)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}

	activities := []domain.Activity{}
	err := query.
		Preload("Task").
		Preload("User").
		Order("created_at DESC").
		Order("id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
