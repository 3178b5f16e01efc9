package repository

import (
	"context"
	"errors"
	"time"

	"taskboard-backend/internal/domain"
	"taskboard-backend/internal/task/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) WithTx(tx *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: tx}
}

func (r *gormTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error
}

func (r *gormTaskRepository) FindByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	return first(r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID))
}

func (r *gormTaskRepository) FindDetailed(ctx context.Context, userID, id string) (*domain.Task, error) {
	return first(r.db.WithContext(ctx).
		Preload("Project").
		Preload("TaskLabels.Label").
		Preload("Subtasks", func(db *gorm.DB) *gorm.DB {
			return db.Where("user_id = ?", userID).Order(query.SortOrder)
		}).
		Preload("Reminders", func(db *gorm.DB) *gorm.DB {
			return db.Order("date_time ASC")
		}).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ? AND user_id = ?", id, userID))
}

func first(db *gorm.DB) (*domain.Task, error) {
	var task domain.Task
	if err := db.First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) List(ctx context.Context, userID string, filter query.Filter, now time.Time) ([]domain.Task, error) {
	tasks := []domain.Task{}
	err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Preload("Project").
		Preload("TaskLabels.Label").
		Where("tasks.user_id = ?", userID).
		Scopes(query.Scope(filter, now)).
		Order(query.SortOrder).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *gormTaskRepository) ListUnarchived(ctx context.Context, userID string) ([]domain.Task, error) {
	tasks := []domain.Task{}
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("TaskLabels.Label").
		Where("user_id = ? AND is_archived = ?", userID, false).
		Order(query.SortOrder).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *gormTaskRepository) Update(ctx context.Context, userID, id string, fields map[string]interface{}) (int64, error) {
	fields["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&domain.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *gormTaskRepository) Delete(ctx context.Context, userID, id string) (int64, error) {
	db := r.db.WithContext(ctx)
	for _, model := range []interface{}{&domain.TaskLabel{}, &domain.Comment{}, &domain.Reminder{}, &domain.Attachment{}} {
		if err := db.Where("task_id = ?", id).Delete(model).Error; err != nil {
			return 0, err
		}
	}
	if err := db.Model(&domain.Task{}).
		Where("parent_task_id = ? AND user_id = ?", id, userID).
		Update("parent_task_id", nil).Error; err != nil {
		return 0, err
	}
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Task{})
	return res.RowsAffected, res.Error
}
