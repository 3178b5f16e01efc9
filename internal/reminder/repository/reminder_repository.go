package repository

import (
	"context"
	"errors"
	"time"

	"taskboard-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderRepository resolves ownership through the reminder's task.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *domain.Reminder) error
	FindOwned(ctx context.Context, userID, id string) (*domain.Reminder, error)
	List(ctx context.Context, userID string, taskID *string) ([]domain.Reminder, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)

	// FindDue returns unsent NOTIFICATION reminders at or before now whose
	// task is still open, with the task loaded.
	FindDue(ctx context.Context, now time.Time, limit int) ([]domain.Reminder, error)
	// MarkSent reports false when another run already marked it.
	MarkSent(ctx context.Context, id string) (bool, error)
}

type reminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) owned(ctx context.Context, userID string) *gorm.DB {
	return r.db.WithContext(ctx).Model(&domain.Reminder{}).
		Select("reminders.*").
		Joins("JOIN tasks ON tasks.id = reminders.task_id AND tasks.user_id = ?", userID)
}

func (r *reminderRepository) Create(ctx context.Context, reminder *domain.Reminder) error {
	reminder.ID = uuid.New().String()
	now := time.Now().UTC()
	reminder.CreatedAt = now
	reminder.UpdatedAt = now
	if reminder.Type == "" {
		reminder.Type = domain.ReminderNotification
	}
	return r.db.WithContext(ctx).Omit("Task").Create(reminder).Error
}

func (r *reminderRepository) FindOwned(ctx context.Context, userID, id string) (*domain.Reminder, error) {
	var reminder domain.Reminder
	err := r.owned(ctx, userID).
		Preload("Task").
		Where("reminders.id = ?", id).
		First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) List(ctx context.Context, userID string, taskID *string) ([]domain.Reminder, error) {
	q := r.owned(ctx, userID).Preload("Task")
	if taskID != nil {
		q = q.Where("reminders.task_id = ?", *taskID)
	}
	reminders := []domain.Reminder{}
	if err := q.Order("reminders.date_time ASC").Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	fields["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&domain.Reminder{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *reminderRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Reminder{})
	return res.RowsAffected, res.Error
}

func (r *reminderRepository) FindDue(ctx context.Context, now time.Time, limit int) ([]domain.Reminder, error) {
	var reminders []domain.Reminder
	err := r.db.WithContext(ctx).Model(&domain.Reminder{}).
		Select("reminders.*").
		Joins("JOIN tasks ON tasks.id = reminders.task_id").
		Preload("Task").
		Where("reminders.type = ? AND reminders.is_sent = ? AND reminders.date_time <= ?",
			domain.ReminderNotification, false, now.UTC()).
		Where("tasks.completed = ?", false).
		Order("reminders.date_time ASC").
		Limit(limit).
		Find(&reminders).Error
	return reminders, err
}

func (r *reminderRepository) MarkSent(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Reminder{}).
		Where("id = ? AND is_sent = ?", id, false).
		Updates(map[string]interface{}{
			"is_sent":    true,
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected > 0, res.Error
}
