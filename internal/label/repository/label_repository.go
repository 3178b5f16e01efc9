package repository

import (
	"context"
	"errors"
	"time"

	"taskboard-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LabelRepository interface {
	WithTx(tx *gorm.DB) LabelRepository
	Create(ctx context.Context, label *domain.Label) error
	FindByID(ctx context.Context, userID, id string) (*domain.Label, error)
	FindByName(ctx context.Context, userID, name string) (*domain.Label, error)
	FindWithTasks(ctx context.Context, userID, id string) (*domain.Label, error)
	List(ctx context.Context, userID string) ([]domain.Label, error)
	Update(ctx context.Context, userID, id string, fields map[string]interface{}) (int64, error)
	// Delete removes the label's task links too; the tasks stay.
	Delete(ctx context.Context, userID, id string) (int64, error)
}

type labelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &labelRepository{db: db}
}

func (r *labelRepository) WithTx(tx *gorm.DB) LabelRepository {
	return &labelRepository{db: tx}
}

func (r *labelRepository) Create(ctx context.Context, label *domain.Label) error {
	label.ID = uuid.New().String()
	now := time.Now().UTC()
	label.CreatedAt = now
	label.UpdatedAt = now
	if label.Color == "" {
		label.Color = domain.DefaultLabelColor
	}
	return r.db.WithContext(ctx).Create(label).Error
}

func (r *labelRepository) first(ctx context.Context, db *gorm.DB) (*domain.Label, error) {
	var label domain.Label
	if err := db.WithContext(ctx).First(&label).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &label, nil
}

func (r *labelRepository) FindByID(ctx context.Context, userID, id string) (*domain.Label, error) {
	return r.first(ctx, r.db.Where("id = ? AND user_id = ?", id, userID))
}

func (r *labelRepository) FindByName(ctx context.Context, userID, name string) (*domain.Label, error) {
	return r.first(ctx, r.db.Where("name = ? AND user_id = ?", name, userID))
}

func (r *labelRepository) FindWithTasks(ctx context.Context, userID, id string) (*domain.Label, error) {
	return r.first(ctx, r.db.
		Preload("TaskLabels.Task").
		Where("id = ? AND user_id = ?", id, userID))
}

func (r *labelRepository) List(ctx context.Context, userID string) ([]domain.Label, error) {
	labels := []domain.Label{}
	err := r.db.WithContext(ctx).
		Preload("TaskLabels.Task").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&labels).Error
	if err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *labelRepository) Update(ctx context.Context, userID, id string, fields map[string]interface{}) (int64, error) {
	fields["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&domain.Label{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *labelRepository) Delete(ctx context.Context, userID, id string) (int64, error) {
	db := r.db.WithContext(ctx)
	if err := db.Where("label_id = ?", id).Delete(&domain.TaskLabel{}).Error; err != nil {
		return 0, err
	}
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Label{})
	return res.RowsAffected, res.Error
}
