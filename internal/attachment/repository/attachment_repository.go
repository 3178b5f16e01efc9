package repository

import (
	"context"
	"errors"
	"time"

	"taskboard-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentRepository resolves ownership through the attachment's task.
type AttachmentRepository interface {
	WithTx(tx *gorm.DB) AttachmentRepository
	Create(ctx context.Context, attachment *domain.Attachment) error
	FindOwned(ctx context.Context, userID, id string) (*domain.Attachment, error)
	ListByTask(ctx context.Context, taskID string) ([]domain.Attachment, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type attachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) WithTx(tx *gorm.DB) AttachmentRepository {
	return &attachmentRepository{db: tx}
}

func (r *attachmentRepository) Create(ctx context.Context, attachment *domain.Attachment) error {
	attachment.ID = uuid.New().String()
	attachment.CreatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Create(attachment).Error
}

func (r *attachmentRepository) FindOwned(ctx context.Context, userID, id string) (*domain.Attachment, error) {
	var attachment domain.Attachment
	err := r.db.WithContext(ctx).
		Select("attachments.*").
		Joins("JOIN tasks ON tasks.id = attachments.task_id AND tasks.user_id = ?", userID).
		Where("attachments.id = ?", id).
		First(&attachment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attachment, nil
}

func (r *attachmentRepository) ListByTask(ctx context.Context, taskID string) ([]domain.Attachment, error) {
	attachments := []domain.Attachment{}
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at DESC").
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

func (r *attachmentRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Attachment{})
	return res.RowsAffected, res.Error
}
