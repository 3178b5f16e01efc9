package repository

import (
	"context"
	"errors"
	"time"

	"taskboard-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository scopes mutations to the author.
type CommentRepository interface {
	WithTx(tx *gorm.DB) CommentRepository
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error)
	Update(ctx context.Context, userID, id string, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, userID, id string) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) WithTx(tx *gorm.DB) CommentRepository {
	return &commentRepository{db: tx}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	comment.ID = uuid.New().String()
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	return r.db.WithContext(ctx).Omit("User").Create(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	comments := []domain.Comment{}
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, userID, id string, fields map[string]interface{}) (int64, error) {
	fields["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&domain.Comment{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *commentRepository) Delete(ctx context.Context, userID, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Comment{})
	return res.RowsAffected, res.Error
}
