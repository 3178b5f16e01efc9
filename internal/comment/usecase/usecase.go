package usecase

import (
	"context"

	commentdto "taskboard-backend/internal/comment/dto"
	"taskboard-backend/internal/domain"
)

// CommentUsecase lets task owners discuss a task; only authors edit or delete.
type CommentUsecase interface {
	List(ctx context.Context, userID, taskID string) ([]domain.Comment, error)
	Create(ctx context.Context, userID string, req *commentdto.CreateCommentRequest) (*domain.Comment, error)
	Update(ctx context.Context, userID, id string, req *commentdto.UpdateCommentRequest) (*domain.Comment, error)
	Delete(ctx context.Context, userID, id string) error
}
