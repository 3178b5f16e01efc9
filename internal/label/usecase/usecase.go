package usecase

import (
	"context"

	"taskboard-backend/internal/domain"
	labeldto "taskboard-backend/internal/label/dto"
)

type LabelUsecase interface {
	List(ctx context.Context, userID string) ([]domain.Label, error)
	Get(ctx context.Context, userID, id string) (*domain.Label, error)
	Create(ctx context.Context, userID string, req *labeldto.CreateLabelRequest) (*domain.Label, error)
	Update(ctx context.Context, userID, id string, req *labeldto.UpdateLabelRequest) (*domain.Label, error)
	Delete(ctx context.Context, userID, id string) error

	// Assign links a label to a task; both must belong to the caller
	Assign(ctx context.Context, userID string, req *labeldto.TaskLabelRequest) (*domain.TaskLabel, error)
	Unassign(ctx context.Context, userID string, req *labeldto.TaskLabelRequest) error
}
