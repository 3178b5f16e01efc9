package usecase

import (
	"context"

	"taskboard-backend/internal/domain"
	projectdto "taskboard-backend/internal/project/dto"
	"taskboard-backend/internal/project/repository"
)

// ProjectUsecase owns project CRUD and its activity trail
type ProjectUsecase interface {
	List(ctx context.Context, userID string, filter repository.ListFilter) ([]domain.Project, error)
	Get(ctx context.Context, userID, id string) (*domain.Project, error)
	Create(ctx context.Context, userID string, req *projectdto.CreateProjectRequest) (*domain.Project, error)
	Update(ctx context.Context, userID, id string, req *projectdto.UpdateProjectRequest) (*domain.Project, error)
	Delete(ctx context.Context, userID, id string) error
}
