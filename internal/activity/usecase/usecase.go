package usecase

import (
	"context"

	"taskboard-backend/internal/activity/repository"
	"taskboard-backend/internal/domain"
	"taskboard-backend/pkg/apperror"
)

const DefaultLimit = 50

// ActivityUsecase serves the read side of the feed.
type ActivityUsecase interface {
	List(ctx context.Context, userID string, filter repository.ListFilter) ([]domain.Activity, error)
}

type activityUsecase struct {
	repo repository.ActivityRepository
}

func NewActivityUsecase(repo repository.ActivityRepository) ActivityUsecase {
	return &activityUsecase{repo: repo}
}

func (uc *activityUsecase) List(ctx context.Context, userID string, filter repository.ListFilter) ([]domain.Activity, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	activities, err := uc.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, apperror.Internal("list activities", err)
	}
	return activities, nil
}
