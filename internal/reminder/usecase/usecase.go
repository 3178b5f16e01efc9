package usecase

import (
	"context"

	"taskboard-backend/internal/domain"
	reminderdto "taskboard-backend/internal/reminder/dto"
)

type ReminderUsecase interface {
	List(ctx context.Context, userID string, taskID *string) ([]domain.Reminder, error)
	Create(ctx context.Context, userID string, req *reminderdto.CreateReminderRequest) (*domain.Reminder, error)
	// Update re-arms the reminder when its date changes
	Update(ctx context.Context, userID, id string, req *reminderdto.UpdateReminderRequest) (*domain.Reminder, error)
	Delete(ctx context.Context, userID, id string) error
}
