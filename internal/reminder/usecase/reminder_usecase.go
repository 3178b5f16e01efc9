package usecase

import (
	"context"

	"taskboard-backend/internal/domain"
	reminderdto "taskboard-backend/internal/reminder/dto"
	"taskboard-backend/internal/reminder/repository"
	taskrepo "taskboard-backend/internal/task/repository"
	"taskboard-backend/pkg/apperror"
	"taskboard-backend/pkg/validation"
)

var (
	errTaskNotFound     = apperror.NotFound("Task not found")
	errReminderNotFound = apperror.NotFound("Reminder not found")
)

type reminderUsecase struct {
	reminderRepo repository.ReminderRepository
	taskRepo     taskrepo.TaskRepository
}

func NewReminderUsecase(reminderRepo repository.ReminderRepository, taskRepo taskrepo.TaskRepository) ReminderUsecase {
	return &reminderUsecase{
		reminderRepo: reminderRepo,
		taskRepo:     taskRepo,
	}
}

func (uc *reminderUsecase) List(ctx context.Context, userID string, taskID *string) ([]domain.Reminder, error) {
	reminders, err := uc.reminderRepo.List(ctx, userID, taskID)
	if err != nil {
		return nil, apperror.Internal("list reminders", err)
	}
	return reminders, nil
}

func (uc *reminderUsecase) Create(ctx context.Context, userID string, req *reminderdto.CreateReminderRequest) (*domain.Reminder, error) {
	at, err := validation.ParseTime(req.DateTime)
	if err != nil {
		return nil, apperror.Validation("dateTime must be an ISO-8601 date-time")
	}
	task, err := uc.taskRepo.FindByID(ctx, userID, req.TaskID)
	if err != nil {
		return nil, apperror.Internal("load task", err)
	}
	if task == nil {
		return nil, errTaskNotFound
	}

	reminder := &domain.Reminder{DateTime: at, Type: req.Type, TaskID: task.ID}
	if err := uc.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, apperror.Internal("create reminder", err)
	}
	return uc.load(ctx, userID, reminder.ID)
}

func (uc *reminderUsecase) load(ctx context.Context, userID, id string) (*domain.Reminder, error) {
	reminder, err := uc.reminderRepo.FindOwned(ctx, userID, id)
	if err != nil {
		return nil, apperror.Internal("load reminder", err)
	}
	if reminder == nil {
		return nil, errReminderNotFound
	}
	return reminder, nil
}

func (uc *reminderUsecase) Update(ctx context.Context, userID, id string, req *reminderdto.UpdateReminderRequest) (*domain.Reminder, error) {
	current, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.DateTime != nil {
		at, err := validation.ParseTime(*req.DateTime)
		if err != nil {
			return nil, apperror.Validation("dateTime must be an ISO-8601 date-time")
		}
		fields["date_time"] = at
		if !at.Equal(current.DateTime) {
			fields["is_sent"] = false
		}
	}
	if req.Type != nil {
		fields["type"] = string(*req.Type)
	}

	affected, err := uc.reminderRepo.Update(ctx, current.ID, fields)
	if err != nil {
		return nil, apperror.Internal("update reminder", err)
	}
	if affected == 0 {
		return nil, errReminderNotFound
	}
	return uc.load(ctx, userID, id)
}

func (uc *reminderUsecase) Delete(ctx context.Context, userID, id string) error {
	current, err := uc.load(ctx, userID, id)
	if err != nil {
		return err
	}
	affected, err := uc.reminderRepo.Delete(ctx, current.ID)
	if err != nil {
		return apperror.Internal("delete reminder", err)
	}
	if affected == 0 {
		return errReminderNotFound
	}
	return nil
}
