package usecase

import (
	"context"
	"errors"

	activityuc "taskboard-backend/internal/activity/usecase"
	"taskboard-backend/internal/domain"
	labeldto "taskboard-backend/internal/label/dto"
	"taskboard-backend/internal/label/repository"
	taskrepo "taskboard-backend/internal/task/repository"
	"taskboard-backend/pkg/apperror"
	"taskboard-backend/pkg/database"

	"gorm.io/gorm"
)

var (
	errLabelNotFound      = apperror.NotFound("Label not found")
	errTaskNotFound       = apperror.NotFound("Task not found")
	errLabelExists        = apperror.Conflict("Label already exists")
	errAlreadyAssigned    = apperror.Conflict("Label already assigned to task")
	errAssignmentNotFound = apperror.NotFound("Label assignment not found")
	errAssignmentIDs      = apperror.Validation("Task ID and Label ID are required")
)

type labelUsecase struct {
	labelRepo     repository.LabelRepository
	taskLabelRepo repository.TaskLabelRepository
	taskRepo      taskrepo.TaskRepository
	recorder      activityuc.Recorder
	tx            database.Transactor
}

func NewLabelUsecase(
	labelRepo repository.LabelRepository,
	taskLabelRepo repository.TaskLabelRepository,
	taskRepo taskrepo.TaskRepository,
	recorder activityuc.Recorder,
	tx database.Transactor,
) LabelUsecase {
	return &labelUsecase{
		labelRepo:     labelRepo,
		taskLabelRepo: taskLabelRepo,
		taskRepo:      taskRepo,
		recorder:      recorder,
		tx:            tx,
	}
}

func (uc *labelUsecase) List(ctx context.Context, userID string) ([]domain.Label, error) {
	labels, err := uc.labelRepo.List(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("list labels", err)
	}
	return labels, nil
}

func (uc *labelUsecase) Get(ctx context.Context, userID, id string) (*domain.Label, error) {
	label, err := uc.labelRepo.FindWithTasks(ctx, userID, id)
	if err != nil {
		return nil, apperror.Internal("get label", err)
	}
	if label == nil {
		return nil, errLabelNotFound
	}
	return label, nil
}

func (uc *labelUsecase) Create(ctx context.Context, userID string, req *labeldto.CreateLabelRequest) (*domain.Label, error) {
	existing, err := uc.labelRepo.FindByName(ctx, userID, req.Name)
	if err != nil {
		return nil, apperror.Internal("load label", err)
	}
	if existing != nil {
		return nil, errLabelExists
	}

	label := &domain.Label{Name: req.Name, Color: req.Color, UserID: userID}
	if err := uc.labelRepo.Create(ctx, label); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errLabelExists
		}
		return nil, apperror.Internal("create label", err)
	}
	return label, nil
}

func (uc *labelUsecase) Update(ctx context.Context, userID, id string, req *labeldto.UpdateLabelRequest) (*domain.Label, error) {
	label, err := uc.labelRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, apperror.Internal("load label", err)
	}
	if label == nil {
		return nil, errLabelNotFound
	}
	if req.Name != nil && *req.Name != label.Name {
		clash, err := uc.labelRepo.FindByName(ctx, userID, *req.Name)
		if err != nil {
			return nil, apperror.Internal("load label", err)
		}
		if clash != nil {
			return nil, errLabelExists
		}
	}

	affected, err := uc.labelRepo.Update(ctx, userID, id, req.Fields())
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errLabelExists
		}
		return nil, apperror.Internal("update label", err)
	}
	if affected == 0 {
		return nil, errLabelNotFound
	}
	return uc.Get(ctx, userID, id)
}

func (uc *labelUsecase) Delete(ctx context.Context, userID, id string) error {
	label, err := uc.labelRepo.FindByID(ctx, userID, id)
	if err != nil {
		return apperror.Internal("load label", err)
	}
	if label == nil {
		return errLabelNotFound
	}

	err = uc.tx.Transaction(ctx, func(tx *gorm.DB) error {
		affected, err := uc.labelRepo.WithTx(tx).Delete(ctx, userID, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errLabelNotFound
		}
		return nil
	})
	return apperror.Wrap("delete label", err)
}

// owned loads the task and label of an assignment request, both scoped to userID.
func (uc *labelUsecase) owned(ctx context.Context, userID string, req *labeldto.TaskLabelRequest) (*domain.Task, *domain.Label, error) {
	if req.TaskID == "" || req.LabelID == "" {
		return nil, nil, errAssignmentIDs
	}
	task, err := uc.taskRepo.FindByID(ctx, userID, req.TaskID)
	if err != nil {
		return nil, nil, apperror.Internal("load task", err)
	}
	if task == nil {
		return nil, nil, errTaskNotFound
	}
	label, err := uc.labelRepo.FindByID(ctx, userID, req.LabelID)
	if err != nil {
		return nil, nil, apperror.Internal("load label", err)
	}
	if label == nil {
		return nil, nil, errLabelNotFound
	}
	return task, label, nil
}

func (uc *labelUsecase) Assign(ctx context.Context, userID string, req *labeldto.TaskLabelRequest) (*domain.TaskLabel, error) {
	task, label, err := uc.owned(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	existing, err := uc.taskLabelRepo.Find(ctx, task.ID, label.ID)
	if err != nil {
		return nil, apperror.Internal("load assignment", err)
	}
	if existing != nil {
		return nil, errAlreadyAssigned
	}

	taskLabel := &domain.TaskLabel{TaskID: task.ID, LabelID: label.ID}
	err = uc.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := uc.taskLabelRepo.WithTx(tx).Create(ctx, taskLabel); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errAlreadyAssigned
			}
			return err
		}
		return uc.recorder.Record(ctx, tx, activityuc.Entry{
			Action:    domain.ActionLabelAdded,
			UserID:    userID,
			TaskID:    &task.ID,
			ProjectID: task.ProjectID,
			Details:   label.Name,
		})
	})
	if err != nil {
		return nil, apperror.Wrap("assign label", err)
	}
	taskLabel.Label = label
	return taskLabel, nil
}

func (uc *labelUsecase) Unassign(ctx context.Context, userID string, req *labeldto.TaskLabelRequest) error {
	task, label, err := uc.owned(ctx, userID, req)
	if err != nil {
		return err
	}

	err = uc.tx.Transaction(ctx, func(tx *gorm.DB) error {
		affected, err := uc.taskLabelRepo.WithTx(tx).Delete(ctx, task.ID, label.ID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errAssignmentNotFound
		}
		return uc.recorder.Record(ctx, tx, activityuc.Entry{
			Action:    domain.ActionLabelRemoved,
			UserID:    userID,
			TaskID:    &task.ID,
			ProjectID: task.ProjectID,
			Details:   label.Name,
		})
	})
	return apperror.Wrap("unassign label", err)
}
