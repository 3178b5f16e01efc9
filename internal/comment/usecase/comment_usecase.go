package usecase

import (
	"context"

	activityuc "taskboard-backend/internal/activity/usecase"
	commentdto "taskboard-backend/internal/comment/dto"
	"taskboard-backend/internal/comment/repository"
	"taskboard-backend/internal/domain"
	taskrepo "taskboard-backend/internal/task/repository"
	"taskboard-backend/pkg/apperror"
	"taskboard-backend/pkg/database"

	"gorm.io/gorm"
)

var (
	errTaskNotFound    = apperror.NotFound("Task not found")
	errCommentNotFound = apperror.NotFound("Comment not found or access denied")
)

type commentUsecase struct {
	commentRepo repository.CommentRepository
	taskRepo    taskrepo.TaskRepository
	recorder    activityuc.Recorder
	tx          database.Transactor
}

func NewCommentUsecase(
	commentRepo repository.CommentRepository,
	taskRepo taskrepo.TaskRepository,
	recorder activityuc.Recorder,
	tx database.Transactor,
) CommentUsecase {
	return &commentUsecase{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		recorder:    recorder,
		tx:          tx,
	}
}

func (uc *commentUsecase) ownedTask(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	if taskID == "" {
		return nil, apperror.Validation("Task ID is required")
	}
	task, err := uc.taskRepo.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, apperror.Internal("load task", err)
	}
	if task == nil {
		return nil, errTaskNotFound
	}
	return task, nil
}

func (uc *commentUsecase) List(ctx context.Context, userID, taskID string) ([]domain.Comment, error) {
	task, err := uc.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	comments, err := uc.commentRepo.ListByTask(ctx, task.ID)
	if err != nil {
		return nil, apperror.Internal("list comments", err)
	}
	return comments, nil
}

func (uc *commentUsecase) Create(ctx context.Context, userID string, req *commentdto.CreateCommentRequest) (*domain.Comment, error) {
	task, err := uc.ownedTask(ctx, userID, req.TaskID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{Content: req.Content, TaskID: task.ID, UserID: userID}
	err = uc.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := uc.commentRepo.WithTx(tx).Create(ctx, comment); err != nil {
			return err
		}
		return uc.recorder.Record(ctx, tx, activityuc.Entry{
			Action:    domain.ActionCommentAdded,
			UserID:    userID,
			TaskID:    &task.ID,
			ProjectID: task.ProjectID,
		})
	})
	if err != nil {
		return nil, apperror.Internal("create comment", err)
	}
	return uc.reload(ctx, comment.ID)
}

func (uc *commentUsecase) reload(ctx context.Context, id string) (*domain.Comment, error) {
	comment, err := uc.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("load comment", err)
	}
	if comment == nil {
		return nil, errCommentNotFound
	}
	return comment, nil
}

func (uc *commentUsecase) Update(ctx context.Context, userID, id string, req *commentdto.UpdateCommentRequest) (*domain.Comment, error) {
	fields := map[string]interface{}{}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	affected, err := uc.commentRepo.Update(ctx, userID, id, fields)
	if err != nil {
		return nil, apperror.Internal("update comment", err)
	}
	if affected == 0 {
		return nil, errCommentNotFound
	}
	return uc.reload(ctx, id)
}

func (uc *commentUsecase) Delete(ctx context.Context, userID, id string) error {
	affected, err := uc.commentRepo.Delete(ctx, userID, id)
	if err != nil {
		return apperror.Internal("delete comment", err)
	}
	if affected == 0 {
		return errCommentNotFound
	}
	return nil
}
