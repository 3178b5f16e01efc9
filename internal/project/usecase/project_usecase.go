package usecase

import (
	"context"

	activityuc "taskboard-backend/internal/activity/usecase"
	"taskboard-backend/internal/domain"
	projectdto "taskboard-backend/internal/project/dto"
	"taskboard-backend/internal/project/repository"
	"taskboard-backend/pkg/apperror"
	"taskboard-backend/pkg/database"

	"gorm.io/gorm"
)

var errProjectNotFound = apperror.NotFound("Project not found")

type projectUsecase struct {
	projectRepo repository.ProjectRepository
	recorder    activityuc.Recorder
	tx          database.Transactor
}

func NewProjectUsecase(projectRepo repository.ProjectRepository, recorder activityuc.Recorder, tx database.Transactor) ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		recorder:    recorder,
		tx:          tx,
	}
}

func (uc *projectUsecase) List(ctx context.Context, userID string, filter repository.ListFilter) ([]domain.Project, error) {
	projects, err := uc.projectRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, apperror.Internal("list projects", err)
	}
	return projects, nil
}

func (uc *projectUsecase) Get(ctx context.Context, userID, id string) (*domain.Project, error) {
	project, err := uc.projectRepo.FindWithTasks(ctx, userID, id)
	if err != nil {
		return nil, apperror.Internal("get project", err)
	}
	if project == nil {
		return nil, errProjectNotFound
	}
	return project, nil
}

func (uc *projectUsecase) Create(ctx context.Context, userID string, req *projectdto.CreateProjectRequest) (*domain.Project, error) {
	project := &domain.Project{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		UserID:      userID,
	}
	if req.IsFavorite != nil {
		project.IsFavorite = *req.IsFavorite
	}

	err := uc.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := uc.projectRepo.WithTx(tx).Create(ctx, project); err != nil {
			return err
		}
		return uc.recorder.Record(ctx, tx, activityuc.Entry{
			Action:    domain.ActionProjectCreated,
			UserID:    userID,
			ProjectID: &project.ID,
			Details:   project.Name,
		})
	})
	if err != nil {
		return nil, apperror.Internal("create project", err)
	}
	return project, nil
}

func (uc *projectUsecase) Update(ctx context.Context, userID, id string, req *projectdto.UpdateProjectRequest) (*domain.Project, error) {
	before, err := uc.projectRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, apperror.Internal("load project", err)
	}
	if before == nil {
		return nil, errProjectNotFound
	}

	var after *domain.Project
	err = uc.tx.Transaction(ctx, func(tx *gorm.DB) error {
		repo := uc.projectRepo.WithTx(tx)
		affected, err := repo.Update(ctx, userID, id, req.Fields())
		if err != nil {
			return err
		}
		if affected == 0 {
			return errProjectNotFound
		}
		if after, err = repo.FindByID(ctx, userID, id); err != nil {
			return err
		}
		if after == nil {
			return errProjectNotFound
		}
		return uc.recorder.Record(ctx, tx, activityuc.Entry{
			Action:    domain.ProjectUpdateAction(before, after),
			UserID:    userID,
			ProjectID: &after.ID,
			Details:   after.Name,
		})
	})
	if err != nil {
		return nil, apperror.Wrap("update project", err)
	}
	return uc.Get(ctx, userID, id)
}

func (uc *projectUsecase) Delete(ctx context.Context, userID, id string) error {
	project, err := uc.projectRepo.FindByID(ctx, userID, id)
	if err != nil {
		return apperror.Internal("load project", err)
	}
	if project == nil {
		return errProjectNotFound
	}

	err = uc.tx.Transaction(ctx, func(tx *gorm.DB) error {
		affected, err := uc.projectRepo.WithTx(tx).Delete(ctx, userID, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errProjectNotFound
		}
		return uc.recorder.Record(ctx, tx, activityuc.Entry{
			Action:    domain.ActionProjectDeleted,
			UserID:    userID,
			ProjectID: &project.ID,
			Details:   project.Name,
		})
	})
	return apperror.Wrap("delete project", err)
}
