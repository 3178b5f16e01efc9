package usecase

import (
	"context"
	"log"
	"time"

	activityuc "taskboard-backend/internal/activity/usecase"
	"taskboard-backend/internal/domain"
	labelrepo "taskboard-backend/internal/label/repository"
	projectrepo "taskboard-backend/internal/project/repository"
	taskdto "taskboard-backend/internal/task/dto"
	"taskboard-backend/internal/task/importer"
	"taskboard-backend/internal/task/query"
	"taskboard-backend/internal/task/repository"
	"taskboard-backend/pkg/apperror"
	"taskboard-backend/pkg/database"
	"taskboard-backend/pkg/fuzzy"
	"taskboard-backend/pkg/validation"

	"gorm.io/gorm"
)

// maxDepth bounds the parent walk used to reject cycles.
const maxDepth = 100

var (
	errTaskNotFound    = apperror.NotFound("Task not found")
	errProjectNotFound = apperror.NotFound("Project not found")
	errParentNotFound  = apperror.NotFound("Parent task not found")
)

type taskUsecase struct {
	taskRepo      repository.TaskRepository
	projectRepo   projectrepo.ProjectRepository
	labelRepo     labelrepo.LabelRepository
	taskLabelRepo labelrepo.TaskLabelRepository
	recorder      activityuc.Recorder
	tx            database.Transactor
	location      *time.Location
	now           func() time.Time
	storage       FileRemover
}

// NewTaskUsecase creates a new TaskUsecase. Date buckets are computed in location.
func NewTaskUsecase(
	taskRepo repository.TaskRepository,
	projectRepo projectrepo.ProjectRepository,
	labelRepo labelrepo.LabelRepository,
	taskLabelRepo labelrepo.TaskLabelRepository,
	recorder activityuc.Recorder,
	tx database.Transactor,
	location *time.Location,
) TaskUsecase {
	if location == nil {
		location = time.Local
	}
	return &taskUsecase{
		taskRepo:      taskRepo,
		projectRepo:   projectRepo,
		labelRepo:     labelRepo,
		taskLabelRepo: taskLabelRepo,
		recorder:      recorder,
		tx:            tx,
		location:      location,
		now:           time.Now,
	}
}

func (uc *taskUsecase) SetAttachmentStorage(storage FileRemover) {
	uc.storage = storage
}

func (uc *taskUsecase) SetClock(now func() time.Time) {
	uc.now = now
}

func (uc *taskUsecase) localNow() time.Time {
	return uc.now().In(uc.location)
}

func (uc *taskUsecase) List(ctx context.Context, userID string, filter query.Filter) ([]domain.Task, error) {
	tasks, err := uc.taskRepo.List(ctx, userID, filter, uc.localNow())
	if err != nil {
		return nil, apperror.Internal("list tasks", err)
	}
	if filter.Search == nil {
		return tasks, nil
	}

	matched := tasks[:0]
	for _, task := range tasks {
		if fuzzy.MatchTask(*filter.Search, task.Title, task.Description) {
			matched = append(matched, task)
		}
	}
	return matched, nil
}

func (uc *taskUsecase) Get(ctx context.Context, userID, id string) (*domain.Task, error) {
	task, err := uc.taskRepo.FindDetailed(ctx, userID, id)
	if err != nil {
		return nil, apperror.Internal("get task", err)
	}
	if task == nil {
		return nil, errTaskNotFound
	}
	return task, nil
}

func (uc *taskUsecase) Create(ctx context.Context, userID string, req *taskdto.CreateTaskRequest) (*domain.Task, error) {
	task := &domain.Task{
		Title:          req.Title,
		Description:    req.Description,
		Priority:       req.Priority,
		UserID:         userID,
		RecurringType:  req.RecurringType,
		RecurringValue: req.RecurringValue,
	}
	if req.IsRecurring != nil {
		task.IsRecurring = *req.IsRecurring
	}
	if req.DueDate != nil {
		due, err := validation.ParseTime(*req.DueDate)
		if err != nil {
			return nil, apperror.Validation("dueDate must be an ISO-8601 date-time")
		}
		task.DueDate = &due
	}

	if req.ProjectID != nil && *req.ProjectID != "" {
		if err := uc.checkProject(ctx, userID, *req.ProjectID); err != nil {
			return nil, err
		}
		task.ProjectID = req.ProjectID
	}
	if req.ParentTaskID != nil && *req.ParentTaskID != "" {
		parent, err := uc.taskRepo.FindByID(ctx, userID, *req.ParentTaskID)
		if err != nil {
			return nil, apperror.Internal("load parent task", err)
		}
		if parent == nil {
			return nil, errParentNotFound
		}
		task.ParentTaskID = req.ParentTaskID
	}

	err := uc.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := uc.taskRepo.WithTx(tx).Create(ctx, task); err != nil {
			return err
		}
		return uc.recorder.Record(ctx, tx, activityuc.Entry{
			Action:    domain.ActionTaskCreated,
			UserID:    userID,
			TaskID:    &task.ID,
			ProjectID: task.ProjectID,
			Details:   task.Title,
		})
	})
	if err != nil {
		return nil, apperror.Internal("create task", err)
	}
	return uc.Get(ctx, userID, task.ID)
}

func (uc *taskUsecase) checkProject(ctx context.Context, userID, projectID string) error {
	project, err := uc.projectRepo.FindByID(ctx, userID, projectID)
	if err != nil {
		return apperror.Internal("load project", err)
	}
	if project == nil {
		return errProjectNotFound
	}
	return nil
}

// checkParent rejects a parent that is missing, the task itself, or one of its descendants.
func (uc *taskUsecase) checkParent(ctx context.Context, userID, taskID, parentID string) error {
	if parentID == taskID {
		return apperror.Validation("A task cannot be its own parent")
	}
	current := parentID
	for depth := 0; depth < maxDepth; depth++ {
		node, err := uc.taskRepo.FindByID(ctx, userID, current)
		if err != nil {
			return apperror.Internal("load parent task", err)
		}
		if node == nil {
			if depth == 0 {
				return errParentNotFound
			}
			return nil
		}
		if node.ParentTaskID == nil {
			return nil
		}
		if *node.ParentTaskID == taskID {
			return apperror.Validation("A task cannot be nested under its own subtask")
		}
		current = *node.ParentTaskID
	}
	return apperror.Validation("Subtasks are nested too deeply")
}

func (uc *taskUsecase) updateFields(ctx context.Context, userID, id string, req *taskdto.UpdateTaskRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Priority != nil {
		fields["priority"] = string(*req.Priority)
	}
	if req.Completed != nil {
		fields["completed"] = *req.Completed
	}
	if req.IsArchived != nil {
		fields["is_archived"] = *req.IsArchived
	}
	if req.IsRecurring != nil {
		fields["is_recurring"] = *req.IsRecurring
	}
	if req.RecurringType != nil {
		fields["recurring_type"] = string(*req.RecurringType)
	}
	if req.RecurringValue != nil {
		fields["recurring_value"] = *req.RecurringValue
	}

	if req.DueDate != nil {
		if *req.DueDate == "" {
			fields["due_date"] = nil
		} else {
			due, err := validation.ParseTime(*req.DueDate)
			if err != nil {
				return nil, apperror.Validation("dueDate must be an ISO-8601 date-time or empty")
			}
			fields["due_date"] = due
		}
	}

	if req.ProjectID != nil {
		if *req.ProjectID == "" {
			fields["project_id"] = nil
		} else {
			if err := uc.checkProject(ctx, userID, *req.ProjectID); err != nil {
				return nil, err
			}
			fields["project_id"] = *req.ProjectID
		}
	}

	if req.ParentTaskID != nil {
		if *req.ParentTaskID == "" {
			fields["parent_task_id"] = nil
		} else {
			if err := uc.checkParent(ctx, userID, id, *req.ParentTaskID); err != nil {
				return nil, err
			}
			fields["parent_task_id"] = *req.ParentTaskID
		}
	}
	return fields, nil
}

func (uc *taskUsecase) Update(ctx context.Context, userID, id string, req *taskdto.UpdateTaskRequest) (*domain.Task, error) {
	before, err := uc.taskRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, apperror.Internal("load task", err)
	}
	if before == nil {
		return nil, errTaskNotFound
	}

	fields, err := uc.updateFields(ctx, userID, id, req)
	if err != nil {
		return nil, err
	}

	err = uc.tx.Transaction(ctx, func(tx *gorm.DB) error {
		repo := uc.taskRepo.WithTx(tx)
		affected, err := repo.Update(ctx, userID, id, fields)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errTaskNotFound
		}
		after, err := repo.FindByID(ctx, userID, id)
		if err != nil {
			return err
		}
		if after == nil {
			return errTaskNotFound
		}
		return uc.recorder.Record(ctx, tx, activityuc.Entry{
			Action:    domain.TaskUpdateAction(before, after),
			UserID:    userID,
			TaskID:    &after.ID,
			ProjectID: after.ProjectID,
			Details:   after.Title,
		})
	})
	if err != nil {
		return nil, apperror.Wrap("update task", err)
	}
	return uc.Get(ctx, userID, id)
}

func (uc *taskUsecase) Delete(ctx context.Context, userID, id string) error {
	task, err := uc.taskRepo.FindDetailed(ctx, userID, id)
	if err != nil {
		return apperror.Internal("load task", err)
	}
	if task == nil {
		return errTaskNotFound
	}

	err = uc.tx.Transaction(ctx, func(tx *gorm.DB) error {
		affected, err := uc.taskRepo.WithTx(tx).Delete(ctx, userID, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errTaskNotFound
		}
		return uc.recorder.Record(ctx, tx, activityuc.Entry{
			Action:    domain.ActionTaskDeleted,
			UserID:    userID,
			TaskID:    &task.ID,
			ProjectID: task.ProjectID,
			Details:   task.Title,
		})
	})
	if err != nil {
		return apperror.Wrap("delete task", err)
	}

	if uc.storage != nil {
		for _, a := range task.Attachments {
			if err := uc.storage.Remove(a.Path); err != nil {
				log.Printf("[TaskUsecase] Failed to remove attachment file %s: %v", a.Filename, err)
			}
		}
	}
	return nil
}

func (uc *taskUsecase) Views(ctx context.Context, userID string) (*taskdto.ViewsResponse, error) {
	tasks, err := uc.taskRepo.ListUnarchived(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("load views", err)
	}
	return BuildViews(tasks, uc.localNow()), nil
}

func (uc *taskUsecase) Import(ctx context.Context, userID string, data []byte) (*taskdto.ImportResponse, error) {
	nodes, err := importer.Parse(data, uc.location)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	result := &taskdto.ImportResponse{Tasks: []domain.Task{}}
	var rootIDs []string

	err = uc.tx.Transaction(ctx, func(tx *gorm.DB) error {
		labels := uc.labelRepo.WithTx(tx)
		labelIDs := map[string]string{}
		for _, name := range importer.LabelNames(nodes) {
			label, err := labels.FindByName(ctx, userID, name)
			if err != nil {
				return err
			}
			if label == nil {
				label = &domain.Label{
					Name:   name,
					Color:  importer.PaletteColor(result.LabelsCreated),
					UserID: userID,
				}
				if err := labels.Create(ctx, label); err != nil {
					return err
				}
				result.LabelsCreated++
			}
			labelIDs[name] = label.ID
		}

		tasks := uc.taskRepo.WithTx(tx)
		taskLabels := uc.taskLabelRepo.WithTx(tx)
		var create func(n importer.Node, parentID *string) (string, error)
		create = func(n importer.Node, parentID *string) (string, error) {
			task := &domain.Task{
				Title:        n.Title,
				Description:  n.Description,
				DueDate:      n.DueDate,
				Priority:     n.Priority,
				UserID:       userID,
				ParentTaskID: parentID,
			}
			if err := tasks.Create(ctx, task); err != nil {
				return "", err
			}
			result.Created++
			if err := uc.recorder.Record(ctx, tx, activityuc.Entry{
				Action:  domain.ActionTaskCreated,
				UserID:  userID,
				TaskID:  &task.ID,
				Details: task.Title,
			}); err != nil {
				return "", err
			}
			for _, name := range n.Labels {
				if err := taskLabels.Create(ctx, &domain.TaskLabel{TaskID: task.ID, LabelID: labelIDs[name]}); err != nil {
					return "", err
				}
			}
			for _, child := range n.Children {
				id := task.ID
				if _, err := create(child, &id); err != nil {
					return "", err
				}
			}
			return task.ID, nil
		}

		for _, n := range nodes {
			id, err := create(n, nil)
			if err != nil {
				return err
			}
			rootIDs = append(rootIDs, id)
		}
		return nil
	})
	if err != nil {
		return nil, apperror.Internal("import tasks", err)
	}

	for _, id := range rootIDs {
		task, err := uc.Get(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		result.Tasks = append(result.Tasks, *task)
	}
	log.Printf("[TaskUsecase] Imported %d tasks (%d new labels) for user %s", result.Created, result.LabelsCreated, userID)
	return result, nil
}
