package repository

import (
	"context"
	"errors"
	"time"

	"taskboard-backend/internal/domain"
	"taskboard-backend/internal/task/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	IsArchived *bool
	IsFavorite *bool
}

// ProjectRepository scopes every lookup and mutation to the owner.
type ProjectRepository interface {
	WithTx(tx *gorm.DB) ProjectRepository
	Create(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, userID, id string) (*domain.Project, error)
	FindWithTasks(ctx context.Context, userID, id string) (*domain.Project, error)
	List(ctx context.Context, userID string, filter ListFilter) ([]domain.Project, error)
	Update(ctx context.Context, userID, id string, fields map[string]interface{}) (int64, error)
	// Delete detaches the project's tasks before removing it.
	Delete(ctx context.Context, userID, id string) (int64, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) WithTx(tx *gorm.DB) ProjectRepository {
	return &projectRepository{db: tx}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	project.ID = uuid.New().String()
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) FindByID(ctx context.Context, userID, id string) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindWithTasks(ctx context.Context, userID, id string) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Where("user_id = ?", userID).Order(query.SortOrder)
		}).
		Preload("Tasks.TaskLabels.Label").
		Where("id = ? AND user_id = ?", id, userID).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

type projectTaskCount struct {
	ProjectID string
	Total     int64
}

func (r *projectRepository) List(ctx context.Context, userID string, filter ListFilter) ([]domain.Project, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.IsArchived != nil {
		q = q.Where("is_archived = ?", *filter.IsArchived)
	}
	if filter.IsFavorite != nil {
		q = q.Where("is_favorite = ?", *filter.IsFavorite)
	}

	projects := []domain.Project{}
	if err := q.Order("is_favorite DESC").Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return projects, nil
	}

	ids := make([]string, len(projects))
	for i := range projects {
		ids[i] = projects[i].ID
	}
	var counts []projectTaskCount
	err := r.db.WithContext(ctx).Model(&domain.Task{}).
		Select("project_id, COUNT(*) AS total").
		Where("user_id = ? AND project_id IN ?", userID, ids).
		Group("project_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	byProject := make(map[string]int64, len(counts))
	for _, c := range counts {
		byProject[c.ProjectID] = c.Total
	}
	for i := range projects {
		projects[i].Count = &domain.ProjectCount{Tasks: byProject[projects[i].ID]}
	}
	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, userID, id string, fields map[string]interface{}) (int64, error) {
	fields["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&domain.Project{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *projectRepository) Delete(ctx context.Context, userID, id string) (int64, error) {
	db := r.db.WithContext(ctx)
	if err := db.Model(&domain.Task{}).
		Where("project_id = ? AND user_id = ?", id, userID).
		Update("project_id", nil).Error; err != nil {
		return 0, err
	}
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Project{})
	return res.RowsAffected, res.Error
}
