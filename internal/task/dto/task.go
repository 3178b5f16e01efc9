package dto

import "taskboard-backend/internal/domain"

type CreateTaskRequest struct {
	Title          string                `json:"title" binding:"required,min=1"`
	Description    string                `json:"description"`
	DueDate        *string               `json:"dueDate" binding:"omitempty,iso8601"`
	Priority       domain.Priority       `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	ProjectID      *string               `json:"projectId"`
	ParentTaskID   *string               `json:"parentTaskId"`
	IsRecurring    *bool                 `json:"isRecurring"`
	RecurringType  *domain.RecurringType `json:"recurringType" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	RecurringValue *int                  `json:"recurringValue" binding:"omitempty,gt=0"`
}

// UpdateTaskRequest: an empty string for dueDate, projectId or parentTaskId
// clears the field.
type UpdateTaskRequest struct {
	Title          *string               `json:"title" binding:"omitempty,min=1"`
	Description    *string               `json:"description"`
	DueDate        *string               `json:"dueDate" binding:"omitempty,iso8601_or_empty"`
	Priority       *domain.Priority      `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	ProjectID      *string               `json:"projectId"`
	ParentTaskID   *string               `json:"parentTaskId"`
	Completed      *bool                 `json:"completed"`
	IsArchived     *bool                 `json:"isArchived"`
	IsRecurring    *bool                 `json:"isRecurring"`
	RecurringType  *domain.RecurringType `json:"recurringType" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	RecurringValue *int                  `json:"recurringValue" binding:"omitempty,gt=0"`
}

type ViewStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

// ViewsResponse groups open, unarchived tasks the way the sidebar shows them.
type ViewsResponse struct {
	Overdue  []domain.Task `json:"overdue"`
	Today    []domain.Task `json:"today"`
	Tomorrow []domain.Task `json:"tomorrow"`
	NextWeek []domain.Task `json:"nextWeek"`
	Later    []domain.Task `json:"later"`
	Inbox    []domain.Task `json:"inbox"`
	Stats    ViewStats     `json:"stats"`
}

type ImportResponse struct {
	Created       int           `json:"created"`
	LabelsCreated int           `json:"labelsCreated"`
	Tasks         []domain.Task `json:"tasks"`
}
