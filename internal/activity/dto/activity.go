package dto

import (
	"time"

	"taskboard-backend/internal/domain"
)

type TaskSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ActivityResponse carries task and user summaries. Task is null when the
// task has since been deleted.
type ActivityResponse struct {
	ID        string                `json:"id"`
	Action    domain.ActivityAction `json:"action"`
	Details   *string               `json:"details"`
	TaskID    *string               `json:"taskId"`
	ProjectID *string               `json:"projectId"`
	UserID    string                `json:"userId"`
	CreatedAt time.Time             `json:"createdAt"`
	Task      *TaskSummary          `json:"task"`
	User      *UserSummary          `json:"user"`
}

func NewActivityResponse(a *domain.Activity) ActivityResponse {
	resp := ActivityResponse{
		ID:        a.ID,
		Action:    a.Action,
		Details:   a.Details,
		TaskID:    a.TaskID,
		ProjectID: a.ProjectID,
		UserID:    a.UserID,
		CreatedAt: a.CreatedAt,
	}
	if a.Task != nil {
		resp.Task = &TaskSummary{ID: a.Task.ID, Title: a.Task.Title}
	}
	if a.User != nil {
		resp.User = &UserSummary{ID: a.User.ID, Name: a.User.Name, Email: a.User.Email}
	}
	return resp
}

func NewActivityResponses(activities []domain.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, NewActivityResponse(&activities[i]))
	}
	return out
}
