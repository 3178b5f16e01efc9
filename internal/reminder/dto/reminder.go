package dto

import "taskboard-backend/internal/domain"

type CreateReminderRequest struct {
	DateTime string              `json:"dateTime" binding:"required,iso8601"`
	Type     domain.ReminderType `json:"type" binding:"omitempty,oneof=NOTIFICATION EMAIL"`
	TaskID   string              `json:"taskId" binding:"required"`
}

type UpdateReminderRequest struct {
	DateTime *string              `json:"dateTime" binding:"omitempty,iso8601"`
	Type     *domain.ReminderType `json:"type" binding:"omitempty,oneof=NOTIFICATION EMAIL"`
}
