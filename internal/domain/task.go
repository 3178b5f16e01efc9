package domain

import "time"

// Priority represents task priority level
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

type RecurringType string

const (
	RecurringDaily   RecurringType = "DAILY"
	RecurringWeekly  RecurringType = "WEEKLY"
	RecurringMonthly RecurringType = "MONTHLY"
	RecurringYearly  RecurringType = "YEARLY"
)

type Task struct {
	ID             string         `json:"id" gorm:"primaryKey"`
	Title          string         `json:"title" gorm:"not null"`
	Description    string         `json:"description"`
	DueDate        *time.Time     `json:"dueDate" gorm:"index"`
	Priority       Priority       `json:"priority" gorm:"not null;default:MEDIUM"`
	Completed      bool           `json:"completed" gorm:"not null;default:false"`
	IsArchived     bool           `json:"isArchived" gorm:"not null;default:false"`
	IsRecurring    bool           `json:"isRecurring" gorm:"not null;default:false"`
	RecurringType  *RecurringType `json:"recurringType"`
	RecurringValue *int           `json:"recurringValue"`
	UserID         string         `json:"userId" gorm:"index;not null"`
	ProjectID      *string        `json:"projectId" gorm:"index"`
	ParentTaskID   *string        `json:"parentTaskId" gorm:"index"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`

	Project     *Project     `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	TaskLabels  []TaskLabel  `json:"taskLabels,omitempty" gorm:"foreignKey:TaskID"`
	Subtasks    []Task       `json:"subtasks,omitempty" gorm:"foreignKey:ParentTaskID"`
	Reminders   []Reminder   `json:"reminders,omitempty" gorm:"foreignKey:TaskID"`
	Attachments []Attachment `json:"attachments,omitempty" gorm:"foreignKey:TaskID"`
}
