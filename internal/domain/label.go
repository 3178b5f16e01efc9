package domain

import "time"

const DefaultLabelColor = "#6B7280"

type Label struct {
	ID         string      `json:"id" gorm:"primaryKey"`
	Name       string      `json:"name" gorm:"not null;uniqueIndex:idx_label_user_name"`
	Color      string      `json:"color"`
	UserID     string      `json:"userId" gorm:"not null;uniqueIndex:idx_label_user_name"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	TaskLabels []TaskLabel `json:"taskLabels,omitempty" gorm:"foreignKey:LabelID"`
}

// TaskLabel links one task to one label.
type TaskLabel struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	TaskID    string    `json:"taskId" gorm:"not null;uniqueIndex:idx_task_label"`
	LabelID   string    `json:"labelId" gorm:"not null;uniqueIndex:idx_task_label;index"`
	CreatedAt time.Time `json:"createdAt"`
	Label     *Label    `json:"label,omitempty" gorm:"foreignKey:LabelID"`
	Task      *Task     `json:"task,omitempty" gorm:"foreignKey:TaskID"`
}
