package domain

import "time"

type ReminderType string

const (
	ReminderNotification ReminderType = "NOTIFICATION"
	ReminderEmail        ReminderType = "EMAIL"
)

type Reminder struct {
	ID        string       `json:"id" gorm:"primaryKey"`
	DateTime  time.Time    `json:"dateTime" gorm:"index;not null"`
	Type      ReminderType `json:"type" gorm:"not null;default:NOTIFICATION"`
	IsSent    bool         `json:"isSent" gorm:"not null;default:false"`
	TaskID    string       `json:"taskId" gorm:"index;not null"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Task      *Task        `json:"task,omitempty" gorm:"foreignKey:TaskID"`
}
