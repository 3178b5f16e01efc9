package domain

import "time"

type Attachment struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Filename     string    `json:"filename" gorm:"not null"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	Path         string    `json:"-" gorm:"not null"`
	TaskID       string    `json:"taskId" gorm:"index;not null"`
	CreatedAt    time.Time `json:"createdAt"`
}
