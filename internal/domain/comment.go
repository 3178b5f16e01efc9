package domain

import "time"

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"not null"`
	TaskID    string    `json:"taskId" gorm:"index;not null"`
	UserID    string    `json:"userId" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
