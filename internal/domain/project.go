package domain

import "time"

type Project struct {
	ID          string        `json:"id" gorm:"primaryKey"`
	Name        string        `json:"name" gorm:"not null"`
	Description string        `json:"description"`
	Color       string        `json:"color"`
	IsFavorite  bool          `json:"isFavorite" gorm:"not null;default:false"`
	IsArchived  bool          `json:"isArchived" gorm:"not null;default:false"`
	UserID      string        `json:"userId" gorm:"index;not null"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Tasks       []Task        `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
	Count       *ProjectCount `json:"_count,omitempty" gorm:"-"`
}

type ProjectCount struct {
	Tasks int64 `json:"tasks"`
}
