package models

import (
	"time"
)

type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Username          string    `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Email             string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password          string    `json:"-" gorm:"not null;size:255"`
	ProfilePictureURL *string   `json:"profile_picture_url" gorm:"size:500"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relationships
	Posts    []Post    `json:"-" gorm:"foreignKey:UserID"`
	Comments []Comment `json:"-" gorm:"foreignKey:UserID"`
}
