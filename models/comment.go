package models

import (
	"time"
)

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
}

// CommentView is a comment row joined with its author identity.
type CommentView struct {
	ID                uint      `json:"id"`
	PostID            uint      `json:"post_id"`
	Content           string    `json:"content"`
	CreatedAt         time.Time `json:"created_at"`
	UserID            uint      `json:"user_id"`
	Username          string    `json:"username"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
}
