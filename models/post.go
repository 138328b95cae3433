package models

import (
	"time"
)

type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"not null;size:255"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	ImageURL  *string   `json:"image_url" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User      User       `json:"user" gorm:"foreignKey:UserID"`
	Likes     []Like     `json:"-" gorm:"foreignKey:PostID"`
	Favorites []Favorite `json:"-" gorm:"foreignKey:PostID"`
	Comments  []Comment  `json:"-" gorm:"foreignKey:PostID"`
}

// Like marks a post as liked by a user. At most one row may exist per
// (post_id, user_id) pair; the unique index backs the toggle semantics.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"not null;uniqueIndex:idx_likes_post_user"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_likes_post_user"`
	CreatedAt time.Time `json:"created_at"`
}

// Favorite has the same uniqueness invariant as Like but an independent
// lifecycle.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"not null;uniqueIndex:idx_favorites_post_user"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_favorites_post_user"`
	CreatedAt time.Time `json:"created_at"`
}

// PostView is the read model returned by post queries: the post row joined
// with its author identity plus like/comment counts computed at read time.
// The counts are never stored on the post row.
type PostView struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	ImageURL          *string   `json:"image_url"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	UserID            uint      `json:"user_id"`
	Username          string    `json:"username"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	LikesCount        int64     `json:"likes_count"`
	CommentsCount     int64     `json:"comments_count"`
}
