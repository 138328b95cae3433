package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"forum-api/models"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// ListByPost returns the comments of a post oldest first, each joined with
// its author identity.
func (cs *CommentService) ListByPost(postID uint) ([]models.CommentView, error) {
	var comments []models.CommentView
	err := cs.db.Table("comments").
		Select(`comments.id, comments.post_id, comments.content, comments.created_at,
			users.id AS user_id, users.username, users.profile_picture_url`).
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC, comments.id ASC").
		Scan(&comments).Error
	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (cs *CommentService) Create(postID, userID uint, content string) (uint, error) {
	if strings.TrimSpace(content) == "" {
		return 0, ErrEmptyContent
	}

	if err := cs.db.Select("id").Take(&models.Post{}, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	comment := models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}

	if err := cs.db.Create(&comment).Error; err != nil {
		return 0, err
	}

	return comment.ID, nil
}

// Delete removes a comment after verifying the requester owns it.
func (cs *CommentService) Delete(commentID, userID uint) error {
	var comment models.Comment
	if err := cs.db.Select("id", "user_id").Take(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if comment.UserID != userID {
		return ErrForbidden
	}

	return cs.db.Delete(&models.Comment{}, commentID).Error
}
