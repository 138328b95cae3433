package services

import (
	"errors"

	"gorm.io/gorm"

	"forum-api/models"
)

// InteractionKind selects the join table a toggle operates on.
type InteractionKind string

const (
	KindLike     InteractionKind = "like"
	KindFavorite InteractionKind = "favorite"
)

// InteractionService implements the like/favorite toggles. The two kinds
// differ only by target table and share the same uniqueness invariant:
// at most one row per (post_id, user_id).
type InteractionService struct {
	db *gorm.DB
}

func NewInteractionService(db *gorm.DB) *InteractionService {
	return &InteractionService{db: db}
}

// Toggle flips the relationship and reports the resulting state: true when
// the post is now liked/favorited by the user, false when it no longer is.
//
// The implementation is delete-first: if the delete removed a row the toggle
// is done, otherwise an insert is attempted. Two concurrent inserts race on
// the unique (post_id, user_id) index and the loser's duplicate-key error is
// treated as "already active", so the operation stays idempotent without an
// application-level lock.
// LikesByUser returns a user's like rows, the read side clients use to mark
// which posts in a feed the user has already liked.
func (is *InteractionService) LikesByUser(userID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := is.db.Where("user_id = ?", userID).Find(&likes).Error; err != nil {
		return nil, err
	}

	return likes, nil
}

// FavoritesByUser returns a user's favorite rows.
func (is *InteractionService) FavoritesByUser(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := is.db.Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		return nil, err
	}

	return favorites, nil
}

func (is *InteractionService) Toggle(kind InteractionKind, postID, userID uint) (bool, error) {
	if err := is.db.Select("id").Take(&models.Post{}, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	var target, row interface{}
	switch kind {
	case KindFavorite:
		target, row = &models.Favorite{}, &models.Favorite{PostID: postID, UserID: userID}
	default:
		target, row = &models.Like{}, &models.Like{PostID: postID, UserID: userID}
	}

	res := is.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(target)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	if err := is.db.Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}

	return true, nil
}
