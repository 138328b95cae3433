package services

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"forum-api/models"
	"forum-api/storage"
)

type PostService struct {
	db     *gorm.DB
	images *storage.ImageStore
}

func NewPostService(db *gorm.DB, images *storage.ImageStore) *PostService {
	return &PostService{
		db:     db,
		images: images,
	}
}

// postViewColumns joins each post with its author and computes the like and
// comment counts at read time, so the counts can never drift from the rows.
const postViewColumns = `posts.id, posts.title, posts.content, posts.image_url,
	posts.created_at, posts.updated_at,
	users.id AS user_id, users.username, users.profile_picture_url,
	(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes_count,
	(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count`

func (ps *PostService) postViewQuery() *gorm.DB {
	return ps.db.Table("posts").
		Select(postViewColumns).
		Joins("JOIN users ON users.id = posts.user_id")
}

// List returns all posts newest first. A non-empty search term filters by
// case-insensitive substring match against title or content.
func (ps *PostService) List(search string) ([]models.PostView, error) {
	query := ps.postViewQuery()

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(posts.title) LIKE ? OR LOWER(posts.content) LIKE ?", pattern, pattern)
	}

	var posts []models.PostView
	if err := query.Order("posts.created_at DESC, posts.id DESC").Scan(&posts).Error; err != nil {
		return nil, err
	}

	return posts, nil
}

// ListByUser returns the posts authored by a user, newest first.
func (ps *PostService) ListByUser(userID uint) ([]models.PostView, error) {
	var posts []models.PostView
	err := ps.postViewQuery().
		Where("posts.user_id = ?", userID).
		Order("posts.created_at DESC, posts.id DESC").
		Scan(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}

// ListFavoritedBy returns the posts a user has favorited, newest first.
func (ps *PostService) ListFavoritedBy(userID uint) ([]models.PostView, error) {
	var posts []models.PostView
	err := ps.postViewQuery().
		Joins("JOIN favorites ON favorites.post_id = posts.id").
		Where("favorites.user_id = ?", userID).
		Order("posts.created_at DESC, posts.id DESC").
		Scan(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (ps *PostService) GetByID(postID uint) (*models.PostView, error) {
	var post models.PostView
	err := ps.postViewQuery().Where("posts.id = ?", postID).Take(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &post, nil
}

// Create inserts a new post. Title and content are required; imageURL is
// optional. Duplicate posts are allowed.
func (ps *PostService) Create(userID uint, title, content string, imageURL *string) (uint, error) {
	if strings.TrimSpace(title) == "" {
		return 0, ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return 0, ErrEmptyContent
	}

	post := models.Post{
		UserID:   userID,
		Title:    title,
		Content:  content,
		ImageURL: imageURL,
	}

	if err := ps.db.Create(&post).Error; err != nil {
		return 0, err
	}

	return post.ID, nil
}

// Delete removes a post together with its comments, likes and favorites.
// The database has no cascading foreign keys, so the dependent rows are
// deleted explicitly inside one transaction: concurrent readers see the post
// either fully present or fully absent. The stored image file is unlinked
// only after the transaction commits; a failed unlink leaves an orphaned
// file on disk, never a row referencing a missing file.
func (ps *PostService) Delete(postID, userID uint) error {
	var imageURL *string

	err := ps.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id", "user_id", "image_url").Take(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if post.UserID != userID {
			return ErrForbidden
		}
		imageURL = post.ImageURL

		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Post{}, postID).Error
	})
	if err != nil {
		return err
	}

	if imageURL != nil {
		if err := ps.images.Remove(*imageURL); err != nil {
			log.Printf("Failed to remove image for deleted post %d: %v", postID, err)
		}
	}

	return nil
}
