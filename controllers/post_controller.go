package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"forum-api/middleware"
	"forum-api/models"
	"forum-api/services"
	"forum-api/storage"
	"forum-api/utils"
)

type PostController struct {
	posts        *services.PostService
	interactions *services.InteractionService
	images       *storage.ImageStore
}

func NewPostController(posts *services.PostService, interactions *services.InteractionService, images *storage.ImageStore) *PostController {
	return &PostController{
		posts:        posts,
		interactions: interactions,
		images:       images,
	}
}

type CreatePostRequest struct {
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"image_url"`
}

func (pc *PostController) GetPosts(c *gin.Context) {
	posts, err := pc.posts.List(c.Query("q"))
	if err != nil {
		respondServiceError(c, "Posts", err)
		return
	}

	if posts == nil {
		posts = []models.PostView{}
	}
	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := pc.posts.GetByID(postID)
	if err != nil {
		respondServiceError(c, "Post", err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetMyPosts lists the authenticated user's own posts.
func (pc *PostController) GetMyPosts(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.SendError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	posts, err := pc.posts.ListByUser(userID)
	if err != nil {
		respondServiceError(c, "Posts", err)
		return
	}

	if posts == nil {
		posts = []models.PostView{}
	}
	c.JSON(http.StatusOK, posts)
}

// GetMyFavorites lists the posts the authenticated user has favorited.
func (pc *PostController) GetMyFavorites(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.SendError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	posts, err := pc.posts.ListFavoritedBy(userID)
	if err != nil {
		respondServiceError(c, "Posts", err)
		return
	}

	if posts == nil {
		posts = []models.PostView{}
	}
	c.JSON(http.StatusOK, posts)
}

// GetUserLikes returns a user's like rows so clients can mark the liked
// state of posts in a feed.
func (pc *PostController) GetUserLikes(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	likes, err := pc.interactions.LikesByUser(userID)
	if err != nil {
		respondServiceError(c, "Likes", err)
		return
	}

	if likes == nil {
		likes = []models.Like{}
	}
	c.JSON(http.StatusOK, likes)
}

// GetUserFavorites returns a user's favorite rows.
func (pc *PostController) GetUserFavorites(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	favorites, err := pc.interactions.FavoritesByUser(userID)
	if err != nil {
		respondServiceError(c, "Favorites", err)
		return
	}

	if favorites == nil {
		favorites = []models.Favorite{}
	}
	c.JSON(http.StatusOK, favorites)
}

func (pc *PostController) CreatePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.SendError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	postID, err := pc.posts.Create(userID, req.Title, req.Content, req.ImageURL)
	if err != nil {
		respondServiceError(c, "Post", err)
		return
	}

	utils.SendCreated(c, "Post created successfully", gin.H{"post_id": postID})
}

func (pc *PostController) DeletePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.SendError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := pc.posts.Delete(postID, userID); err != nil {
		respondServiceError(c, "Post", err)
		return
	}

	utils.SendSuccess(c, "Post deleted successfully", nil)
}

func (pc *PostController) LikePost(c *gin.Context) {
	pc.toggle(c, services.KindLike, "liked")
}

func (pc *PostController) FavoritePost(c *gin.Context) {
	pc.toggle(c, services.KindFavorite, "favorited")
}

// toggle handles both interaction flavors: 201 with {<field>: true} when the
// relationship was created, 200 with {<field>: false} when it was removed.
func (pc *PostController) toggle(c *gin.Context, kind services.InteractionKind, field string) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.SendError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	active, err := pc.interactions.Toggle(kind, postID, userID)
	if err != nil {
		respondServiceError(c, "Post", err)
		return
	}

	status := http.StatusOK
	if active {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{field: active})
}

func (pc *PostController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.SendValidationError(c, "An image file is required")
		return
	}

	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		utils.SendValidationError(c, "Only image files are allowed")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondServiceError(c, "Image", err)
		return
	}
	defer file.Close()

	imageURL, err := pc.images.Save("post_images", fileHeader.Filename, file)
	if err != nil {
		respondServiceError(c, "Image", err)
		return
	}

	utils.SendCreated(c, "Image uploaded successfully", gin.H{"image_url": imageURL})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
