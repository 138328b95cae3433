package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"forum-api/middleware"
	"forum-api/models"
	"forum-api/services"
	"forum-api/utils"
)

type CommentController struct {
	comments *services.CommentService
}

func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (cc *CommentController) GetComments(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	comments, err := cc.comments.ListByPost(postID)
	if err != nil {
		respondServiceError(c, "Comments", err)
		return
	}

	if comments == nil {
		comments = []models.CommentView{}
	}
	c.JSON(http.StatusOK, comments)
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.SendError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	commentID, err := cc.comments.Create(postID, userID, req.Content)
	if err != nil {
		respondServiceError(c, "Post", err)
		return
	}

	utils.SendCreated(c, "Comment added successfully", gin.H{"comment_id": commentID})
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.SendError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	if err := cc.comments.Delete(commentID, userID); err != nil {
		respondServiceError(c, "Comment", err)
		return
	}

	utils.SendSuccess(c, "Comment deleted successfully", nil)
}
