package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"forum-api/services"
	"forum-api/utils"
)

// respondServiceError maps service-layer sentinel errors to HTTP statuses.
// Unrecognized errors are logged server-side and answered with a generic
// message so raw storage error text never reaches a client.
func respondServiceError(c *gin.Context, resource string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.SendError(c, http.StatusNotFound, resource+" not found")
	case errors.Is(err, services.ErrForbidden):
		utils.SendError(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, services.ErrEmptyTitle), errors.Is(err, services.ErrEmptyContent):
		utils.SendValidationError(c, err.Error())
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
	}
}
