package controllers

import (
	"net/http"

	"invention-portal-api/services"
	"invention-portal-api/utils"

	"github.com/gin-gonic/gin"
)

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateComment adds a comment to an invention.
// POST /api/v1/inventions/:id/comments
func CreateComment(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication context missing"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	svc := services.NewCommentService(nil)
	comment, err := svc.Create(id, userID, utils.SanitizeInput(req.Content))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": comment})
}
