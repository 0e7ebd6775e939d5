package controllers

import (
	"net/http"

	"invention-portal-api/services"

	"github.com/gin-gonic/gin"
)

type ToggleLikeRequest struct {
	// Pointer so binding can tell "dislike" (false) from "missing".
	IsLike *bool `json:"is_like" binding:"required"`
}

// ToggleLike applies one like/dislike action for the authenticated user.
// Repeating the same vote retracts it; the opposite vote flips it.
// POST /api/v1/inventions/:id/like
func ToggleLike(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication context missing"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "is_like is required"})
		return
	}

	svc := services.NewLikeService(nil)
	result, err := svc.Toggle(id, userID, *req.IsLike)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}
