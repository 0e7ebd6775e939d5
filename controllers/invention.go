package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"invention-portal-api/services"
	"invention-portal-api/utils"

	"github.com/gin-gonic/gin"
)

type CreateInventionRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Tags        []string `json:"tags"`
}

// GetInventions lists inventions for the feed.
// GET /api/v1/inventions?status=approved&tags=AI/ML,IoT
func GetInventions(c *gin.Context) {
	filter := services.InventionFilter{
		Status: c.Query("status"),
		Tags:   parseTagsParam(c.Query("tags")),
	}

	svc := services.NewInventionService(nil)
	items, err := svc.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"total":   len(items),
	})
}

// GetInvention returns one invention with files, comments and votes.
// GET /api/v1/inventions/:id
func GetInvention(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc := services.NewInventionService(nil)
	detail, err := svc.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": detail})
}

// CreateInvention submits a new proposal for the authenticated user.
// POST /api/v1/inventions
func CreateInvention(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication context missing"})
		return
	}

	var req CreateInventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	svc := services.NewInventionService(nil)
	created, err := svc.Create(userID, services.CreateInventionInput{
		Title:       utils.SanitizeInput(req.Title),
		Description: utils.SanitizeInput(req.Description),
		Tags:        req.Tags,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

// DeleteInvention removes an invention with all of its children. Allowed for
// the author and for admins; attachment bytes are removed from disk after the
// database delete succeeds.
// DELETE /api/v1/inventions/:id
func DeleteInvention(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication context missing"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc := services.NewInventionService(nil)
	removedFiles, err := svc.Delete(id, userID, getRoleFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	for _, file := range removedFiles {
		os.Remove(filepath.Join(uploadPath(), file.Filename))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Invention deleted"})
}
