package controllers

import (
	"fmt"
	"log"
	"net/http"

	"invention-portal-api/config"
	"invention-portal-api/models"
	"invention-portal-api/services"

	"github.com/gin-gonic/gin"
)

type UpdateStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	FundingAmount *int64 `json:"funding_amount"`
}

// UpdateInventionStatus moves an invention to a new status, optionally
// attaching a funding amount on approval. The route is gated by
// RequireRole(admin); the service trusts that gate.
// PATCH /api/v1/admin/inventions/:id/status
func UpdateInventionStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	svc := services.NewStatusService(nil)
	updated, err := svc.SetStatus(id, req.Status, req.FundingAmount)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if updated.Status == models.StatusApproved || updated.Status == models.StatusRejected {
		go notifyDecision(*updated)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

// GetStats returns the status breakdown for the admin dashboard.
// GET /api/v1/admin/stats
func GetStats(c *gin.Context) {
	svc := services.NewStatusService(nil)
	stats, err := svc.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// notifyDecision emails the author about an approval or rejection.
// Best-effort: a mail failure is logged and never fails the transition.
func notifyDecision(inv models.Invention) {
	var author models.User
	if err := config.DB.Where("user_id = ?", inv.AuthorID).First(&author).Error; err != nil {
		log.Printf("decision mail: author lookup failed for invention %d: %v", inv.ID, err)
		return
	}
	if author.Email == nil || *author.Email == "" {
		return
	}

	subject := fmt.Sprintf("Your invention %q was %s", inv.Title, inv.Status)
	body := fmt.Sprintf("<p>Hello %s,</p><p>Your invention <b>%s</b> has been <b>%s</b>.</p>",
		author.FirstName, inv.Title, inv.Status)
	if inv.Status == models.StatusApproved && inv.FundingAmount != nil {
		body += fmt.Sprintf("<p>Assigned funding: %d</p>", *inv.FundingAmount)
	}

	if err := config.SendMail([]string{*author.Email}, subject, body); err != nil {
		log.Printf("decision mail: send failed for invention %d: %v", inv.ID, err)
	}
}
