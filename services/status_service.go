package services

import (
	"errors"
	"fmt"

	"invention-portal-api/config"
	"invention-portal-api/models"

	"gorm.io/gorm"
)

// InventionStats is the admin dashboard aggregate over all inventions.
type InventionStats struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	UnderReview int64 `json:"under_review"`
	Approved    int64 `json:"approved"`
	Rejected    int64 `json:"rejected"`
}

type StatusService struct {
	db *gorm.DB
}

func NewStatusService(db *gorm.DB) *StatusService {
	if db == nil {
		db = config.DB
	}
	return &StatusService{db: db}
}

// SetStatus moves an invention to the given status. Any status may move to
// any other; there is no enforced pending -> under_review -> decision order
// (deliberate simplification, pending product input).
//
// fundingAmount is stored only when the new status is approved; every other
// transition clears it, so a rejection never carries funding. Approving
// without an amount leaves funding unset.
//
// Callers must already have verified the actor holds the admin role; this is
// a documented precondition, not something re-checked here.
func (s *StatusService) SetStatus(id uint, status string, fundingAmount *int64) (*models.Invention, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if fundingAmount != nil && *fundingAmount < 0 {
		return nil, fmt.Errorf("%w: funding amount must not be negative", ErrValidation)
	}

	var inv models.Invention
	if err := s.db.Where("id = ?", id).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invention %d", ErrNotFound, id)
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"status":         status,
		"funding_amount": nil,
	}
	if status == models.StatusApproved && fundingAmount != nil {
		updates["funding_amount"] = *fundingAmount
	}

	if err := s.db.Model(&inv).Updates(updates).Error; err != nil {
		return nil, err
	}

	inv.Status = status
	inv.FundingAmount = nil
	if status == models.StatusApproved && fundingAmount != nil {
		amount := *fundingAmount
		inv.FundingAmount = &amount
	}
	return &inv, nil
}

// Stats computes the status breakdown in a single conditional-sum query.
func (s *StatusService) Stats() (*InventionStats, error) {
	var stats InventionStats
	err := s.db.Model(&models.Invention{}).
		Select(
			"COUNT(*) AS total, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS under_review, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS approved, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS rejected",
			models.StatusPending, models.StatusUnderReview, models.StatusApproved, models.StatusRejected,
		).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
