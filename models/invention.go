package models

import "time"

// Status values stored in inventions.status.
const (
	StatusPending     = "pending"
	StatusUnderReview = "under_review"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
)

// ValidStatus reports whether s is one of the known status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Invention struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string    `gorm:"type:varchar(500);not null" json:"title"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	Status        string    `gorm:"type:varchar(32);not null;default:pending;index" json:"status"`
	FundingAmount *int64    `gorm:"column:funding_amount" json:"funding_amount,omitempty"`
	AuthorID      string    `gorm:"column:author_id;type:varchar(64);not null;index" json:"author_id"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Invention) TableName() string { return "inventions" }

// InventionTag is one entry of an invention's ordered tag list. Tags are
// normalized into rows so overlap filtering can run in SQL.
type InventionTag struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	InventionID uint   `gorm:"column:invention_id;not null;uniqueIndex:idx_invention_tag_position" json:"invention_id"`
	Position    int    `gorm:"column:position;not null;uniqueIndex:idx_invention_tag_position" json:"position"`
	Tag         string `gorm:"column:tag;type:varchar(100);not null;index" json:"tag"`
}

func (InventionTag) TableName() string { return "invention_tags" }
