package models

import "time"

// Like is a user's vote on an invention: is_like true for a like, false for a
// dislike. The (invention_id, user_id) pair is unique; the toggle logic in
// services relies on the index to reject concurrent duplicate inserts.
type Like struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	InventionID uint      `gorm:"column:invention_id;not null;uniqueIndex:idx_invention_user" json:"invention_id"`
	UserID      string    `gorm:"column:user_id;type:varchar(64);not null;uniqueIndex:idx_invention_user" json:"user_id"`
	IsLike      bool      `gorm:"column:is_like;not null" json:"is_like"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Like) TableName() string { return "likes" }
