package models

import "time"

// Comment is immutable once created; there is no edit or delete endpoint.
type Comment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	InventionID uint      `gorm:"column:invention_id;not null;index" json:"invention_id"`
	AuthorID    string    `gorm:"column:author_id;type:varchar(64);not null;index" json:"author_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Author *User `gorm:"foreignKey:AuthorID;references:UserID" json:"author,omitempty"`
}

func (Comment) TableName() string { return "comments" }
