package models

import "time"

// InventionFile holds metadata for an uploaded attachment. The bytes live on
// disk under the upload path; only this record is stored.
type InventionFile struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Filename     string    `gorm:"column:filename;type:varchar(255);not null" json:"filename"`
	OriginalName string    `gorm:"column:original_name;type:varchar(500);not null" json:"original_name"`
	MimeType     string    `gorm:"column:mime_type;type:varchar(255)" json:"mime_type"`
	Size         int64     `gorm:"column:size;not null" json:"size"`
	InventionID  uint      `gorm:"column:invention_id;not null;index" json:"invention_id"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (InventionFile) TableName() string { return "invention_files" }
