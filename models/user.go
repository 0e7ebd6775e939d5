package models

import "time"

// Role values stored in users.role.
const (
	RoleUser    = "user"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

type User struct {
	UserID          string    `gorm:"primaryKey;column:user_id;type:varchar(64)" json:"user_id"`
	Email           *string   `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email,omitempty"`
	Password        string    `gorm:"column:password" json:"-"`
	FirstName       string    `gorm:"column:first_name;type:varchar(255)" json:"first_name"`
	LastName        string    `gorm:"column:last_name;type:varchar(255)" json:"last_name"`
	ProfileImageURL *string   `gorm:"column:profile_image_url;type:varchar(1024)" json:"profile_image_url,omitempty"`
	Role            string    `gorm:"column:role;type:varchar(32);not null;default:user" json:"role"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
