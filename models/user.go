package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin  UserRole = "Admin"
	RoleStaff  UserRole = "Staff"
	RoleClient UserRole = "client"
)

// User is an admin login identity. Rows are created by an out-of-band
// admin-creation step, never through the API.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Role         UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'Admin'"`
	Name         string    `json:"name" gorm:"size:255"`
	Phone        string    `json:"phone" gorm:"size:20"`
	AvatarURL    *string   `json:"avatar_url" gorm:"size:500"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Sessions []UserSession `json:"sessions,omitempty" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin checks if the user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSession records one login. At most one row per user carries
// IsCurrent = true; prior rows are cleared on each new login.
type UserSession struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	DeviceName string    `json:"device_name" gorm:"size:255"`
	UserAgent  string    `json:"user_agent" gorm:"size:500"`
	IPAddress  string    `json:"ip_address" gorm:"size:45"`
	IsCurrent  bool      `json:"is_current" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (UserSession) TableName() string {
	return "user_sessions"
}
