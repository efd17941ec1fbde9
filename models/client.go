package models

import (
	"time"
)

// Client is a booking customer. Rows are created implicitly when an
// enquiry arrives for an unknown phone number; phone is the natural
// dedup key.
type Client struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"size:255;not null"`
	Phone           string    `json:"phone" gorm:"size:20;not null;index"`
	Email           *string   `json:"email" gorm:"size:255"`
	Address         *string   `json:"address" gorm:"size:500"`
	Notes           *string   `json:"notes" gorm:"size:1000"`
	PasswordHash    *string   `json:"-" gorm:"size:255"`
	IsAccountActive bool      `json:"is_account_active" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Events []Event `json:"events,omitempty" gorm:"foreignKey:ClientID"`
}

func (Client) TableName() string {
	return "clients"
}

// PasswordToken is a one-time token for client self-service account
// activation or password reset. Usable at most once and only before
// expiry.
type PasswordToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ClientID  uint      `json:"client_id" gorm:"not null;index"`
	Token     string    `json:"token" gorm:"size:64;uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	Used      bool      `json:"used" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Client Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

func (PasswordToken) TableName() string {
	return "password_tokens"
}

// IsExpired checks if the token is past its expiry
func (pt *PasswordToken) IsExpired() bool {
	return time.Now().After(pt.ExpiresAt)
}

// IsUsable checks if the token can still redeem a password change
func (pt *PasswordToken) IsUsable() bool {
	return !pt.Used && !pt.IsExpired()
}
