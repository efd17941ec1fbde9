package models

import (
	"time"
)

// StudioProfile is a singleton row (id = 1) holding studio branding.
// ImageKey stores the object-storage key only; signed URLs are computed
// per request.
type StudioProfile struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StudioName  string    `json:"studio_name" gorm:"size:255;not null"`
	Description *string   `json:"description" gorm:"size:2000"`
	ImageKey    *string   `json:"image_url" gorm:"column:image_url;size:500"`
	Address     *string   `json:"address" gorm:"size:500"`
	Phone       *string   `json:"phone" gorm:"size:20"`
	Email       *string   `json:"email" gorm:"size:255"`
	Website     *string   `json:"website" gorm:"size:255"`
	Instagram   *string   `json:"instagram" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (StudioProfile) TableName() string {
	return "studio_profile"
}
