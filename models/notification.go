package models

import (
	"time"
)

const (
	NotificationNewBooking      = "NEW_BOOKING"
	NotificationNewClient       = "NEW_CLIENT"
	NotificationPaymentReceived = "PAYMENT_RECEIVED"
)

// Notification is an append-only row; only the read flag is toggled in
// place. Payload holds the JSON-serialized event data.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Type      string    `json:"type" gorm:"size:50;not null"`
	Payload   string    `json:"-" gorm:"type:text"`
	UserID    *uint     `json:"user_id"`
	IsRead    bool      `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}
