package models

import (
	"time"
)

type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "ACTIVE"
	StaffStatusInactive StaffStatus = "INACTIVE"
	StaffStatusOnLeave  StaffStatus = "ON_LEAVE"
)

type Staff struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	Name           string      `json:"name" gorm:"size:255;not null"`
	Email          *string     `json:"email" gorm:"size:255"`
	Role           *string     `json:"role" gorm:"size:100"`
	Skills         *string     `json:"skills" gorm:"size:500"`
	Status         StaffStatus `json:"status" gorm:"type:varchar(20);default:'ACTIVE'"`
	InactiveReason *string     `json:"inactive_reason" gorm:"size:500"`
	CreatedAt      time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Staff) TableName() string {
	return "staff"
}

// IsValidStaffStatus reports whether s is one of the allowed staff statuses.
func IsValidStaffStatus(s string) bool {
	switch StaffStatus(s) {
	case StaffStatusActive, StaffStatusInactive, StaffStatusOnLeave:
		return true
	default:
		return false
	}
}
