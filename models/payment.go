package models

import (
	"time"
)

type PaymentType string

const (
	PaymentTypeAdvance PaymentType = "ADVANCE"
	PaymentTypeFinal   PaymentType = "FINAL"
)

// Payment records money received against an event. Business rule: at
// most one payment row per (event, payment_type) pair.
type Payment struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	EventID     uint        `json:"event_id" gorm:"not null;index"`
	Amount      float64     `json:"amount" gorm:"not null"`
	Method      *string     `json:"method" gorm:"size:50"`
	Reference   *string     `json:"reference" gorm:"size:255"`
	PaymentType PaymentType `json:"payment_type" gorm:"type:varchar(20);default:'ADVANCE'"`
	RecordedBy  *uint       `json:"recorded_by"`
	CreatedAt   time.Time   `json:"created_at" gorm:"autoCreateTime"`

	Event Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
}

func (Payment) TableName() string {
	return "payments"
}
