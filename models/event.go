package models

import (
	"time"
)

type EventStatus string

const (
	EventStatusNew       EventStatus = "NEW"
	EventStatusShootDone EventStatus = "SHOOT_DONE"
	EventStatusDelivered EventStatus = "DELIVERED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

type EventStage string

const (
	EventStageEnquiry   EventStage = "ENQUIRY"
	EventStageConfirmed EventStage = "CONFIRMED"
)

type EventSource string

const (
	EventSourceWebsite EventSource = "WEBSITE"
	EventSourceManual  EventSource = "MANUAL"
)

// Event is a booking. Status tracks the operational lifecycle
// (NEW -> SHOOT_DONE -> DELIVERED, or CANCELLED), Stage the pre-shoot
// pipeline (ENQUIRY -> CONFIRMED); the two axes are independent.
type Event struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	ClientID       uint        `json:"client_id" gorm:"not null;index"`
	EventType      string      `json:"event_type" gorm:"size:100;not null"`
	EventDate      string      `json:"event_date" gorm:"size:20;not null"`
	StartTime      *string     `json:"start_time" gorm:"size:20"`
	EndTime        *string     `json:"end_time" gorm:"size:20"`
	Location       *string     `json:"location" gorm:"size:500"`
	Venue          *string     `json:"venue" gorm:"size:255"`
	GuestCount     *int        `json:"guest_count"`
	EnquiryMessage *string     `json:"enquiry_message" gorm:"size:2000"`
	Source         EventSource `json:"source" gorm:"type:varchar(20);default:'WEBSITE'"`
	Status         EventStatus `json:"status" gorm:"type:varchar(20);default:'NEW'"`
	Stage          EventStage  `json:"stage" gorm:"type:varchar(20);default:'ENQUIRY'"`

	// Amount is the quoted total; PaidAmount accumulates recorded
	// payments; Advance mirrors the ADVANCE payment; AmountStatus is 1
	// once PaidAmount covers Amount.
	Amount       float64 `json:"amount" gorm:"default:0"`
	PaidAmount   float64 `json:"paid_amount" gorm:"default:0"`
	Advance      float64 `json:"advance" gorm:"default:0"`
	AmountStatus int     `json:"amount_status" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Client        Client                 `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Staff         []EventStaffAssignment `json:"staff,omitempty" gorm:"foreignKey:EventID"`
	Cancellations []EventCancellation    `json:"cancellations,omitempty" gorm:"foreignKey:EventID"`
	Payments      []Payment              `json:"payments,omitempty" gorm:"foreignKey:EventID"`
}

func (Event) TableName() string {
	return "events"
}

// IsCompleted reports whether the event is past the point where staff
// or details may still be changed.
func (e *Event) IsCompleted() bool {
	return e.Status == EventStatusShootDone || e.Status == EventStatusDelivered
}

// EventStaffAssignment links staff to events. Unique per (event, staff)
// pair; assignment of an already-assigned pair is a no-op.
type EventStaffAssignment struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	EventID  uint    `json:"event_id" gorm:"not null;uniqueIndex:idx_event_staff"`
	StaffID  uint    `json:"staff_id" gorm:"not null;uniqueIndex:idx_event_staff"`
	Role     *string `json:"role" gorm:"size:100"`
	Attended int     `json:"attended" gorm:"default:0"`

	Event Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Staff Staff `json:"staff_member,omitempty" gorm:"foreignKey:StaffID"`
}

func (EventStaffAssignment) TableName() string {
	return "event_staff"
}

// EventCancellation is an append-only audit row recording who cancelled
// an event and why. Never overwritten.
type EventCancellation struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	EventID    uint      `json:"event_id" gorm:"not null;index"`
	AdminID    *uint     `json:"admin_id"`
	AdminEmail *string   `json:"admin_email" gorm:"size:255"`
	Reason     *string   `json:"reason" gorm:"size:1000"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	Event Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
}

func (EventCancellation) TableName() string {
	return "event_cancellations"
}
