package models

import "time"

// Booking lifecycle states.
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusRejected  = "REJECTED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusNoShow    = "NO_SHOW"
)

// ValidBookingStatus reports whether s is a known lifecycle state.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusRejected,
		BookingStatusCancelled, BookingStatusCompleted, BookingStatusNoShow:
		return true
	}
	return false
}

// Booking is a customer's reservation against a profile.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	BookingRef string    `bson:"booking_ref" json:"booking_ref"` // 6-char uppercase hex, unique
	UserID     string    `bson:"user_id" json:"user_id"`
	ProfileID  string    `bson:"profile_id" json:"profile_id"`
	ServiceID  string    `bson:"service_id,omitempty" json:"service_id,omitempty"`
	Date       time.Time `bson:"booking_date" json:"booking_date"`
	TimeSlot   string    `bson:"time_slot,omitempty" json:"time_slot,omitempty"` // "HH:MM-HH:MM"
	Status     string    `bson:"status" json:"status"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingCreate is the customer-facing creation payload.
type BookingCreate struct {
	ProfileID string    `json:"profile_id" binding:"required"`
	ServiceID string    `json:"service_id,omitempty"`
	Date      time.Time `json:"booking_date" binding:"required"`
	TimeSlot  string    `json:"time_slot,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// BookingRefResponse is returned on creation.
type BookingRefResponse struct {
	BookingRef string `json:"booking_ref"`
	BookingID  string `json:"booking_id"`
}

// BookingDetail is a booking enriched with profile and service info.
type BookingDetail struct {
	Booking      `bson:",inline"`
	ProfileName  string  `bson:"profile_name" json:"profile_name"`
	ServiceTitle string  `bson:"service_title,omitempty" json:"service_title,omitempty"`
	ServicePrice float64 `bson:"service_price,omitempty" json:"service_price,omitempty"`
}

// BookingStatusUpdate is the owner decision on a pending booking.
type BookingStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}

// BookingNote is an internal note attached to a booking.
type BookingNote struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"booking_id" json:"booking_id"`
	Note          string    `bson:"note" json:"note"`
	CreatedBy     string    `bson:"created_by" json:"created_by"`
	CreatedByName string    `bson:"created_by_name" json:"created_by_name"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
