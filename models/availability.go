package models

import "time"

// TimeSlotConfig describes how to cut a day into bookable slots.
type TimeSlotConfig struct {
	StartTime          string `json:"start_time" binding:"required"` // "HH:MM"
	EndTime            string `json:"end_time" binding:"required"`   // "HH:MM"
	SlotDuration       int    `json:"slot_duration" binding:"required,min=1"`
	MaxCapacityPerSlot int    `json:"max_capacity_per_slot" binding:"required,min=1"`
}

// AvailabilitySlot is one bookable window on a given date.
// IsAvailable is always derived server-side from booked_count and
// max_capacity; it is never taken from a client.
type AvailabilitySlot struct {
	ID          string    `bson:"id" json:"id"`
	ProfileID   string    `bson:"profile_id" json:"profile_id"`
	Date        time.Time `bson:"date" json:"date"` // normalized to midnight UTC
	TimeSlot    string    `bson:"time_slot" json:"time_slot"` // "HH:MM-HH:MM"
	MaxCapacity int       `bson:"max_capacity" json:"max_capacity"`
	BookedCount int       `bson:"booked_count" json:"booked_count"`
	IsAvailable bool      `bson:"is_available" json:"is_available"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// AvailabilityCreate is the payload for generating a date's slots.
type AvailabilityCreate struct {
	Date   time.Time      `json:"date" binding:"required"`
	Config TimeSlotConfig `json:"config" binding:"required"`
}

// SlotCapacityUpdate changes a slot's maximum capacity.
type SlotCapacityUpdate struct {
	MaxCapacity int `json:"max_capacity" binding:"required,min=1"`
}

// DateAvailability is the per-date availability summary returned to clients.
type DateAvailability struct {
	Date           time.Time          `json:"date"`
	TotalSlots     int                `json:"total_slots"`
	AvailableSlots int                `json:"available_slots"`
	Slots          []AvailabilitySlot `json:"slots"`
}
