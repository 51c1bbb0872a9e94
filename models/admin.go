package models

import "time"

// AdminBooking is a booking enriched with customer, profile and service
// details for the management surface.
type AdminBooking struct {
	ID           string    `bson:"id" json:"id"`
	BookingRef   string    `bson:"booking_ref" json:"booking_ref"`
	UserID       string    `bson:"user_id" json:"user_id"`
	UserName     string    `bson:"user_name" json:"user_name"`
	UserEmail    string    `bson:"user_email,omitempty" json:"user_email,omitempty"`
	UserPhone    string    `bson:"user_phone,omitempty" json:"user_phone,omitempty"`
	ProfileID    string    `bson:"profile_id" json:"profile_id"`
	ProfileName  string    `bson:"profile_name" json:"profile_name"`
	ServiceID    string    `bson:"service_id,omitempty" json:"service_id,omitempty"`
	ServiceName  string    `bson:"service_name,omitempty" json:"service_name,omitempty"`
	ServicePrice float64   `bson:"service_price,omitempty" json:"service_price,omitempty"`
	Date         time.Time `bson:"booking_date" json:"booking_date"`
	TimeSlot     string    `bson:"time_slot,omitempty" json:"time_slot,omitempty"`
	Status       string    `bson:"status" json:"status"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// AdminBookingDetail adds the note history to a single booking view.
type AdminBookingDetail struct {
	AdminBooking `bson:",inline"`
	AdminNotes   []BookingNote `json:"admin_notes_list"`
}

// PaginatedBookings is the booking list page.
type PaginatedBookings struct {
	Items      []AdminBooking `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// BookingListQuery captures the filters of the admin booking list.
type BookingListQuery struct {
	Page      int
	PageSize  int
	Status    string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string
	SortOrder string
}

// OwnerScope restricts admin queries to one owner's data. Nil scope means
// platform-wide access.
type OwnerScope struct {
	ProfileID   string
	OwnerUserID string
}

// ApproveBookingRequest optionally attaches a note while approving.
type ApproveBookingRequest struct {
	Notes string `json:"notes,omitempty"`
}

// RejectBookingRequest optionally records why the booking was rejected.
type RejectBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelBookingRequest optionally records why the booking was cancelled.
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// RescheduleBookingRequest moves a booking to a new date and slot.
type RescheduleBookingRequest struct {
	NewDate     time.Time `json:"new_date" binding:"required"`
	NewTimeSlot string    `json:"new_time_slot,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// AddNoteRequest attaches an internal note.
type AddNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

// BlockCustomerRequest optionally records why the customer was blocked.
type BlockCustomerRequest struct {
	Reason string `json:"reason,omitempty"`
}

// Customer is a customer with booking statistics for one profile.
type Customer struct {
	ID                string     `bson:"id" json:"id"`
	Username          string     `bson:"username" json:"username"`
	Name              string     `bson:"name" json:"name"`
	Email             string     `bson:"email,omitempty" json:"email,omitempty"`
	Phone             string     `bson:"phone,omitempty" json:"phone,omitempty"`
	TotalBookings     int        `bson:"total_bookings" json:"total_bookings"`
	PendingBookings   int        `bson:"pending_bookings" json:"pending_bookings"`
	ConfirmedBookings int        `bson:"confirmed_bookings" json:"confirmed_bookings"`
	CompletedBookings int        `bson:"completed_bookings" json:"completed_bookings"`
	CancelledBookings int        `bson:"cancelled_bookings" json:"cancelled_bookings"`
	NoShowBookings    int        `bson:"no_show_bookings" json:"no_show_bookings"`
	FirstBooking      *time.Time `bson:"first_booking,omitempty" json:"first_booking,omitempty"`
	LastBooking       *time.Time `bson:"last_booking,omitempty" json:"last_booking,omitempty"`
	TotalSpent        float64    `bson:"total_spent" json:"total_spent"`
	IsBlocked         bool       `bson:"is_blocked" json:"is_blocked"`
	BlockedReason     string     `bson:"blocked_reason,omitempty" json:"blocked_reason,omitempty"`
	CreatedAt         time.Time  `bson:"created_at" json:"created_at"`
}

// PaginatedCustomers is the customer list page.
type PaginatedCustomers struct {
	Items      []Customer `json:"items"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}

// CustomerListQuery captures the filters of the admin customer list.
type CustomerListQuery struct {
	Page      int
	PageSize  int
	Search    string
	IsBlocked *bool
}

// BlockedCustomer marks a customer as blocked for one profile.
type BlockedCustomer struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	ProfileID string    `bson:"profile_id" json:"profile_id"`
	BlockedBy string    `bson:"blocked_by" json:"blocked_by"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// CustomerNote is an internal note about a customer, scoped to a profile.
type CustomerNote struct {
	ID            string    `bson:"id" json:"id"`
	CustomerID    string    `bson:"customer_id" json:"customer_id"`
	ProfileID     string    `bson:"profile_id" json:"profile_id"`
	Note          string    `bson:"note" json:"note"`
	CreatedBy     string    `bson:"created_by" json:"created_by"`
	CreatedByName string    `bson:"created_by_name" json:"created_by_name"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// DashboardStats is the admin analytics dashboard.
type DashboardStats struct {
	TotalBookings        int     `json:"total_bookings"`
	PendingBookings      int     `json:"pending_bookings"`
	ConfirmedBookings    int     `json:"confirmed_bookings"`
	TodayBookings        int     `json:"today_bookings"`
	ThisWeekBookings     int     `json:"this_week_bookings"`
	ThisMonthBookings    int     `json:"this_month_bookings"`
	TotalRevenue         float64 `json:"total_revenue"`
	ThisWeekRevenue      float64 `json:"this_week_revenue"`
	ThisMonthRevenue     float64 `json:"this_month_revenue"`
	TotalCustomers       int     `json:"total_customers"`
	NewCustomersThisWeek int     `json:"new_customers_this_week"`
	CompletionRate       float64 `json:"completion_rate"`
	NoShowRate           float64 `json:"no_show_rate"`
}

// BookingTrend is one bucket of a trend series.
type BookingTrend struct {
	Date    string  `bson:"date" json:"date"`
	Count   int     `bson:"count" json:"count"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

// ServiceStats ranks a service by bookings within a period.
type ServiceStats struct {
	ServiceID     string  `bson:"service_id" json:"service_id"`
	ServiceName   string  `bson:"service_name" json:"service_name"`
	BookingCount  int     `bson:"booking_count" json:"booking_count"`
	Revenue       float64 `bson:"revenue" json:"revenue"`
	Percentage    float64 `bson:"percentage" json:"percentage"`
	AverageRating float64 `bson:"average_rating" json:"average_rating"`
}

// PeakHour is booking volume for one hour of the day.
type PeakHour struct {
	Hour         string  `json:"hour"` // "09:00"
	BookingCount int     `json:"booking_count"`
	Percentage   float64 `json:"percentage"`
}

// AnalyticsOverview summarizes a date range.
type AnalyticsOverview struct {
	Period                string         `json:"period"` // "YYYY-MM-DD to YYYY-MM-DD"
	TotalBookings         int            `json:"total_bookings"`
	TotalRevenue          float64        `json:"total_revenue"`
	AverageBookingValue   float64        `json:"average_booking_value"`
	BookingCompletionRate float64        `json:"booking_completion_rate"`
	CancellationRate      float64        `json:"cancellation_rate"`
	PopularServices       []ServiceStats `json:"popular_services"`
	BookingTrends         []BookingTrend `json:"booking_trends"`
}

// ActivityLog records a management action for the audit trail.
type ActivityLog struct {
	ID         string                 `bson:"id" json:"id"`
	UserID     string                 `bson:"user_id" json:"user_id"`
	UserName   string                 `bson:"user_name" json:"user_name"`
	ProfileID  string                 `bson:"profile_id,omitempty" json:"profile_id,omitempty"`
	Action     string                 `bson:"action" json:"action"`
	EntityType string                 `bson:"entity_type" json:"entity_type"`
	EntityID   string                 `bson:"entity_id" json:"entity_id"`
	Details    map[string]interface{} `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt  time.Time              `bson:"created_at" json:"created_at"`
}

// PaginatedActivities is the activity feed page.
type PaginatedActivities struct {
	Items      []ActivityLog `json:"items"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}
