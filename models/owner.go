package models

// OwnerDashboardStats is the lightweight dashboard for a business owner.
// Revenue here counts CONFIRMED bookings; the admin analytics count
// COMPLETED ones.
type OwnerDashboardStats struct {
	TotalBookings     int     `json:"total_bookings"`
	PendingBookings   int     `json:"pending_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	TodayBookings     int     `json:"today_bookings"`
	ThisWeekBookings  int     `json:"this_week_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
}

// ProfileWithBookingCount pairs a profile with its booking counters.
type ProfileWithBookingCount struct {
	BusinessProfile   `bson:",inline"`
	TotalBookings     int `json:"total_bookings"`
	PendingBookings   int `json:"pending_bookings"`
	ConfirmedBookings int `json:"confirmed_bookings"`
}

// ProfileServiceStats ranks a profile's service for the owner analytics view.
type ProfileServiceStats struct {
	ServiceID     string  `json:"service_id"`
	ServiceTitle  string  `json:"service_title"`
	TotalBookings int     `json:"total_bookings"`
	Revenue       float64 `json:"revenue"`
}

// DateCount is one day of the owner booking trend.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ProfileAnalytics is the per-profile analytics view for owners.
type ProfileAnalytics struct {
	ProfileID         string                `json:"profile_id"`
	ProfileName       string                `json:"profile_name"`
	TotalBookings     int                   `json:"total_bookings"`
	ConfirmedBookings int                   `json:"confirmed_bookings"`
	CancelledBookings int                   `json:"cancelled_bookings"`
	PopularServices   []ProfileServiceStats `json:"popular_services"`
	BookingTrend      []DateCount           `json:"booking_trend"`
}
