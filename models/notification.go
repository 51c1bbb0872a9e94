package models

// EmailPayload is a fully rendered email handed to the task queue.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// ReminderPayload schedules a pre-appointment reminder. The booking is
// re-checked at delivery time, so only the ID travels.
type ReminderPayload struct {
	BookingID string `json:"booking_id"`
}
