package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bookify/models"
)

const apiDateLayout = "2006-01-02"

// AvailabilityRange fetches grouped availability for a profile between two
// dates (inclusive). Public endpoint, no session required.
func (c *Client) AvailabilityRange(ctx context.Context, profileID string, start, end time.Time) ([]models.DateAvailability, error) {
	q := url.Values{}
	q.Set("start_date", start.Format(apiDateLayout))
	q.Set("end_date", end.Format(apiDateLayout))

	var out []models.DateAvailability
	path := fmt.Sprintf("/api/availability/profiles/%s?%s", url.PathEscape(profileID), q.Encode())
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DateAvailability fetches one date's slots for a profile. Public endpoint.
func (c *Client) DateAvailability(ctx context.Context, profileID string, date time.Time) (*models.DateAvailability, error) {
	var out models.DateAvailability
	path := fmt.Sprintf("/api/availability/profiles/%s/dates/%s",
		url.PathEscape(profileID), date.Format(apiDateLayout))
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookingByRef looks a booking up by its public reference code.
func (c *Client) BookingByRef(ctx context.Context, ref string) (*models.BookingDetail, error) {
	var out models.BookingDetail
	if err := c.do(ctx, http.MethodGet, "/api/bookings/ref/"+url.PathEscape(ref), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminBookingsQuery filters the admin booking list.
type AdminBookingsQuery struct {
	Page      int
	PageSize  int
	Status    string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
}

// AdminBookings fetches the filtered, paginated admin booking list.
func (s *Session) AdminBookings(ctx context.Context, query AdminBookingsQuery) (*models.PaginatedBookings, error) {
	q := url.Values{}
	if query.Page > 0 {
		q.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(query.PageSize))
	}
	if query.Status != "" {
		q.Set("status", query.Status)
	}
	if query.Search != "" {
		q.Set("search", query.Search)
	}
	if query.StartDate != nil {
		q.Set("start_date", query.StartDate.Format(apiDateLayout))
	}
	if query.EndDate != nil {
		q.Set("end_date", query.EndDate.Format(apiDateLayout))
	}

	path := "/api/admin/bookings"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var out models.PaginatedBookings
	if err := s.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveBooking confirms a pending booking.
func (s *Session) ApproveBooking(ctx context.Context, bookingID, notes string) (*models.Booking, error) {
	var out models.Booking
	body := models.ApproveBookingRequest{Notes: notes}
	if err := s.do(ctx, http.MethodPut, adminBookingPath(bookingID, "approve"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RejectBooking rejects a pending booking.
func (s *Session) RejectBooking(ctx context.Context, bookingID, reason string) (*models.Booking, error) {
	var out models.Booking
	body := models.RejectBookingRequest{Reason: reason}
	if err := s.do(ctx, http.MethodPut, adminBookingPath(bookingID, "reject"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelBooking cancels a pending or confirmed booking.
func (s *Session) CancelBooking(ctx context.Context, bookingID, reason string) (*models.Booking, error) {
	var out models.Booking
	body := models.CancelBookingRequest{Reason: reason}
	if err := s.do(ctx, http.MethodPut, adminBookingPath(bookingID, "cancel"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// reschedulePayload is the wire form of a reschedule request. The date
// travels as a fixed-midnight ISO string, never a locale-dependent value.
type reschedulePayload struct {
	NewDate     string `json:"new_date"`
	NewTimeSlot string `json:"new_time_slot,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// RescheduleBooking moves a booking to isoDate ("YYYY-MM-DDT00:00:00.000Z")
// and timeSlot. Most callers should drive this through RescheduleSelector.
func (s *Session) RescheduleBooking(ctx context.Context, bookingID, isoDate, timeSlot string) (*models.Booking, error) {
	var out models.Booking
	body := reschedulePayload{NewDate: isoDate, NewTimeSlot: timeSlot}
	if err := s.do(ctx, http.MethodPut, adminBookingPath(bookingID, "reschedule"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func adminBookingPath(bookingID, action string) string {
	return fmt.Sprintf("/api/admin/bookings/%s/%s", url.PathEscape(bookingID), action)
}
