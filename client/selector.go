package client

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"bookify/models"
)

// Selection and submission failures. These are local validation errors;
// backend failures surface as *APIError / *TransportError instead.
var (
	ErrSelectorClosed = errors.New("selector is closed")
	ErrSubmitting     = errors.New("submission already in progress")
	ErrPastDate       = errors.New("date is in the past")
	ErrPastSlot       = errors.New("time slot has already started")
	ErrUnknownSlot    = errors.New("time slot is not in the loaded list")
	ErrSlotFull       = errors.New("time slot is full or unavailable")
	ErrNoSelection    = errors.New("no date and time slot selected")
)

// SelectorState is the lifecycle phase of a RescheduleSelector.
type SelectorState int

const (
	StateIdle SelectorState = iota
	StateDateSelected
	StateSlotsLoading
	StateSlotsLoaded
	StateSlotSelected
	StateSubmitting
	StateClosed
)

func (s SelectorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDateSelected:
		return "date_selected"
	case StateSlotsLoading:
		return "slots_loading"
	case StateSlotsLoaded:
		return "slots_loaded"
	case StateSlotSelected:
		return "slot_selected"
	case StateSubmitting:
		return "submitting"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// RescheduleSelector walks a booking through a date/slot change: pick a
// date, load that date's slots, pick a free slot, submit. Slots are fetched
// fresh on every date change and the backend stays the sole arbiter of
// capacity; the selector never mutates counts locally.
//
// Each loaded slot list carries a generation number. A date change or close
// bumps the generation, so a slow response for a superseded date is
// discarded instead of overwriting the newer list.
type RescheduleSelector struct {
	session   *Session
	bookingID string
	profileID string

	// Now supplies the clock for past-date and past-slot checks. Leave nil
	// for time.Now, or feed it from Client.ServerTime to avoid trusting
	// the local wall clock near midnight.
	Now func() time.Time

	mu           sync.Mutex
	state        SelectorState
	selectedDate time.Time
	selectedSlot string
	slots        []models.AvailabilitySlot
	lastErr      error
	generation   uint64
}

// NewRescheduleSelector opens a selector for one booking. The booking's
// current date is pre-filled for display, but SelectDate must still be
// called to load slots (and will reject the pre-filled date if it is past).
func NewRescheduleSelector(sess *Session, booking *models.Booking) *RescheduleSelector {
	return &RescheduleSelector{
		session:      sess,
		bookingID:    booking.ID,
		profileID:    booking.ProfileID,
		selectedDate: dateOnly(booking.Date),
		state:        StateIdle,
	}
}

// State returns the current lifecycle phase.
func (rs *RescheduleSelector) State() SelectorState {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.state
}

// SelectedDate returns the date the selector is working with.
func (rs *RescheduleSelector) SelectedDate() time.Time {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.selectedDate
}

// SelectedSlot returns the chosen slot string, empty until SelectSlot.
func (rs *RescheduleSelector) SelectedSlot() string {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.selectedSlot
}

// LastErr returns the most recent fetch or submit failure, nil after a
// successful load.
func (rs *RescheduleSelector) LastErr() error {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.lastErr
}

// SelectDate picks a day and loads its slots, clearing any chosen slot.
// Past dates are rejected up front. A fetch failure leaves the date
// selected with an empty slot list; no retry is attempted.
func (rs *RescheduleSelector) SelectDate(ctx context.Context, date time.Time) error {
	rs.mu.Lock()
	switch rs.state {
	case StateClosed:
		rs.mu.Unlock()
		return ErrSelectorClosed
	case StateSubmitting:
		rs.mu.Unlock()
		return ErrSubmitting
	}
	day := dateOnly(date)
	if beforeDay(day, rs.now()) {
		rs.mu.Unlock()
		return ErrPastDate
	}
	rs.selectedDate = day
	rs.selectedSlot = ""
	rs.slots = nil
	rs.lastErr = nil
	rs.state = StateSlotsLoading
	rs.generation++
	gen := rs.generation
	rs.mu.Unlock()

	return rs.fetchSlots(ctx, gen, day)
}

// fetchSlots loads one date's slots and applies the result only if gen is
// still the current generation and the selector is still open.
func (rs *RescheduleSelector) fetchSlots(ctx context.Context, gen uint64, date time.Time) error {
	avail, err := rs.session.client.DateAvailability(ctx, rs.profileID, date)

	rs.mu.Lock()
	defer rs.mu.Unlock()
	if gen != rs.generation || rs.state == StateClosed {
		return nil // superseded by a newer selection
	}
	if err != nil {
		rs.slots = nil
		rs.lastErr = err
		rs.state = StateDateSelected
		return err
	}
	rs.slots = avail.Slots
	rs.lastErr = nil
	rs.state = StateSlotsLoaded
	return nil
}

// DisplaySlots returns the slots to present. When the selected date is
// today, slots whose start time has already passed are filtered out of the
// view; the loaded list itself is never mutated.
func (rs *RescheduleSelector) DisplaySlots() []models.AvailabilitySlot {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	now := rs.now()
	today := sameDay(rs.selectedDate, now)
	out := make([]models.AvailabilitySlot, 0, len(rs.slots))
	for _, slot := range rs.slots {
		if today && slotStartPassed(slot.TimeSlot, now) {
			continue
		}
		out = append(out, slot)
	}
	return out
}

// Selectable reports whether a slot can be chosen. Full or disabled slots
// render as "Full" and never become the selection.
func Selectable(slot models.AvailabilitySlot) bool {
	return slot.IsAvailable && slot.BookedCount < slot.MaxCapacity
}

// SelectSlot chooses a slot from the loaded list. The slot must be present,
// have free capacity, and (for today) not have started yet.
func (rs *RescheduleSelector) SelectSlot(timeSlot string) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	switch rs.state {
	case StateClosed:
		return ErrSelectorClosed
	case StateSubmitting:
		return ErrSubmitting
	}

	var found *models.AvailabilitySlot
	for i := range rs.slots {
		if rs.slots[i].TimeSlot == timeSlot {
			found = &rs.slots[i]
			break
		}
	}
	if found == nil {
		return ErrUnknownSlot
	}
	if !Selectable(*found) {
		return ErrSlotFull
	}
	now := rs.now()
	if sameDay(rs.selectedDate, now) && slotStartPassed(timeSlot, now) {
		return ErrPastSlot
	}

	rs.selectedSlot = timeSlot
	rs.state = StateSlotSelected
	return nil
}

// Submit sends the reschedule to the backend. A final guard rejects
// selections the clock has overtaken without making the call. On success
// the selector closes; on failure the typed error is returned, the slot is
// cleared and the date's slots are re-fetched so the caller can pick again.
func (rs *RescheduleSelector) Submit(ctx context.Context) (*models.Booking, error) {
	rs.mu.Lock()
	switch rs.state {
	case StateClosed:
		rs.mu.Unlock()
		return nil, ErrSelectorClosed
	case StateSubmitting:
		rs.mu.Unlock()
		return nil, ErrSubmitting
	}
	if rs.selectedDate.IsZero() || rs.selectedSlot == "" {
		rs.mu.Unlock()
		return nil, ErrNoSelection
	}

	date, slot := rs.selectedDate, rs.selectedSlot
	now := rs.now()
	if beforeDay(date, now) {
		rs.state = StateSlotsLoaded
		rs.mu.Unlock()
		return nil, ErrPastDate
	}
	if sameDay(date, now) && slotStartPassed(slot, now) {
		rs.state = StateSlotsLoaded
		rs.mu.Unlock()
		return nil, ErrPastSlot
	}
	rs.state = StateSubmitting
	rs.mu.Unlock()

	// The date travels as a fixed-midnight ISO string regardless of locale.
	isoDate := date.Format("2006-01-02") + "T00:00:00.000Z"
	booking, err := rs.session.RescheduleBooking(ctx, rs.bookingID, isoDate, slot)

	rs.mu.Lock()
	if rs.state == StateClosed {
		rs.mu.Unlock()
		return booking, err
	}
	if err == nil {
		rs.state = StateClosed
		rs.mu.Unlock()
		return booking, nil
	}

	// The slot may have filled underneath us. Drop the selection and
	// reload the date so the caller sees current capacity.
	rs.selectedSlot = ""
	rs.lastErr = err
	rs.state = StateSlotsLoading
	rs.generation++
	gen := rs.generation
	rs.mu.Unlock()

	_ = rs.fetchSlots(ctx, gen, date)

	rs.mu.Lock()
	if gen == rs.generation {
		rs.lastErr = err // the submit failure, not any refetch error
	}
	rs.mu.Unlock()
	return nil, err
}

// Close abandons the selector without side effects. In-flight fetch
// responses are discarded.
func (rs *RescheduleSelector) Close() {
	rs.mu.Lock()
	rs.state = StateClosed
	rs.generation++
	rs.mu.Unlock()
}

func (rs *RescheduleSelector) now() time.Time {
	if rs.Now != nil {
		return rs.Now()
	}
	return time.Now()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// beforeDay compares calendar days, each in its own location.
func beforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// slotStartPassed reports whether a "HH:MM-HH:MM" slot's start time is at
// or before now on now's calendar day. Malformed slots are left visible;
// the backend remains the arbiter.
func slotStartPassed(timeSlot string, now time.Time) bool {
	start, _, _ := strings.Cut(timeSlot, "-")
	t, err := time.Parse("15:04", strings.TrimSpace(start))
	if err != nil {
		return false
	}
	startAt := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	return !startAt.After(now)
}
