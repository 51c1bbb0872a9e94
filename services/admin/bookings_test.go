package admin

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	availabilityRepo "bookify/database/repository/availability"
	"bookify/models"
	"bookify/utils"
)

type fakeAdminRepo struct {
	items      []models.AdminBooking
	total      int64
	lastQuery  models.BookingListQuery
	lastScope  *models.OwnerScope
	activities []*models.ActivityLog
}

func (f *fakeAdminRepo) ListBookings(ctx context.Context, q models.BookingListQuery, scope *models.OwnerScope) ([]models.AdminBooking, int64, error) {
	f.lastQuery = q
	f.lastScope = scope
	return f.items, f.total, nil
}

func (f *fakeAdminRepo) LogActivity(ctx context.Context, entry *models.ActivityLog) error {
	f.activities = append(f.activities, entry)
	return nil
}

func (f *fakeAdminRepo) GetBookingDetail(ctx context.Context, bookingID string) (*models.AdminBooking, error) {
	return nil, nil
}

func (f *fakeAdminRepo) ListCustomers(ctx context.Context, q models.CustomerListQuery, scope *models.OwnerScope) ([]models.Customer, int64, error) {
	return nil, 0, nil
}

func (f *fakeAdminRepo) GetCustomerStats(ctx context.Context, customerID string, scope *models.OwnerScope) (*models.Customer, error) {
	return nil, nil
}

func (f *fakeAdminRepo) BlockCustomer(ctx context.Context, block *models.BlockedCustomer) error {
	return nil
}

func (f *fakeAdminRepo) UnblockCustomer(ctx context.Context, customerID, profileID string) (bool, error) {
	return false, nil
}

func (f *fakeAdminRepo) GetBlock(ctx context.Context, customerID, profileID string) (*models.BlockedCustomer, error) {
	return nil, nil
}

func (f *fakeAdminRepo) AddCustomerNote(ctx context.Context, note *models.CustomerNote) error {
	return nil
}

func (f *fakeAdminRepo) GetCustomerNotes(ctx context.Context, customerID, profileID string) ([]models.CustomerNote, error) {
	return nil, nil
}

func (f *fakeAdminRepo) GetDashboardStats(ctx context.Context, scope *models.OwnerScope) (*models.DashboardStats, error) {
	return nil, nil
}

func (f *fakeAdminRepo) GetBookingTrends(ctx context.Context, scope *models.OwnerScope, start, end time.Time, granularity string) ([]models.BookingTrend, error) {
	return nil, nil
}

func (f *fakeAdminRepo) GetDailyTrends(ctx context.Context, scope *models.OwnerScope, days int) ([]models.BookingTrend, error) {
	return nil, nil
}

func (f *fakeAdminRepo) GetAnalyticsOverview(ctx context.Context, scope *models.OwnerScope, start, end time.Time) (*models.AnalyticsOverview, error) {
	return nil, nil
}

func (f *fakeAdminRepo) GetPopularServices(ctx context.Context, scope *models.OwnerScope, start, end *time.Time, limit int) ([]models.ServiceStats, error) {
	return nil, nil
}

func (f *fakeAdminRepo) GetPeakHours(ctx context.Context, scope *models.OwnerScope, start, end *time.Time) ([]models.PeakHour, error) {
	return nil, nil
}

func (f *fakeAdminRepo) ListActivities(ctx context.Context, scope *models.OwnerScope, page, pageSize int) ([]models.ActivityLog, int64, error) {
	return nil, 0, nil
}

type fakeBookingRepo struct {
	bookings      map[string]*models.Booking
	statusLog     []string
	notes         []*models.BookingNote
	rescheduled   []string
	rescheduleErr error
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	f.statusLog = append(f.statusLog, id+":"+status)
	return nil
}

func (f *fakeBookingRepo) Reschedule(ctx context.Context, id string, newDate time.Time, newTimeSlot string) error {
	if f.rescheduleErr != nil {
		return f.rescheduleErr
	}
	f.rescheduled = append(f.rescheduled, id)
	return nil
}

func (f *fakeBookingRepo) AddNote(ctx context.Context, note *models.BookingNote) error {
	f.notes = append(f.notes, note)
	return nil
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error { return nil }

func (f *fakeBookingRepo) RefExists(ctx context.Context, ref string) (bool, error) {
	return false, nil
}

func (f *fakeBookingRepo) GetByRef(ctx context.Context, ref string) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) GetByProfile(ctx context.Context, profileID string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) GetByUserAndProfile(ctx context.Context, userID, profileID string, page, pageSize int) ([]models.Booking, int64, error) {
	return nil, 0, nil
}

func (f *fakeBookingRepo) GetNotes(ctx context.Context, bookingID string) ([]models.BookingNote, error) {
	return nil, nil
}

type fakeProfileRepo struct {
	byOwner map[string]*models.BusinessProfile
}

func (f *fakeProfileRepo) GetFirstByOwner(ownerID string) (*models.BusinessProfile, error) {
	return f.byOwner[ownerID], nil
}

func (f *fakeProfileRepo) GetByID(id string) (*models.BusinessProfile, error) {
	for _, p := range f.byOwner {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) Create(p *models.BusinessProfile) error { return nil }

func (f *fakeProfileRepo) GetAll() ([]models.BusinessProfile, error) { return nil, nil }

func (f *fakeProfileRepo) GetByOwner(ownerID string, skip, limit int) ([]models.BusinessProfile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) Update(p *models.BusinessProfile) error { return nil }

func (f *fakeProfileRepo) Delete(id string) error { return nil }

func (f *fakeProfileRepo) AddService(profileID string, svc models.Service) error { return nil }

func (f *fakeProfileRepo) UpdateService(profileID string, svc models.Service) error { return nil }

func (f *fakeProfileRepo) DeleteService(profileID, serviceID string) error { return nil }

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) Create(user *models.User) error { return nil }

func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) { return nil, nil }

func (f *fakeUserRepo) Update(user *models.User) error { return nil }

func (f *fakeUserRepo) UpdateFields(id string, fields bson.M) error { return nil }

func (f *fakeUserRepo) Delete(id string) error { return nil }

func (f *fakeUserRepo) ListOwners(page, limit int, search string, includeDeleted bool) ([]models.OwnerAccount, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) GetOwner(id string) (*models.OwnerAccount, error) { return nil, nil }

// fakeSlotRepo records claim and release operations in order.
type fakeSlotRepo struct {
	ops    []string
	incErr error
}

func (f *fakeSlotRepo) IncrementBooked(ctx context.Context, profileID string, date time.Time, timeSlot string) error {
	if f.incErr != nil {
		return f.incErr
	}
	f.ops = append(f.ops, "claim "+timeSlot)
	return nil
}

func (f *fakeSlotRepo) DecrementBooked(ctx context.Context, profileID string, date time.Time, timeSlot string) error {
	f.ops = append(f.ops, "release "+timeSlot)
	return nil
}

func (f *fakeSlotRepo) CreateMany(ctx context.Context, slots []models.AvailabilitySlot) error {
	return nil
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, slotID string) (*models.AvailabilitySlot, error) {
	return nil, nil
}

func (f *fakeSlotRepo) GetByProfileAndDate(ctx context.Context, profileID string, date time.Time) ([]models.AvailabilitySlot, error) {
	return nil, nil
}

func (f *fakeSlotRepo) GetByProfileAndRange(ctx context.Context, profileID string, start, end time.Time) ([]models.AvailabilitySlot, error) {
	return nil, nil
}

func (f *fakeSlotRepo) GetSlot(ctx context.Context, profileID string, date time.Time, timeSlot string) (*models.AvailabilitySlot, error) {
	return nil, nil
}

func (f *fakeSlotRepo) UpdateCapacity(ctx context.Context, slotID string, maxCapacity int) (*models.AvailabilitySlot, error) {
	return nil, nil
}

func (f *fakeSlotRepo) Delete(ctx context.Context, slotID string) error { return nil }

type fakeAvailabilitySvc struct {
	invalidated []string
}

func (f *fakeAvailabilitySvc) InvalidateProfile(profileID string) {
	f.invalidated = append(f.invalidated, profileID)
}

func (f *fakeAvailabilitySvc) CreateSlots(ctx context.Context, profileID, callerID, callerRole string, req models.AvailabilityCreate) ([]models.AvailabilitySlot, error) {
	return nil, nil
}

func (f *fakeAvailabilitySvc) UpdateCapacity(ctx context.Context, slotID, callerID, callerRole string, maxCapacity int) (*models.AvailabilitySlot, error) {
	return nil, nil
}

func (f *fakeAvailabilitySvc) DeleteSlot(ctx context.Context, slotID, callerID, callerRole string) error {
	return nil
}

func (f *fakeAvailabilitySvc) GetRange(ctx context.Context, profileID string, start, end time.Time) ([]models.DateAvailability, error) {
	return nil, nil
}

func (f *fakeAvailabilitySvc) GetDate(ctx context.Context, profileID string, date time.Time) (*models.DateAvailability, error) {
	return nil, nil
}

type fakeNotifier struct {
	statuses  []string
	cancelled int
}

func (f *fakeNotifier) NotifyBookingCreated(b *models.Booking, p *models.BusinessProfile) {}

func (f *fakeNotifier) NotifyStatusUpdate(b *models.Booking, reason string) {
	f.statuses = append(f.statuses, b.Status)
}

func (f *fakeNotifier) NotifyCancellation(b *models.Booking) { f.cancelled++ }

func (f *fakeNotifier) HandleEmailTask(ctx context.Context, t *asynq.Task) error { return nil }

func (f *fakeNotifier) HandleReminderTask(ctx context.Context, t *asynq.Task) error { return nil }

type fixture struct {
	svc      *DefaultAdminService
	repo     *fakeAdminRepo
	books    *fakeBookingRepo
	slots    *fakeSlotRepo
	avail    *fakeAvailabilitySvc
	notifier *fakeNotifier
	users    *fakeUserRepo
}

// newFixture wires two owners with a profile each and a pending booking
// against the first profile.
func newFixture() *fixture {
	f := &fixture{
		repo: &fakeAdminRepo{},
		books: &fakeBookingRepo{bookings: map[string]*models.Booking{
			"b1": {
				ID: "b1", UserID: "cust-1", ProfileID: "p1",
				Status: models.BookingStatusPending, TimeSlot: "10:00-10:30",
				Date: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
			},
			"b2": {
				ID: "b2", UserID: "cust-2", ProfileID: "p2",
				Status: models.BookingStatusPending,
			},
		}},
		slots:    &fakeSlotRepo{},
		avail:    &fakeAvailabilitySvc{},
		notifier: &fakeNotifier{},
		users: &fakeUserRepo{users: map[string]*models.User{
			"owner-1": {ID: "owner-1", Name: "Joe Kamau", Role: models.RoleOwner},
			"cust-1":  {ID: "cust-1", Name: "Alice", OwnerID: "owner-1"},
			"cust-2":  {ID: "cust-2", Name: "Bob", OwnerID: "owner-2"},
		}},
	}
	profiles := &fakeProfileRepo{byOwner: map[string]*models.BusinessProfile{
		"owner-1": {ID: "p1", Name: "Joe's Barbershop", OwnerID: "owner-1"},
		"owner-2": {ID: "p2", Name: "Mary's Salon", OwnerID: "owner-2"},
	}}
	f.svc = &DefaultAdminService{
		Repo:         f.repo,
		Bookings:     f.books,
		Profiles:     profiles,
		Users:        f.users,
		Slots:        f.slots,
		Availability: f.avail,
		Notifier:     f.notifier,
	}
	return f
}

func wantStatus(t *testing.T, err error, code int) {
	t.Helper()
	var svcErr *utils.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected a service error, got %v", err)
	}
	if svcErr.Code != code {
		t.Fatalf("expected status %d, got %d (%s)", code, svcErr.Code, svcErr.Message)
	}
}

func TestApproveOnlyPending(t *testing.T) {
	f := newFixture()

	got, err := f.svc.ApproveBooking(context.Background(), "owner-1", models.RoleOwner, "b1", models.ApproveBookingRequest{})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if got.Status != models.BookingStatusConfirmed {
		t.Fatalf("status = %s, want CONFIRMED", got.Status)
	}
	if len(f.notifier.statuses) != 1 {
		t.Errorf("expected one status notification, got %d", len(f.notifier.statuses))
	}
	if len(f.repo.activities) != 1 || f.repo.activities[0].Action != "booking_approved" {
		t.Errorf("expected a booking_approved audit entry, got %+v", f.repo.activities)
	}

	// Approving twice must fail: the booking is no longer pending.
	_, err = f.svc.ApproveBooking(context.Background(), "owner-1", models.RoleOwner, "b1", models.ApproveBookingRequest{})
	wantStatus(t, err, http.StatusBadRequest)
}

func TestOwnerScope(t *testing.T) {
	f := newFixture()

	// Another owner's booking is out of scope.
	_, err := f.svc.ApproveBooking(context.Background(), "owner-1", models.RoleOwner, "b2", models.ApproveBookingRequest{})
	wantStatus(t, err, http.StatusForbidden)

	// Unless the booking's customer belongs to the caller.
	f.users.users["cust-2"].OwnerID = "owner-1"
	if _, err := f.svc.ApproveBooking(context.Background(), "owner-1", models.RoleOwner, "b2", models.ApproveBookingRequest{}); err != nil {
		t.Fatalf("approve via customer ownership: %v", err)
	}

	// Platform admins are never scoped.
	f = newFixture()
	if _, err := f.svc.ApproveBooking(context.Background(), "staff-1", models.RoleAdmin, "b2", models.ApproveBookingRequest{}); err != nil {
		t.Fatalf("admin approve: %v", err)
	}

	// An owner without a profile has nothing to manage.
	_, err = f.svc.ApproveBooking(context.Background(), "owner-3", models.RoleOwner, "b1", models.ApproveBookingRequest{})
	wantStatus(t, err, http.StatusNotFound)
}

func TestRejectFreesSlot(t *testing.T) {
	f := newFixture()

	got, err := f.svc.RejectBooking(context.Background(), "owner-1", models.RoleOwner, "b1",
		models.RejectBookingRequest{Reason: "double booked"})
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if got.Status != models.BookingStatusRejected {
		t.Fatalf("status = %s, want REJECTED", got.Status)
	}
	if len(f.slots.ops) != 1 || f.slots.ops[0] != "release 10:00-10:30" {
		t.Fatalf("slot ops = %v, want one release", f.slots.ops)
	}
	if len(f.avail.invalidated) != 1 || f.avail.invalidated[0] != "p1" {
		t.Errorf("availability cache not invalidated: %v", f.avail.invalidated)
	}
	if len(f.books.notes) != 1 || f.books.notes[0].Note != "Rejection reason: double booked" {
		t.Errorf("notes = %+v", f.books.notes)
	}
}

func TestCancelStates(t *testing.T) {
	f := newFixture()
	f.books.bookings["b1"].Status = models.BookingStatusCompleted

	_, err := f.svc.CancelBooking(context.Background(), "owner-1", models.RoleOwner, "b1", models.CancelBookingRequest{})
	wantStatus(t, err, http.StatusBadRequest)

	f.books.bookings["b1"].Status = models.BookingStatusConfirmed
	got, err := f.svc.CancelBooking(context.Background(), "owner-1", models.RoleOwner, "b1", models.CancelBookingRequest{})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.Status != models.BookingStatusCancelled {
		t.Fatalf("status = %s, want CANCELLED", got.Status)
	}
	if len(f.slots.ops) != 1 || f.slots.ops[0] != "release 10:00-10:30" {
		t.Errorf("slot ops = %v, want one release", f.slots.ops)
	}
	if f.notifier.cancelled != 1 {
		t.Errorf("expected one cancellation notification, got %d", f.notifier.cancelled)
	}
}

func TestCompleteAndNoShowRequireConfirmed(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CompleteBooking(context.Background(), "owner-1", models.RoleOwner, "b1")
	wantStatus(t, err, http.StatusBadRequest)
	_, err = f.svc.NoShowBooking(context.Background(), "owner-1", models.RoleOwner, "b1")
	wantStatus(t, err, http.StatusBadRequest)

	f.books.bookings["b1"].Status = models.BookingStatusConfirmed
	got, err := f.svc.CompleteBooking(context.Background(), "owner-1", models.RoleOwner, "b1")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got.Status != models.BookingStatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", got.Status)
	}

	f.books.bookings["b1"].Status = models.BookingStatusConfirmed
	got, err = f.svc.NoShowBooking(context.Background(), "owner-1", models.RoleOwner, "b1")
	if err != nil {
		t.Fatalf("no-show: %v", err)
	}
	if got.Status != models.BookingStatusNoShow {
		t.Fatalf("status = %s, want NO_SHOW", got.Status)
	}
}

func TestRescheduleValidation(t *testing.T) {
	f := newFixture()

	_, err := f.svc.RescheduleBooking(context.Background(), "owner-1", models.RoleOwner, "b1",
		models.RescheduleBookingRequest{NewDate: time.Now().UTC().Add(-time.Hour)})
	wantStatus(t, err, http.StatusBadRequest)
	if len(f.slots.ops) != 0 {
		t.Fatalf("nothing may be claimed for a past date, ops: %v", f.slots.ops)
	}

	f.slots.incErr = availabilityRepo.ErrSlotFull
	_, err = f.svc.RescheduleBooking(context.Background(), "owner-1", models.RoleOwner, "b1",
		models.RescheduleBookingRequest{NewDate: time.Now().UTC().Add(72 * time.Hour), NewTimeSlot: "11:00-11:30"})
	wantStatus(t, err, http.StatusConflict)

	f.slots.incErr = mongo.ErrNoDocuments
	_, err = f.svc.RescheduleBooking(context.Background(), "owner-1", models.RoleOwner, "b1",
		models.RescheduleBookingRequest{NewDate: time.Now().UTC().Add(72 * time.Hour), NewTimeSlot: "11:00-11:30"})
	wantStatus(t, err, http.StatusNotFound)
}

func TestRescheduleClaimsNewBeforeReleasingOld(t *testing.T) {
	f := newFixture()
	newDate := time.Now().UTC().Add(72 * time.Hour)

	got, err := f.svc.RescheduleBooking(context.Background(), "owner-1", models.RoleOwner, "b1",
		models.RescheduleBookingRequest{NewDate: newDate, NewTimeSlot: "11:00-11:30"})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}

	want := []string{"claim 11:00-11:30", "release 10:00-10:30"}
	if len(f.slots.ops) != 2 || f.slots.ops[0] != want[0] || f.slots.ops[1] != want[1] {
		t.Fatalf("slot ops = %v, want %v", f.slots.ops, want)
	}
	if got.TimeSlot != "11:00-11:30" || !got.Date.Equal(newDate) {
		t.Errorf("booking not moved: %s at %v", got.TimeSlot, got.Date)
	}
	if len(f.avail.invalidated) != 1 {
		t.Errorf("availability cache not invalidated: %v", f.avail.invalidated)
	}
	if len(f.repo.activities) != 1 || f.repo.activities[0].Action != "booking_rescheduled" {
		t.Errorf("expected a booking_rescheduled audit entry, got %+v", f.repo.activities)
	}
}

func TestRescheduleUndoesClaimWhenPersistFails(t *testing.T) {
	f := newFixture()
	f.books.rescheduleErr = errors.New("write failed")

	_, err := f.svc.RescheduleBooking(context.Background(), "owner-1", models.RoleOwner, "b1",
		models.RescheduleBookingRequest{NewDate: time.Now().UTC().Add(72 * time.Hour), NewTimeSlot: "11:00-11:30"})
	if err == nil {
		t.Fatal("expected the persistence error to surface")
	}

	// The fresh claim is undone; the original slot is untouched.
	want := []string{"claim 11:00-11:30", "release 11:00-11:30"}
	if len(f.slots.ops) != 2 || f.slots.ops[0] != want[0] || f.slots.ops[1] != want[1] {
		t.Fatalf("slot ops = %v, want %v", f.slots.ops, want)
	}
	if b := f.books.bookings["b1"]; b.TimeSlot != "10:00-10:30" {
		t.Errorf("booking moved despite failure: %s", b.TimeSlot)
	}
}

func TestListBookingsValidation(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ListBookings(context.Background(), "staff-1", models.RoleAdmin,
		models.BookingListQuery{Status: "SOMEDAY"})
	wantStatus(t, err, http.StatusBadRequest)

	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err = f.svc.ListBookings(context.Background(), "staff-1", models.RoleAdmin,
		models.BookingListQuery{StartDate: &start, EndDate: &end})
	wantStatus(t, err, http.StatusBadRequest)
}

func TestListBookingsPagination(t *testing.T) {
	f := newFixture()
	f.repo.total = 41

	out, err := f.svc.ListBookings(context.Background(), "staff-1", models.RoleAdmin, models.BookingListQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if f.repo.lastQuery.Page != 1 || f.repo.lastQuery.PageSize != 20 {
		t.Fatalf("defaults not applied: page=%d size=%d", f.repo.lastQuery.Page, f.repo.lastQuery.PageSize)
	}
	if out.TotalPages != 3 {
		t.Errorf("total pages = %d, want 3 for 41 items of 20", out.TotalPages)
	}
	if f.repo.lastScope != nil {
		t.Errorf("admin queries must be unscoped, got %+v", f.repo.lastScope)
	}

	out, err = f.svc.ListBookings(context.Background(), "staff-1", models.RoleAdmin,
		models.BookingListQuery{Page: 2, PageSize: 500})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.PageSize != 100 {
		t.Errorf("page size = %d, want the 100 cap", out.PageSize)
	}

	// Owners are scoped to their profile.
	if _, err := f.svc.ListBookings(context.Background(), "owner-1", models.RoleOwner, models.BookingListQuery{}); err != nil {
		t.Fatalf("owner list: %v", err)
	}
	if f.repo.lastScope == nil || f.repo.lastScope.ProfileID != "p1" {
		t.Errorf("owner scope = %+v, want profile p1", f.repo.lastScope)
	}
}

func TestAddBookingNote(t *testing.T) {
	f := newFixture()

	note, err := f.svc.AddBookingNote(context.Background(), "owner-1", models.RoleOwner, "b1", "running late")
	if err != nil {
		t.Fatalf("add note: %v", err)
	}
	if note.Note != "running late" || note.CreatedByName != "Joe Kamau" {
		t.Errorf("note = %+v", note)
	}
	if len(f.books.notes) != 1 {
		t.Fatalf("expected the note to be persisted, got %d", len(f.books.notes))
	}
}
