package booking

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"

	availabilityRepo "bookify/database/repository/availability"
	"bookify/models"
	"bookify/utils"
)

type slotKey struct {
	profileID string
	date      time.Time
	slot      string
}

type fakeBookingRepo struct {
	bookings   map[string]*models.Booking
	byRef      map[string]*models.Booking
	created    []*models.Booking
	statusLog  []string
	collisions int
	refChecks  int
	failCreate error
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.created = append(f.created, booking)
	return nil
}

func (f *fakeBookingRepo) RefExists(ctx context.Context, ref string) (bool, error) {
	f.refChecks++
	if f.collisions > 0 {
		f.collisions--
		return true, nil
	}
	return false, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) GetByRef(ctx context.Context, ref string) (*models.Booking, error) {
	return f.byRef[ref], nil
}

func (f *fakeBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByProfile(ctx context.Context, profileID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProfileID == profileID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByUserAndProfile(ctx context.Context, userID, profileID string, page, pageSize int) ([]models.Booking, int64, error) {
	return nil, 0, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	f.statusLog = append(f.statusLog, id+":"+status)
	return nil
}

func (f *fakeBookingRepo) Reschedule(ctx context.Context, id string, newDate time.Time, newTimeSlot string) error {
	return nil
}

func (f *fakeBookingRepo) AddNote(ctx context.Context, note *models.BookingNote) error { return nil }

func (f *fakeBookingRepo) GetNotes(ctx context.Context, bookingID string) ([]models.BookingNote, error) {
	return nil, nil
}

type fakeSlotRepo struct {
	incremented []slotKey
	decremented []slotKey
	incErr      error
}

func (f *fakeSlotRepo) IncrementBooked(ctx context.Context, profileID string, date time.Time, timeSlot string) error {
	if f.incErr != nil {
		return f.incErr
	}
	f.incremented = append(f.incremented, slotKey{profileID, date, timeSlot})
	return nil
}

func (f *fakeSlotRepo) DecrementBooked(ctx context.Context, profileID string, date time.Time, timeSlot string) error {
	f.decremented = append(f.decremented, slotKey{profileID, date, timeSlot})
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

type fakeProfileRepo struct {
	profiles map[string]*models.BusinessProfile
}

func (f *fakeProfileRepo) GetByID(id string) (*models.BusinessProfile, error) {
	return f.profiles[id], nil
}

func (f *fakeProfileRepo) Create(p *models.BusinessProfile) error { return nil }

func (f *fakeProfileRepo) GetAll() ([]models.BusinessProfile, error) { return nil, nil }

func (f *fakeProfileRepo) GetByOwner(ownerID string, skip, limit int) ([]models.BusinessProfile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) GetFirstByOwner(ownerID string) (*models.BusinessProfile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) Update(p *models.BusinessProfile) error { return nil }

func (f *fakeProfileRepo) Delete(id string) error { return nil }

func (f *fakeProfileRepo) AddService(profileID string, svc models.Service) error { return nil }

func (f *fakeProfileRepo) UpdateService(profileID string, svc models.Service) error { return nil }

func (f *fakeProfileRepo) DeleteService(profileID, serviceID string) error { return nil }

type fakeAdminRepo struct {
	blocks map[string]*models.BlockedCustomer
}

func (f *fakeAdminRepo) GetBlock(ctx context.Context, customerID, profileID string) (*models.BlockedCustomer, error) {
	return f.blocks[customerID+"|"+profileID], nil
}

func (f *fakeAdminRepo) ListBookings(ctx context.Context, q models.BookingListQuery, scope *models.OwnerScope) ([]models.AdminBooking, int64, error) {
	return nil, 0, nil
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

func (f *fakeAdminRepo) LogActivity(ctx context.Context, entry *models.ActivityLog) error {
	return nil
}

func (f *fakeAdminRepo) ListActivities(ctx context.Context, scope *models.OwnerScope, page, pageSize int) ([]models.ActivityLog, int64, error) {
	return nil, 0, nil
}

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
	created   int
	statuses  []string
	cancelled int
}

func (f *fakeNotifier) NotifyBookingCreated(b *models.Booking, p *models.BusinessProfile) {
	f.created++
}

func (f *fakeNotifier) NotifyStatusUpdate(b *models.Booking, reason string) {
	f.statuses = append(f.statuses, b.Status)
}

func (f *fakeNotifier) NotifyCancellation(b *models.Booking) { f.cancelled++ }

func (f *fakeNotifier) HandleEmailTask(ctx context.Context, t *asynq.Task) error { return nil }

func (f *fakeNotifier) HandleReminderTask(ctx context.Context, t *asynq.Task) error { return nil }

type fixture struct {
	svc      *DefaultBookingService
	repo     *fakeBookingRepo
	slots    *fakeSlotRepo
	admin    *fakeAdminRepo
	avail    *fakeAvailabilitySvc
	notifier *fakeNotifier
}

func newFixture() *fixture {
	f := &fixture{
		repo:     &fakeBookingRepo{bookings: map[string]*models.Booking{}, byRef: map[string]*models.Booking{}},
		slots:    &fakeSlotRepo{},
		admin:    &fakeAdminRepo{blocks: map[string]*models.BlockedCustomer{}},
		avail:    &fakeAvailabilitySvc{},
		notifier: &fakeNotifier{},
	}
	profiles := &fakeProfileRepo{profiles: map[string]*models.BusinessProfile{
		"p1": {
			ID:      "p1",
			Name:    "Joe's Barbershop",
			OwnerID: "owner-1",
			Services: []models.Service{
				{ID: "svc-1", Title: "Classic Cut", Price: 25},
			},
		},
	}}
	f.svc = &DefaultBookingService{
		Repo:         f.repo,
		Profiles:     profiles,
		Slots:        f.slots,
		Admin:        f.admin,
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

var refPattern = regexp.MustCompile(`^[0-9A-F]{6}$`)

func TestGenerateRefFormat(t *testing.T) {
	for i := 0; i < 200; i++ {
		ref, err := generateRef()
		if err != nil {
			t.Fatalf("generateRef: %v", err)
		}
		if !refPattern.MatchString(ref) {
			t.Fatalf("ref %q is not 6 uppercase hex characters", ref)
		}
	}
}

func TestUniqueRefRetriesOnCollision(t *testing.T) {
	f := newFixture()
	f.repo.collisions = 3

	ref, err := f.svc.uniqueRef(context.Background())
	if err != nil {
		t.Fatalf("uniqueRef: %v", err)
	}
	if !refPattern.MatchString(ref) {
		t.Fatalf("ref %q is not 6 uppercase hex characters", ref)
	}
	if f.repo.refChecks != 4 {
		t.Fatalf("expected 4 existence checks (3 collisions + 1), got %d", f.repo.refChecks)
	}
}

func TestUniqueRefGivesUpEventually(t *testing.T) {
	f := newFixture()
	f.repo.collisions = 1000

	if _, err := f.svc.uniqueRef(context.Background()); err == nil {
		t.Fatal("expected an error when every candidate collides")
	}
	if f.repo.refChecks != refAttempts {
		t.Fatalf("expected %d attempts, got %d", refAttempts, f.repo.refChecks)
	}
}

func TestCreateRejectsPastDate(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), "u1", models.BookingCreate{
		ProfileID: "p1",
		Date:      time.Now().UTC().Add(-time.Hour),
	})
	wantStatus(t, err, http.StatusBadRequest)
	if len(f.repo.created) != 0 || len(f.slots.incremented) != 0 {
		t.Fatal("nothing should be written for a past-dated booking")
	}
}

func TestCreateUnknownProfileAndService(t *testing.T) {
	f := newFixture()
	future := time.Now().UTC().Add(48 * time.Hour)

	_, err := f.svc.Create(context.Background(), "u1", models.BookingCreate{
		ProfileID: "missing",
		Date:      future,
	})
	wantStatus(t, err, http.StatusNotFound)

	_, err = f.svc.Create(context.Background(), "u1", models.BookingCreate{
		ProfileID: "p1",
		ServiceID: "nope",
		Date:      future,
	})
	wantStatus(t, err, http.StatusNotFound)
}

func TestCreateBlockedCustomer(t *testing.T) {
	f := newFixture()
	f.admin.blocks["u1|p1"] = &models.BlockedCustomer{UserID: "u1", ProfileID: "p1"}

	_, err := f.svc.Create(context.Background(), "u1", models.BookingCreate{
		ProfileID: "p1",
		Date:      time.Now().UTC().Add(48 * time.Hour),
	})
	wantStatus(t, err, http.StatusForbidden)
}

func TestCreateClaimsSlotAndStoresPending(t *testing.T) {
	f := newFixture()
	date := time.Now().UTC().Add(48 * time.Hour)

	resp, err := f.svc.Create(context.Background(), "u1", models.BookingCreate{
		ProfileID: "p1",
		ServiceID: "svc-1",
		Date:      date,
		TimeSlot:  "10:00-10:30",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if len(f.slots.incremented) != 1 {
		t.Fatalf("expected one slot claim, got %d", len(f.slots.incremented))
	}
	claim := f.slots.incremented[0]
	wantDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if claim.profileID != "p1" || claim.slot != "10:00-10:30" || !claim.date.Equal(wantDay) {
		t.Fatalf("claim = %+v, want p1 / %v / 10:00-10:30", claim, wantDay)
	}

	if len(f.repo.created) != 1 {
		t.Fatalf("expected one booking written, got %d", len(f.repo.created))
	}
	b := f.repo.created[0]
	if b.Status != models.BookingStatusPending {
		t.Errorf("status = %s, want PENDING", b.Status)
	}
	if !refPattern.MatchString(b.BookingRef) || resp.BookingRef != b.BookingRef {
		t.Errorf("ref mismatch: stored %q, returned %q", b.BookingRef, resp.BookingRef)
	}
	if f.notifier.created != 1 {
		t.Errorf("expected one creation notification, got %d", f.notifier.created)
	}
	if len(f.avail.invalidated) != 1 || f.avail.invalidated[0] != "p1" {
		t.Errorf("availability cache not invalidated: %v", f.avail.invalidated)
	}
}

func TestCreateSlotConflicts(t *testing.T) {
	f := newFixture()
	f.slots.incErr = availabilityRepo.ErrSlotFull

	_, err := f.svc.Create(context.Background(), "u1", models.BookingCreate{
		ProfileID: "p1",
		Date:      time.Now().UTC().Add(48 * time.Hour),
		TimeSlot:  "10:00-10:30",
	})
	wantStatus(t, err, http.StatusConflict)
	if len(f.repo.created) != 0 {
		t.Fatal("no booking may be written when the slot is full")
	}

	f.slots.incErr = mongo.ErrNoDocuments
	_, err = f.svc.Create(context.Background(), "u1", models.BookingCreate{
		ProfileID: "p1",
		Date:      time.Now().UTC().Add(48 * time.Hour),
		TimeSlot:  "10:00-10:30",
	})
	wantStatus(t, err, http.StatusNotFound)
}

func TestCreateReleasesSlotWhenPersistFails(t *testing.T) {
	f := newFixture()
	f.repo.failCreate = errors.New("write failed")
	date := time.Now().UTC().Add(48 * time.Hour)

	_, err := f.svc.Create(context.Background(), "u1", models.BookingCreate{
		ProfileID: "p1",
		Date:      date,
		TimeSlot:  "10:00-10:30",
	})
	if err == nil {
		t.Fatal("expected the persistence error to surface")
	}
	if len(f.slots.decremented) != 1 {
		t.Fatalf("claimed slot must be released on failure, decrements: %d", len(f.slots.decremented))
	}
}

func TestUpdateStatusOwnerOnly(t *testing.T) {
	f := newFixture()
	f.repo.bookings["b1"] = &models.Booking{
		ID: "b1", UserID: "u1", ProfileID: "p1", Status: models.BookingStatusPending,
	}

	_, err := f.svc.UpdateStatus(context.Background(), "b1", "intruder", models.BookingStatusConfirmed)
	wantStatus(t, err, http.StatusForbidden)
}

func TestUpdateStatusTransitions(t *testing.T) {
	f := newFixture()
	f.repo.bookings["b1"] = &models.Booking{
		ID: "b1", UserID: "u1", ProfileID: "p1", Status: models.BookingStatusPending,
	}

	got, err := f.svc.UpdateStatus(context.Background(), "b1", "owner-1", models.BookingStatusConfirmed)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if got.Status != models.BookingStatusConfirmed {
		t.Fatalf("status = %s, want CONFIRMED", got.Status)
	}
	if len(f.notifier.statuses) != 1 {
		t.Errorf("expected a status notification, got %d", len(f.notifier.statuses))
	}

	// Owners decide CONFIRMED or REJECTED, nothing else.
	f.repo.bookings["b2"] = &models.Booking{
		ID: "b2", UserID: "u1", ProfileID: "p1", Status: models.BookingStatusPending,
	}
	_, err = f.svc.UpdateStatus(context.Background(), "b2", "owner-1", models.BookingStatusCompleted)
	wantStatus(t, err, http.StatusBadRequest)

	// Only pending bookings can be decided.
	f.repo.bookings["b3"] = &models.Booking{
		ID: "b3", UserID: "u1", ProfileID: "p1", Status: models.BookingStatusConfirmed,
	}
	_, err = f.svc.UpdateStatus(context.Background(), "b3", "owner-1", models.BookingStatusRejected)
	wantStatus(t, err, http.StatusBadRequest)
}

func TestUpdateStatusRejectReleasesSlot(t *testing.T) {
	f := newFixture()
	day := time.Date(2026, 9, 4, 10, 0, 0, 0, time.UTC)
	f.repo.bookings["b1"] = &models.Booking{
		ID: "b1", UserID: "u1", ProfileID: "p1",
		Status: models.BookingStatusPending, Date: day, TimeSlot: "10:00-10:30",
	}

	if _, err := f.svc.UpdateStatus(context.Background(), "b1", "owner-1", models.BookingStatusRejected); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if len(f.slots.decremented) != 1 {
		t.Fatalf("rejecting must free the slot, decrements: %d", len(f.slots.decremented))
	}
	if !f.slots.decremented[0].date.Equal(time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("slot freed for %v, want the booking's day at midnight", f.slots.decremented[0].date)
	}
}

func TestCancelAuthorization(t *testing.T) {
	newBooking := func() *models.Booking {
		return &models.Booking{
			ID: "b1", UserID: "u1", ProfileID: "p1",
			Status: models.BookingStatusConfirmed, TimeSlot: "10:00-10:30",
			Date: time.Date(2026, 9, 4, 10, 0, 0, 0, time.UTC),
		}
	}

	f := newFixture()
	f.repo.bookings["b1"] = newBooking()
	_, err := f.svc.Cancel(context.Background(), "b1", "stranger", models.RoleUser)
	wantStatus(t, err, http.StatusForbidden)

	// The customer may cancel their own booking; the slot is freed.
	got, err := f.svc.Cancel(context.Background(), "b1", "u1", models.RoleUser)
	if err != nil {
		t.Fatalf("customer cancel: %v", err)
	}
	if got.Status != models.BookingStatusCancelled {
		t.Fatalf("status = %s, want CANCELLED", got.Status)
	}
	if len(f.slots.decremented) != 1 || f.notifier.cancelled != 1 {
		t.Errorf("cancel must free the slot and notify once: decrements=%d notifications=%d",
			len(f.slots.decremented), f.notifier.cancelled)
	}

	// The profile owner and platform admins may cancel too.
	f = newFixture()
	f.repo.bookings["b1"] = newBooking()
	if _, err := f.svc.Cancel(context.Background(), "b1", "owner-1", models.RoleOwner); err != nil {
		t.Fatalf("owner cancel: %v", err)
	}

	f = newFixture()
	f.repo.bookings["b1"] = newBooking()
	if _, err := f.svc.Cancel(context.Background(), "b1", "staff-1", models.RoleAdmin); err != nil {
		t.Fatalf("admin cancel: %v", err)
	}
}

func TestCancelTerminalStates(t *testing.T) {
	f := newFixture()
	for _, status := range []string{models.BookingStatusRejected, models.BookingStatusCancelled} {
		f.repo.bookings["b1"] = &models.Booking{
			ID: "b1", UserID: "u1", ProfileID: "p1", Status: status,
		}
		_, err := f.svc.Cancel(context.Background(), "b1", "u1", models.RoleUser)
		wantStatus(t, err, http.StatusBadRequest)
	}
}

func TestGetByRefEnriches(t *testing.T) {
	f := newFixture()
	f.repo.byRef["A1B2C3"] = &models.Booking{
		ID: "b1", BookingRef: "A1B2C3", UserID: "u1", ProfileID: "p1", ServiceID: "svc-1",
		Status: models.BookingStatusPending,
	}

	detail, err := f.svc.GetByRef(context.Background(), "A1B2C3")
	if err != nil {
		t.Fatalf("GetByRef: %v", err)
	}
	if detail.ProfileName != "Joe's Barbershop" {
		t.Errorf("profile name = %q", detail.ProfileName)
	}
	if detail.ServiceTitle != "Classic Cut" || detail.ServicePrice != 25 {
		t.Errorf("service = %q/%v, want Classic Cut/25", detail.ServiceTitle, detail.ServicePrice)
	}

	_, err = f.svc.GetByRef(context.Background(), "FFFFFF")
	wantStatus(t, err, http.StatusNotFound)
}

func TestGetByIDCustomerOnly(t *testing.T) {
	f := newFixture()
	f.repo.bookings["b1"] = &models.Booking{
		ID: "b1", UserID: "u1", ProfileID: "p1", Status: models.BookingStatusPending,
	}

	if _, err := f.svc.GetByID(context.Background(), "b1", "u1"); err != nil {
		t.Fatalf("owner read: %v", err)
	}
	_, err := f.svc.GetByID(context.Background(), "b1", "someone-else")
	wantStatus(t, err, http.StatusForbidden)
}
