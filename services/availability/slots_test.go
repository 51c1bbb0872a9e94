package availability

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"

	"bookify/models"
	"bookify/utils"
)

// Cache reads and writes are best-effort, so tests point the client at a
// closed port instead of running a Redis server.
func TestMain(m *testing.M) {
	utils.CacheClient = redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	os.Exit(m.Run())
}

type fakeSlotRepo struct {
	created [][]models.AvailabilitySlot
	slots   map[string]*models.AvailabilitySlot
	byDate  []models.AvailabilitySlot
	byRange []models.AvailabilitySlot
	deleted []string
}

func (f *fakeSlotRepo) CreateMany(ctx context.Context, slots []models.AvailabilitySlot) error {
	f.created = append(f.created, slots)
	return nil
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, slotID string) (*models.AvailabilitySlot, error) {
	return f.slots[slotID], nil
}

func (f *fakeSlotRepo) GetByProfileAndDate(ctx context.Context, profileID string, date time.Time) ([]models.AvailabilitySlot, error) {
	return f.byDate, nil
}

func (f *fakeSlotRepo) GetByProfileAndRange(ctx context.Context, profileID string, start, end time.Time) ([]models.AvailabilitySlot, error) {
	return f.byRange, nil
}

func (f *fakeSlotRepo) GetSlot(ctx context.Context, profileID string, date time.Time, timeSlot string) (*models.AvailabilitySlot, error) {
	return nil, nil
}

func (f *fakeSlotRepo) UpdateCapacity(ctx context.Context, slotID string, maxCapacity int) (*models.AvailabilitySlot, error) {
	slot := f.slots[slotID]
	if slot == nil {
		return nil, nil
	}
	updated := *slot
	updated.MaxCapacity = maxCapacity
	updated.IsAvailable = updated.BookedCount < maxCapacity
	return &updated, nil
}

func (f *fakeSlotRepo) Delete(ctx context.Context, slotID string) error {
	f.deleted = append(f.deleted, slotID)
	return nil
}

func (f *fakeSlotRepo) IncrementBooked(ctx context.Context, profileID string, date time.Time, timeSlot string) error {
	return nil
}

func (f *fakeSlotRepo) DecrementBooked(ctx context.Context, profileID string, date time.Time, timeSlot string) error {
	return nil
}

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

func newTestService(repo *fakeSlotRepo) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Repo: repo,
		Profiles: &fakeProfileRepo{profiles: map[string]*models.BusinessProfile{
			"p1": {ID: "p1", OwnerID: "owner-1"},
		}},
	}
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

func TestCreateSlotsGeneratesGrid(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := newTestService(repo)

	req := models.AvailabilityCreate{
		Date: time.Date(2026, 9, 4, 15, 30, 0, 0, time.FixedZone("EAT", 3*3600)),
		Config: models.TimeSlotConfig{
			StartTime:          "09:00",
			EndTime:            "17:00",
			SlotDuration:       30,
			MaxCapacityPerSlot: 2,
		},
	}
	slots, err := svc.CreateSlots(context.Background(), "p1", "owner-1", models.RoleOwner, req)
	if err != nil {
		t.Fatalf("CreateSlots: %v", err)
	}
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots for an 8h day of 30min slots, got %d", len(slots))
	}
	if slots[0].TimeSlot != "09:00-09:30" {
		t.Errorf("first slot = %q, want 09:00-09:30", slots[0].TimeSlot)
	}
	if slots[len(slots)-1].TimeSlot != "16:30-17:00" {
		t.Errorf("last slot = %q, want 16:30-17:00", slots[len(slots)-1].TimeSlot)
	}

	wantDate := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	for _, s := range slots {
		if !s.Date.Equal(wantDate) {
			t.Errorf("slot %s date = %v, want midnight UTC %v", s.TimeSlot, s.Date, wantDate)
		}
		if !s.IsAvailable || s.BookedCount != 0 || s.MaxCapacity != 2 {
			t.Errorf("slot %s not initialized as empty and available: %+v", s.TimeSlot, s)
		}
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one CreateMany call, got %d", len(repo.created))
	}
}

func TestCreateSlotsSkipsPartialTrailingSlot(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := newTestService(repo)

	req := models.AvailabilityCreate{
		Date: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		Config: models.TimeSlotConfig{
			StartTime:          "09:00",
			EndTime:            "10:15",
			SlotDuration:       30,
			MaxCapacityPerSlot: 1,
		},
	}
	slots, err := svc.CreateSlots(context.Background(), "p1", "owner-1", models.RoleOwner, req)
	if err != nil {
		t.Fatalf("CreateSlots: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 whole slots in 09:00-10:15, got %d", len(slots))
	}
	if slots[1].TimeSlot != "09:30-10:00" {
		t.Errorf("last slot = %q, want 09:30-10:00 (10:00-10:30 must not be cut short)", slots[1].TimeSlot)
	}
}

func TestCreateSlotsEmptyWindow(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := newTestService(repo)

	req := models.AvailabilityCreate{
		Date: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		Config: models.TimeSlotConfig{
			StartTime:          "09:00",
			EndTime:            "09:20",
			SlotDuration:       30,
			MaxCapacityPerSlot: 1,
		},
	}
	slots, err := svc.CreateSlots(context.Background(), "p1", "owner-1", models.RoleOwner, req)
	if err != nil {
		t.Fatalf("CreateSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
	if len(repo.created) != 0 {
		t.Fatal("CreateMany should not be called for an empty grid")
	}
}

func TestCreateSlotsValidatesConfig(t *testing.T) {
	cases := []struct {
		name   string
		config models.TimeSlotConfig
	}{
		{"bad start", models.TimeSlotConfig{StartTime: "9am", EndTime: "17:00", SlotDuration: 30, MaxCapacityPerSlot: 1}},
		{"bad end", models.TimeSlotConfig{StartTime: "09:00", EndTime: "25:00", SlotDuration: 30, MaxCapacityPerSlot: 1}},
		{"inverted window", models.TimeSlotConfig{StartTime: "17:00", EndTime: "09:00", SlotDuration: 30, MaxCapacityPerSlot: 1}},
		{"zero window", models.TimeSlotConfig{StartTime: "09:00", EndTime: "09:00", SlotDuration: 30, MaxCapacityPerSlot: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeSlotRepo{}
			svc := newTestService(repo)
			req := models.AvailabilityCreate{
				Date:   time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
				Config: tc.config,
			}
			_, err := svc.CreateSlots(context.Background(), "p1", "owner-1", models.RoleOwner, req)
			wantStatus(t, err, http.StatusBadRequest)
			if len(repo.created) != 0 {
				t.Fatal("no slots should be written for an invalid config")
			}
		})
	}
}

func TestCreateSlotsOwnership(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := newTestService(repo)
	req := models.AvailabilityCreate{
		Date: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		Config: models.TimeSlotConfig{
			StartTime:          "09:00",
			EndTime:            "10:00",
			SlotDuration:       30,
			MaxCapacityPerSlot: 1,
		},
	}

	_, err := svc.CreateSlots(context.Background(), "p1", "intruder", models.RoleUser, req)
	wantStatus(t, err, http.StatusForbidden)

	// Platform admins manage any profile.
	if _, err := svc.CreateSlots(context.Background(), "p1", "staff-1", models.RoleAdmin, req); err != nil {
		t.Fatalf("admin CreateSlots: %v", err)
	}

	_, err = svc.CreateSlots(context.Background(), "missing", "owner-1", models.RoleOwner, req)
	wantStatus(t, err, http.StatusNotFound)
}

func TestUpdateCapacityUnknownSlot(t *testing.T) {
	repo := &fakeSlotRepo{slots: map[string]*models.AvailabilitySlot{}}
	svc := newTestService(repo)

	_, err := svc.UpdateCapacity(context.Background(), "missing", "owner-1", models.RoleOwner, 5)
	wantStatus(t, err, http.StatusNotFound)
}

func TestDeleteSlotOwnerGate(t *testing.T) {
	repo := &fakeSlotRepo{slots: map[string]*models.AvailabilitySlot{
		"s1": {ID: "s1", ProfileID: "p1", TimeSlot: "09:00-09:30"},
	}}
	svc := newTestService(repo)

	err := svc.DeleteSlot(context.Background(), "s1", "intruder", models.RoleUser)
	wantStatus(t, err, http.StatusForbidden)
	if len(repo.deleted) != 0 {
		t.Fatal("slot must not be deleted by a non-owner")
	}

	if err := svc.DeleteSlot(context.Background(), "s1", "owner-1", models.RoleOwner); err != nil {
		t.Fatalf("owner DeleteSlot: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "s1" {
		t.Fatalf("expected s1 deleted, got %v", repo.deleted)
	}
}

func TestGetDateCounts(t *testing.T) {
	day := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	repo := &fakeSlotRepo{byDate: []models.AvailabilitySlot{
		{ID: "a", Date: day, TimeSlot: "09:00-09:30", MaxCapacity: 2, BookedCount: 2, IsAvailable: false},
		{ID: "b", Date: day, TimeSlot: "09:30-10:00", MaxCapacity: 2, BookedCount: 1, IsAvailable: true},
		{ID: "c", Date: day, TimeSlot: "10:00-10:30", MaxCapacity: 2, BookedCount: 0, IsAvailable: true},
	}}
	svc := newTestService(repo)

	got, err := svc.GetDate(context.Background(), "p1", day)
	if err != nil {
		t.Fatalf("GetDate: %v", err)
	}
	if got.TotalSlots != 3 || got.AvailableSlots != 2 {
		t.Fatalf("counts = %d/%d, want 3 total 2 available", got.TotalSlots, got.AvailableSlots)
	}
	if got.Slots == nil {
		t.Fatal("slots must be an empty array, not null")
	}

	_, err = svc.GetDate(context.Background(), "missing", day)
	wantStatus(t, err, http.StatusNotFound)
}

func TestGetRangeGroupsByDate(t *testing.T) {
	day1 := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	repo := &fakeSlotRepo{byRange: []models.AvailabilitySlot{
		{ID: "a", Date: day1, TimeSlot: "09:00-09:30", IsAvailable: true},
		{ID: "b", Date: day1, TimeSlot: "09:30-10:00", IsAvailable: false},
		{ID: "c", Date: day2, TimeSlot: "09:00-09:30", IsAvailable: true},
	}}
	svc := newTestService(repo)

	days, err := svc.GetRange(context.Background(), "p1", day1, day2)
	if err != nil {
		t.Fatalf("GetRange: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(days))
	}
	if !days[0].Date.Equal(day1) || days[0].TotalSlots != 2 || days[0].AvailableSlots != 1 {
		t.Errorf("day1 = %+v, want 2 slots 1 available on %v", days[0], day1)
	}
	if !days[1].Date.Equal(day2) || days[1].TotalSlots != 1 || days[1].AvailableSlots != 1 {
		t.Errorf("day2 = %+v, want 1 slot 1 available on %v", days[1], day2)
	}
}
