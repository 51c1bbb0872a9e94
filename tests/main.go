package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"bookify/database"
	"bookify/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo barbershop: one superadmin, one owner with a verified
// profile, two weeks of slots and a spread of bookings across the
// lifecycle. Run against a disposable database; it wipes the collections
// it seeds.
func main() {
	database.InitDB()
	db := database.MongoClient.Database(database.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	usersColl := db.Collection("users")
	profilesColl := db.Collection("profiles")
	slotsColl := db.Collection("availability_slots")
	bookingsColl := db.Collection("bookings")

	// Clear existing demo data.
	for _, coll := range []*mongo.Collection{usersColl, profilesColl, slotsColl, bookingsColl} {
		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll.Name(), err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// Everyone gets the same demo password.
	pass := "$Password1234"
	hashed, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	hash := string(hashed)

	// Accounts: superadmin, owner, and a handful of customers.
	superadmin := models.User{
		ID:           uuid.New().String(),
		Username:     "root",
		Name:         "Platform Root",
		Email:        "root@example.com",
		PasswordHash: hash,
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	owner := models.User{
		ID:           uuid.New().String(),
		Username:     "barber_joe",
		Name:         "Joe Kamau",
		Email:        "joe@example.com",
		Phone:        "0700000001",
		PasswordHash: hash,
		Role:         models.RoleOwner,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	customerNames := []string{
		"Alice Wanjiru", "Brian Otieno", "Carol Njeri", "David Mwangi",
		"Esther Achieng", "Frank Kiprop", "Grace Moraa", "Henry Omondi",
	}
	var customers []models.User
	for i, name := range customerNames {
		customers = append(customers, models.User{
			ID:           uuid.New().String(),
			Username:     fmt.Sprintf("customer_%d", i+1),
			Name:         name,
			Email:        fmt.Sprintf("customer_%d@example.com", i+1),
			Phone:        fmt.Sprintf("07000001%02d", i+1),
			PasswordHash: hash,
			Role:         models.RoleUser,
			OwnerID:      owner.ID,
			IsActive:     true,
			CreatedAt:    now.AddDate(0, 0, -rng.Intn(60)),
			UpdatedAt:    now,
		})
	}

	userDocs := []interface{}{superadmin, owner}
	for _, c := range customers {
		userDocs = append(userDocs, c)
	}
	if _, err := usersColl.InsertMany(ctx, userDocs); err != nil {
		log.Fatalf("Failed to insert users: %v", err)
	}

	// The owner's business profile with its service menu.
	services := []models.Service{
		{ID: uuid.New().String(), Title: "Classic Cut", Description: "Scissor cut with a clean finish", Price: 25},
		{ID: uuid.New().String(), Title: "Beard Trim", Description: "Shape-up and hot towel", Price: 15},
		{ID: uuid.New().String(), Title: "Cut & Beard Combo", Description: "Full cut plus beard service", Price: 35},
		{ID: uuid.New().String(), Title: "Kids Cut", Description: "Under 12s, quick and friendly", Price: 18},
	}
	profile := models.BusinessProfile{
		ID:          uuid.New().String(),
		Name:        "Joe's Barbershop",
		Description: "Classic cuts and hot towel shaves in the city centre.",
		OwnerID:     owner.ID,
		Services:    services,
		IsVerified:  true,
		IsActive:    true,
		CreatedAt:   now.AddDate(0, 0, -90),
		UpdatedAt:   now,
	}
	if _, err := profilesColl.InsertOne(ctx, profile); err != nil {
		log.Fatalf("Failed to insert profile: %v", err)
	}

	// Two weeks of 30-minute slots, 09:00-17:00, capacity 2 per slot.
	const (
		openMinute  = 9 * 60
		closeMinute = 17 * 60
		slotMinutes = 30
		capacity    = 2
	)
	var slots []models.AvailabilitySlot
	for day := 0; day < 14; day++ {
		date := today.AddDate(0, 0, day)
		for start := openMinute; start+slotMinutes <= closeMinute; start += slotMinutes {
			end := start + slotMinutes
			slots = append(slots, models.AvailabilitySlot{
				ID:          uuid.New().String(),
				ProfileID:   profile.ID,
				Date:        date,
				TimeSlot:    fmt.Sprintf("%02d:%02d-%02d:%02d", start/60, start%60, end/60, end%60),
				MaxCapacity: capacity,
				BookedCount: 0,
				IsAvailable: true,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
	}

	// Upcoming bookings claim capacity on tomorrow-onward slots.
	refs := map[string]bool{}
	newRef := func() string {
		for {
			ref := fmt.Sprintf("%06X", rng.Intn(1<<24))
			if !refs[ref] {
				refs[ref] = true
				return ref
			}
		}
	}
	slotStart := func(sl models.AvailabilitySlot) time.Time {
		var h, m int
		fmt.Sscanf(sl.TimeSlot, "%d:%d", &h, &m)
		return sl.Date.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	var bookings []models.Booking
	upcomingStatuses := []string{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
	}
	for i, customer := range customers {
		for n := 0; n < 1+rng.Intn(2); n++ {
			// Find a future slot with spare capacity.
			var sl *models.AvailabilitySlot
			for attempts := 0; attempts < 50; attempts++ {
				cand := &slots[rng.Intn(len(slots))]
				if cand.Date.After(today) && cand.BookedCount < cand.MaxCapacity {
					sl = cand
					break
				}
			}
			if sl == nil {
				continue
			}
			sl.BookedCount++
			sl.UpdatedAt = now
			service := services[rng.Intn(len(services))]
			bookings = append(bookings, models.Booking{
				ID:         uuid.New().String(),
				BookingRef: newRef(),
				UserID:     customer.ID,
				ProfileID:  profile.ID,
				ServiceID:  service.ID,
				Date:       slotStart(*sl),
				TimeSlot:   sl.TimeSlot,
				Status:     upcomingStatuses[(i+n)%len(upcomingStatuses)],
				CreatedAt:  now.AddDate(0, 0, -rng.Intn(5)),
				UpdatedAt:  now,
			})
		}
	}

	// Historical bookings feed the analytics dashboard.
	historyStatuses := []string{
		models.BookingStatusCompleted,
		models.BookingStatusCompleted,
		models.BookingStatusCompleted,
		models.BookingStatusCancelled,
		models.BookingStatusNoShow,
	}
	for _, customer := range customers {
		for n := 0; n < 2+rng.Intn(3); n++ {
			daysAgo := 1 + rng.Intn(45)
			startMinute := openMinute + slotMinutes*rng.Intn((closeMinute-openMinute)/slotMinutes)
			endMinute := startMinute + slotMinutes
			date := today.AddDate(0, 0, -daysAgo).
				Add(time.Duration(startMinute) * time.Minute)
			service := services[rng.Intn(len(services))]
			created := date.AddDate(0, 0, -(1 + rng.Intn(7)))
			bookings = append(bookings, models.Booking{
				ID:         uuid.New().String(),
				BookingRef: newRef(),
				UserID:     customer.ID,
				ProfileID:  profile.ID,
				ServiceID:  service.ID,
				Date:       date,
				TimeSlot:   fmt.Sprintf("%02d:%02d-%02d:%02d", startMinute/60, startMinute%60, endMinute/60, endMinute%60),
				Status:     historyStatuses[rng.Intn(len(historyStatuses))],
				CreatedAt:  created,
				UpdatedAt:  date,
			})
		}
	}

	// Recompute availability flags after claiming capacity.
	slotDocs := make([]interface{}, 0, len(slots))
	for i := range slots {
		slots[i].IsAvailable = slots[i].BookedCount < slots[i].MaxCapacity
		slotDocs = append(slotDocs, slots[i])
	}
	if _, err := slotsColl.InsertMany(ctx, slotDocs); err != nil {
		log.Fatalf("Failed to insert slots: %v", err)
	}

	bookingDocs := make([]interface{}, 0, len(bookings))
	for _, b := range bookings {
		bookingDocs = append(bookingDocs, b)
	}
	if _, err := bookingsColl.InsertMany(ctx, bookingDocs); err != nil {
		log.Fatalf("Failed to insert bookings: %v", err)
	}

	fmt.Printf("Seeded %d users, 1 profile, %d slots, %d bookings\n",
		len(userDocs), len(slots), len(bookings))
	fmt.Printf("Superadmin login: root / %s\n", pass)
	fmt.Printf("Owner login:      barber_joe / %s\n", pass)
}
