package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"limetrip/internal/models/db_models"
	"limetrip/internal/models/request_models"
)

type mockBookingRepository struct {
	existingAccommodation *db_models.AccommodationBooking
	existingActivity      *db_models.ActivityBooking
	findErr               error
	insertErr             error

	insertedAccommodations []*db_models.AccommodationBooking
	insertedActivities     []*db_models.ActivityBooking
}

func (m *mockBookingRepository) FindAccommodation(ctx context.Context, listingId, guestName, checkIn, checkOut string) (*db_models.AccommodationBooking, error) {
	return m.existingAccommodation, m.findErr
}

func (m *mockBookingRepository) InsertAccommodation(ctx context.Context, booking *db_models.AccommodationBooking) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.insertedAccommodations = append(m.insertedAccommodations, booking)
	return nil
}

func (m *mockBookingRepository) FindActivity(ctx context.Context, activityId, guestName, date, timeOfDay string) (*db_models.ActivityBooking, error) {
	return m.existingActivity, m.findErr
}

func (m *mockBookingRepository) InsertActivity(ctx context.Context, booking *db_models.ActivityBooking) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.insertedActivities = append(m.insertedActivities, booking)
	return nil
}

func (m *mockBookingRepository) ListAccommodationByUser(ctx context.Context, userId uuid.UUID) ([]db_models.AccommodationBooking, error) {
	return nil, nil
}

func (m *mockBookingRepository) ListActivityByUser(ctx context.Context, userId uuid.UUID) ([]db_models.ActivityBooking, error) {
	return nil, nil
}

type mockAccountRepository struct {
	account *db_models.Account
	err     error
}

func (m *mockAccountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return nil
}

func (m *mockAccountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	return m.account, m.err
}

func (m *mockAccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return m.account, m.err
}

func newTestBookingService(bookingRepo *mockBookingRepository, accountRepo *mockAccountRepository) BookingServiceInterface {
	return NewBookingService(bookingRepo, accountRepo, NewNoopMailService())
}

func TestResolveGuestName(t *testing.T) {
	userId := uuid.New()

	tests := []struct {
		name     string
		explicit string
		account  *db_models.Account
		want     string
	}{
		{"explicit wins", "Jane Doe", &db_models.Account{FullName: "Someone Else"}, "Jane Doe"},
		{"full name", "", &db_models.Account{FullName: "Asha Browne", Name: "A.", Username: "asha", Email: "a@x.bb"}, "Asha Browne"},
		{"name when no full name", "", &db_models.Account{Name: "Asha", Username: "asha", Email: "a@x.bb"}, "Asha"},
		{"username when no names", "", &db_models.Account{Username: "asha", Email: "a@x.bb"}, "asha"},
		{"email as last profile field", "", &db_models.Account{Email: "a@x.bb"}, "a@x.bb"},
		{"placeholder when profile empty", "", &db_models.Account{}, "Guest"},
		{"placeholder when account missing", "", nil, "Guest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestBookingService(&mockBookingRepository{}, &mockAccountRepository{account: tt.account})
			if got := svc.ResolveGuestName(context.Background(), userId, tt.explicit); got != tt.want {
				t.Errorf("ResolveGuestName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBookAccommodation_CreatesBooking(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newTestBookingService(repo, &mockAccountRepository{account: &db_models.Account{FullName: "Asha Browne"}})

	result, err := svc.BookAccommodation(context.Background(), uuid.New(), request_models.BookAccommodationRequest{
		ListingID: "villa-1",
		CheckIn:   "2026-09-01",
		CheckOut:  "2026-09-08",
	})
	if err != nil {
		t.Fatalf("BookAccommodation returned error: %v", err)
	}
	if !result.Created {
		t.Error("Created = false, want true")
	}
	if len(repo.insertedAccommodations) != 1 {
		t.Fatalf("inserted %d bookings, want 1", len(repo.insertedAccommodations))
	}
	booking := repo.insertedAccommodations[0]
	if booking.GuestName != "Asha Browne" {
		t.Errorf("GuestName = %q", booking.GuestName)
	}
	if booking.Status != "confirmed" {
		t.Errorf("Status = %q, want confirmed", booking.Status)
	}
}

func TestBookAccommodation_DuplicateNotReinserted(t *testing.T) {
	repo := &mockBookingRepository{
		existingAccommodation: &db_models.AccommodationBooking{
			ListingID: "villa-1",
			GuestName: "Asha Browne",
			CheckIn:   "2026-09-01",
			CheckOut:  "2026-09-08",
			Status:    "confirmed",
		},
	}
	svc := newTestBookingService(repo, &mockAccountRepository{account: &db_models.Account{FullName: "Asha Browne"}})

	result, err := svc.BookAccommodation(context.Background(), uuid.New(), request_models.BookAccommodationRequest{
		ListingID: "villa-1",
		CheckIn:   "2026-09-01",
		CheckOut:  "2026-09-08",
	})
	if err != nil {
		t.Fatalf("BookAccommodation returned error: %v", err)
	}
	if result.Created {
		t.Error("Created = true for a duplicate booking")
	}
	if len(repo.insertedAccommodations) != 0 {
		t.Errorf("duplicate was re-inserted")
	}
}

func TestBookActivity_NormalizesTime(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newTestBookingService(repo, &mockAccountRepository{account: &db_models.Account{Username: "asha"}})

	result, err := svc.BookActivity(context.Background(), uuid.New(), request_models.BookActivityRequest{
		ActivityID: "act-7",
		Date:       "2026-09-03",
		Time:       "10:00:00",
	})
	if err != nil {
		t.Fatalf("BookActivity returned error: %v", err)
	}
	if !result.Created {
		t.Error("Created = false, want true")
	}
	if len(repo.insertedActivities) != 1 {
		t.Fatalf("inserted %d bookings, want 1", len(repo.insertedActivities))
	}
	if repo.insertedActivities[0].Time != "10:00" {
		t.Errorf("Time = %q, want 10:00", repo.insertedActivities[0].Time)
	}
}

func TestNormalizeTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:30:00", "09:30"},
		{"09:30", "09:30"},
		{" 14:05 ", "14:05"},
		{"", ""},
		{"9", ""},
		{":30", ""},
	}

	for _, tt := range tests {
		if got := NormalizeTimeOfDay(tt.in); got != tt.want {
			t.Errorf("NormalizeTimeOfDay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
