package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"limetrip/internal/models/db_models"
	"limetrip/internal/models/request_models"
	"limetrip/internal/models/response_models"
)

type mockOnboardingRepository struct {
	existing *db_models.TripOnboarding
	findErr  error

	inserted   *db_models.TripOnboarding
	updated    *db_models.TripOnboarding
	gotUserId  uuid.UUID
	gotCountry string
}

func (m *mockOnboardingRepository) FindByUserAndCountry(ctx context.Context, userId uuid.UUID, country string) (*db_models.TripOnboarding, error) {
	m.gotUserId = userId
	m.gotCountry = country
	return m.existing, m.findErr
}

func (m *mockOnboardingRepository) Insert(ctx context.Context, record *db_models.TripOnboarding) error {
	m.inserted = record
	return nil
}

func (m *mockOnboardingRepository) Update(ctx context.Context, record *db_models.TripOnboarding) error {
	m.updated = record
	return nil
}

type mockBookingService struct {
	guestName        string
	accommodationErr error
	activityErr      error
	duplicate        bool

	accommodationCalls []request_models.BookAccommodationRequest
	activityCalls      []request_models.BookActivityRequest
}

func (m *mockBookingService) ResolveGuestName(ctx context.Context, userId uuid.UUID, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return m.guestName
}

func (m *mockBookingService) BookAccommodation(ctx context.Context, userId uuid.UUID, request request_models.BookAccommodationRequest) (*response_models.BookingResult, error) {
	m.accommodationCalls = append(m.accommodationCalls, request)
	if m.accommodationErr != nil {
		return nil, m.accommodationErr
	}
	return &response_models.BookingResult{
		Created: !m.duplicate,
		Booking: response_models.BookingResponse{Type: "accommodation", RefID: request.ListingID},
	}, nil
}

func (m *mockBookingService) BookActivity(ctx context.Context, userId uuid.UUID, request request_models.BookActivityRequest) (*response_models.BookingResult, error) {
	m.activityCalls = append(m.activityCalls, request)
	if m.activityErr != nil {
		return nil, m.activityErr
	}
	return &response_models.BookingResult{
		Created: !m.duplicate,
		Booking: response_models.BookingResponse{Type: "activity", RefID: request.ActivityID},
	}, nil
}

func (m *mockBookingService) ListBookings(ctx context.Context, userId uuid.UUID) ([]response_models.BookingResponse, []response_models.BookingResponse, error) {
	return nil, nil, nil
}

func completeRequest() request_models.CompleteOnboardingRequest {
	return request_models.CompleteOnboardingRequest{
		Country:       "Barbados",
		Budget:        "$500-$1000",
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-08",
		StayOption:    "Ocean View Villa (Deluxe)",
		StayListingID: "villa-1",
		Interests:     []string{"beaches", "food"},
		Activities: []request_models.SelectedActivity{
			{ActivityID: "act-1", Date: "2026-09-02", Time: "10:00:00"},
			{ActivityID: "act-2", Date: "2026-09-03"}, // no time, must be skipped
		},
	}
}

func TestComplete_NewRecordDerivesBookings(t *testing.T) {
	repo := &mockOnboardingRepository{}
	bookings := &mockBookingService{guestName: "Asha Browne"}
	svc := NewOnboardingService(repo, bookings)

	result, err := svc.Complete(context.Background(), uuid.New(), completeRequest())
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	if repo.inserted == nil {
		t.Fatal("record was not inserted")
	}
	if len(bookings.accommodationCalls) != 1 {
		t.Fatalf("accommodation booked %d times, want 1", len(bookings.accommodationCalls))
	}
	stay := bookings.accommodationCalls[0]
	if stay.ListingID != "villa-1" || stay.CheckIn != "2026-09-01" || stay.CheckOut != "2026-09-08" {
		t.Errorf("unexpected accommodation request: %+v", stay)
	}
	if stay.GuestName != "Asha Browne" {
		t.Errorf("GuestName = %q", stay.GuestName)
	}

	if len(bookings.activityCalls) != 1 {
		t.Fatalf("activities booked %d times, want 1 (entry without time skipped)", len(bookings.activityCalls))
	}
	if bookings.activityCalls[0].Time != "10:00" {
		t.Errorf("activity time = %q, want 10:00", bookings.activityCalls[0].Time)
	}

	if len(result.BookingsCreated) != 2 {
		t.Errorf("BookingsCreated = %d, want 2", len(result.BookingsCreated))
	}
	if len(result.BookingErrors) != 0 {
		t.Errorf("BookingErrors = %v, want empty", result.BookingErrors)
	}
}

func TestComplete_ResubmissionUpdatesAndCreatesNothing(t *testing.T) {
	existing := &db_models.TripOnboarding{UserID: uuid.New(), Country: "Barbados"}
	existing.ID = uuid.New()
	repo := &mockOnboardingRepository{existing: existing}
	bookings := &mockBookingService{guestName: "Asha Browne", duplicate: true}
	svc := NewOnboardingService(repo, bookings)

	result, err := svc.Complete(context.Background(), existing.UserID, completeRequest())
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	if repo.updated == nil {
		t.Error("existing record was not updated")
	}
	if repo.inserted != nil {
		t.Error("a second record was inserted for the same (user, country)")
	}
	if len(result.BookingsCreated) != 0 {
		t.Errorf("BookingsCreated = %d, want 0 on resubmission", len(result.BookingsCreated))
	}
}

func TestComplete_BookingFailureCollectedNotFatal(t *testing.T) {
	repo := &mockOnboardingRepository{}
	bookings := &mockBookingService{guestName: "Asha Browne", accommodationErr: errors.New("db down")}
	svc := NewOnboardingService(repo, bookings)

	result, err := svc.Complete(context.Background(), uuid.New(), completeRequest())
	if err != nil {
		t.Fatalf("Complete must not fail on booking errors, got %v", err)
	}

	if len(result.BookingErrors) != 1 {
		t.Fatalf("BookingErrors = %d, want 1", len(result.BookingErrors))
	}
	if result.BookingErrors[0].Type != "accommodation" {
		t.Errorf("error type = %q", result.BookingErrors[0].Type)
	}
	// Activity bookings still attempted after the stay failed.
	if len(bookings.activityCalls) != 1 {
		t.Errorf("activities booked %d times, want 1", len(bookings.activityCalls))
	}
	if len(result.BookingsCreated) != 1 {
		t.Errorf("BookingsCreated = %d, want 1", len(result.BookingsCreated))
	}
}

func TestComplete_CountryDefaults(t *testing.T) {
	repo := &mockOnboardingRepository{}
	svc := NewOnboardingService(repo, &mockBookingService{guestName: "Guest"})

	req := completeRequest()
	req.Country = ""
	if _, err := svc.Complete(context.Background(), uuid.New(), req); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if repo.gotCountry != "Barbados" {
		t.Errorf("country = %q, want default Barbados", repo.gotCountry)
	}
}

func TestStatus(t *testing.T) {
	repo := &mockOnboardingRepository{}
	svc := NewOnboardingService(repo, &mockBookingService{})

	status, err := svc.Status(context.Background(), uuid.New(), "Barbados")
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if status.Onboarded {
		t.Error("Onboarded = true with no record")
	}

	existing := &db_models.TripOnboarding{Country: "Barbados", Budget: "$750"}
	existing.ID = uuid.New()
	repo.existing = existing

	status, err = svc.Status(context.Background(), uuid.New(), "Barbados")
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if !status.Onboarded || status.Record == nil {
		t.Fatal("expected onboarded with record")
	}
	if status.Record.BudgetAmount != 750 {
		t.Errorf("BudgetAmount = %d, want 750", status.Record.BudgetAmount)
	}
}

func TestParseBudgetAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"$500-$1000", 1000},
		{"$750", 750},
		{"$1,500", 1500},
		{"500-", 500},
		{"", 0},
		{"no numbers here", 0},
	}

	for _, tt := range tests {
		if got := ParseBudgetAmount(tt.in); got != tt.want {
			t.Errorf("ParseBudgetAmount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeStayOption(t *testing.T) {
	stay := NormalizeStayOption("Ocean View Villa (Deluxe)", "Barbados")
	if stay.Name != "Ocean View Villa" {
		t.Errorf("Name = %q", stay.Name)
	}
	if stay.Subtitle != "Deluxe - Booked" {
		t.Errorf("Subtitle = %q", stay.Subtitle)
	}
	if stay.Location != "Barbados" {
		t.Errorf("Location = %q", stay.Location)
	}

	stay = NormalizeStayOption("Beach Hut", "Barbados")
	if stay.Name != "Beach Hut" || stay.Subtitle != "Booked" {
		t.Errorf("unparenthesized: %+v", stay)
	}

	stay = NormalizeStayOption("  ", "Barbados")
	if stay.Name != "No Accommodation" {
		t.Errorf("empty input: %+v", stay)
	}
}
