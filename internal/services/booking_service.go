package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"limetrip/internal/models/db_models"
	"limetrip/internal/models/request_models"
	"limetrip/internal/models/response_models"
	"limetrip/internal/repositories"
	"limetrip/pkg/utils"
)

const defaultGuestName = "Guest"

type BookingServiceInterface interface {
	ResolveGuestName(ctx context.Context, userId uuid.UUID, explicit string) string
	BookAccommodation(ctx context.Context, userId uuid.UUID, request request_models.BookAccommodationRequest) (*response_models.BookingResult, error)
	BookActivity(ctx context.Context, userId uuid.UUID, request request_models.BookActivityRequest) (*response_models.BookingResult, error)
	ListBookings(ctx context.Context, userId uuid.UUID) ([]response_models.BookingResponse, []response_models.BookingResponse, error)
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	accountRepo repositories.AccountRepository
	mailService IMailService
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	accountRepo repositories.AccountRepository,
	mailService IMailService,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		accountRepo: accountRepo,
		mailService: mailService,
	}
}

// ResolveGuestName picks the name to book under: the explicit value when
// given, else the first non-empty profile field, else "Guest".
func (s *BookingService) ResolveGuestName(ctx context.Context, userId uuid.UUID, explicit string) string {
	if name := strings.TrimSpace(explicit); name != "" {
		return name
	}

	account, err := s.accountRepo.FindById(ctx, userId.String())
	if err != nil {
		log.Printf("Guest name lookup failed for %s: %v", userId, err)
		return defaultGuestName
	}
	if account == nil {
		return defaultGuestName
	}

	for _, candidate := range []string{account.FullName, account.Name, account.Username, account.Email} {
		if name := strings.TrimSpace(candidate); name != "" {
			return name
		}
	}
	return defaultGuestName
}

func (s *BookingService) BookAccommodation(ctx context.Context, userId uuid.UUID, request request_models.BookAccommodationRequest) (*response_models.BookingResult, error) {
	guestName := s.ResolveGuestName(ctx, userId, request.GuestName)

	existing, err := s.bookingRepo.FindAccommodation(ctx, request.ListingID, guestName, request.CheckIn, request.CheckOut)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return &response_models.BookingResult{
			Created: false,
			Booking: AccommodationBookingResponse(existing),
		}, nil
	}

	booking := &db_models.AccommodationBooking{
		UserID:    userId,
		ListingID: request.ListingID,
		GuestName: guestName,
		CheckIn:   request.CheckIn,
		CheckOut:  request.CheckOut,
		Status:    "confirmed",
	}
	if err := s.bookingRepo.InsertAccommodation(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.sendConfirmation(ctx, userId, guestName, booking)

	return &response_models.BookingResult{
		Created: true,
		Booking: AccommodationBookingResponse(booking),
	}, nil
}

func (s *BookingService) BookActivity(ctx context.Context, userId uuid.UUID, request request_models.BookActivityRequest) (*response_models.BookingResult, error) {
	guestName := s.ResolveGuestName(ctx, userId, request.GuestName)
	timeOfDay := NormalizeTimeOfDay(request.Time)
	if timeOfDay == "" {
		return nil, utils.ErrInvalidInput
	}

	existing, err := s.bookingRepo.FindActivity(ctx, request.ActivityID, guestName, request.Date, timeOfDay)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return &response_models.BookingResult{
			Created: false,
			Booking: ActivityBookingResponse(existing),
		}, nil
	}

	booking := &db_models.ActivityBooking{
		UserID:     userId,
		ActivityID: request.ActivityID,
		GuestName:  guestName,
		Date:       request.Date,
		Time:       timeOfDay,
		Status:     "confirmed",
	}
	if err := s.bookingRepo.InsertActivity(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.BookingResult{
		Created: true,
		Booking: ActivityBookingResponse(booking),
	}, nil
}

func (s *BookingService) ListBookings(ctx context.Context, userId uuid.UUID) ([]response_models.BookingResponse, []response_models.BookingResponse, error) {
	stays, err := s.bookingRepo.ListAccommodationByUser(ctx, userId)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	activities, err := s.bookingRepo.ListActivityByUser(ctx, userId)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}

	stayResponses := make([]response_models.BookingResponse, 0, len(stays))
	for i := range stays {
		stayResponses = append(stayResponses, AccommodationBookingResponse(&stays[i]))
	}
	activityResponses := make([]response_models.BookingResponse, 0, len(activities))
	for i := range activities {
		activityResponses = append(activityResponses, ActivityBookingResponse(&activities[i]))
	}
	return stayResponses, activityResponses, nil
}

// Confirmation mail is best effort; a booking never fails over it.
func (s *BookingService) sendConfirmation(ctx context.Context, userId uuid.UUID, guestName string, booking *db_models.AccommodationBooking) {
	if s.mailService == nil {
		return
	}
	account, err := s.accountRepo.FindById(ctx, userId.String())
	if err != nil || account == nil || account.Email == "" {
		return
	}
	if err := s.mailService.SendBookingConfirmation(account.Email, guestName, booking.ListingID, booking.CheckIn, booking.CheckOut); err != nil {
		log.Printf("Booking confirmation mail failed for %s: %v", account.Email, err)
	}
}

// NormalizeTimeOfDay reduces a clock string to HH:MM, dropping seconds.
// Anything without a minutes part is treated as missing.
func NormalizeTimeOfDay(timeOfDay string) string {
	parts := strings.Split(strings.TrimSpace(timeOfDay), ":")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return ""
	}
	return parts[0] + ":" + parts[1]
}

func AccommodationBookingResponse(booking *db_models.AccommodationBooking) response_models.BookingResponse {
	return response_models.BookingResponse{
		ID:        booking.ID.String(),
		Type:      "accommodation",
		RefID:     booking.ListingID,
		GuestName: booking.GuestName,
		CheckIn:   booking.CheckIn,
		CheckOut:  booking.CheckOut,
		Status:    booking.Status,
	}
}

func ActivityBookingResponse(booking *db_models.ActivityBooking) response_models.BookingResponse {
	return response_models.BookingResponse{
		ID:        booking.ID.String(),
		Type:      "activity",
		RefID:     booking.ActivityID,
		GuestName: booking.GuestName,
		Date:      booking.Date,
		Time:      booking.Time,
		Status:    booking.Status,
	}
}
