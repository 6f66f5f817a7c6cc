package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"limetrip/internal/models/db_models"
	"limetrip/internal/models/request_models"
	"limetrip/internal/models/response_models"
	"limetrip/internal/repositories"
	"limetrip/pkg/utils"
)

const defaultCountry = "Barbados"

var (
	budgetCleanPattern = regexp.MustCompile(`[^0-9-]`)
	stayOptionPattern  = regexp.MustCompile(`^(.*?)\s*\((.*?)\)\s*$`)
)

type OnboardingServiceInterface interface {
	Complete(ctx context.Context, userId uuid.UUID, request request_models.CompleteOnboardingRequest) (*response_models.CompleteOnboardingResponse, error)
	Status(ctx context.Context, userId uuid.UUID, country string) (*response_models.OnboardingStatusResponse, error)
	Trip(ctx context.Context, userId uuid.UUID, country string) (*response_models.TripResponse, error)
}

type OnboardingService struct {
	onboardingRepo repositories.OnboardingRepository
	bookingService BookingServiceInterface
}

func NewOnboardingService(
	onboardingRepo repositories.OnboardingRepository,
	bookingService BookingServiceInterface,
) OnboardingServiceInterface {
	return &OnboardingService{
		onboardingRepo: onboardingRepo,
		bookingService: bookingService,
	}
}

// Complete upserts the onboarding record for (user, country) and derives the
// stay and activity bookings. Booking failures are collected per item; the
// submission itself still succeeds.
func (s *OnboardingService) Complete(ctx context.Context, userId uuid.UUID, request request_models.CompleteOnboardingRequest) (*response_models.CompleteOnboardingResponse, error) {
	country := strings.TrimSpace(request.Country)
	if country == "" {
		country = defaultCountry
	}

	record, err := s.upsertRecord(ctx, userId, country, request)
	if err != nil {
		return nil, err
	}

	guestName := s.bookingService.ResolveGuestName(ctx, userId, request.GuestName)

	created := make([]response_models.BookingResponse, 0)
	bookingErrors := make([]response_models.BookingError, 0)

	if record.StayListingID != "" && record.StartDate != "" && record.EndDate != "" {
		result, err := s.bookingService.BookAccommodation(ctx, userId, request_models.BookAccommodationRequest{
			ListingID: record.StayListingID,
			CheckIn:   record.StartDate,
			CheckOut:  record.EndDate,
			GuestName: guestName,
		})
		if err != nil {
			bookingErrors = append(bookingErrors, response_models.BookingError{
				Type:  "accommodation",
				RefID: record.StayListingID,
				Error: err.Error(),
			})
		} else if result.Created {
			created = append(created, result.Booking)
		}
	}

	for _, activity := range request.Activities {
		activityId := strings.TrimSpace(activity.ActivityID)
		date := strings.TrimSpace(activity.Date)
		timeOfDay := NormalizeTimeOfDay(activity.Time)
		if activityId == "" || date == "" || timeOfDay == "" {
			continue
		}

		result, err := s.bookingService.BookActivity(ctx, userId, request_models.BookActivityRequest{
			ActivityID: activityId,
			Date:       date,
			Time:       timeOfDay,
			GuestName:  guestName,
		})
		if err != nil {
			bookingErrors = append(bookingErrors, response_models.BookingError{
				Type:  "activity",
				RefID: activityId,
				Error: err.Error(),
			})
			continue
		}
		if result.Created {
			created = append(created, result.Booking)
		}
	}

	return &response_models.CompleteOnboardingResponse{
		Record:          OnboardingRecordResponse(record),
		BookingsCreated: created,
		BookingErrors:   bookingErrors,
	}, nil
}

func (s *OnboardingService) Status(ctx context.Context, userId uuid.UUID, country string) (*response_models.OnboardingStatusResponse, error) {
	if strings.TrimSpace(country) == "" {
		country = defaultCountry
	}

	record, err := s.onboardingRepo.FindByUserAndCountry(ctx, userId, country)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return &response_models.OnboardingStatusResponse{Onboarded: false}, nil
	}

	resp := OnboardingRecordResponse(record)
	return &response_models.OnboardingStatusResponse{
		Onboarded: true,
		Record:    &resp,
	}, nil
}

func (s *OnboardingService) Trip(ctx context.Context, userId uuid.UUID, country string) (*response_models.TripResponse, error) {
	if strings.TrimSpace(country) == "" {
		country = defaultCountry
	}

	record, err := s.onboardingRepo.FindByUserAndCountry(ctx, userId, country)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrOnboardingNotFound
	}

	stays, activities, err := s.bookingService.ListBookings(ctx, userId)
	if err != nil {
		return nil, err
	}

	return &response_models.TripResponse{
		Record:                OnboardingRecordResponse(record),
		AccommodationBookings: stays,
		ActivityBookings:      activities,
	}, nil
}

// upsertRecord is check-then-act on (user, country); concurrent identical
// submissions can still produce duplicate rows.
func (s *OnboardingService) upsertRecord(ctx context.Context, userId uuid.UUID, country string, request request_models.CompleteOnboardingRequest) (*db_models.TripOnboarding, error) {
	existing, err := s.onboardingRepo.FindByUserAndCountry(ctx, userId, country)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	interests := request.Interests
	if interests == nil {
		interests = []string{}
	}

	activities := make([]db_models.OnboardingActivity, 0, len(request.Activities))
	for _, activity := range request.Activities {
		activities = append(activities, db_models.OnboardingActivity{
			ActivityID: strings.TrimSpace(activity.ActivityID),
			Date:       strings.TrimSpace(activity.Date),
			Time:       NormalizeTimeOfDay(activity.Time),
		})
	}

	record := existing
	if record == nil {
		record = &db_models.TripOnboarding{
			UserID:  userId,
			Country: country,
		}
	}
	record.Budget = strings.TrimSpace(request.Budget)
	record.StartDate = strings.TrimSpace(request.StartDate)
	record.EndDate = strings.TrimSpace(request.EndDate)
	record.ReminderSet = request.ReminderSet
	record.StayOption = strings.TrimSpace(request.StayOption)
	record.StayListingID = strings.TrimSpace(request.StayListingID)
	record.Interests = pq.StringArray(interests)
	record.WantsBucketList = request.WantsBucketList
	record.Activities = activities

	if existing == nil {
		if err := s.onboardingRepo.Insert(ctx, record); err != nil {
			return nil, utils.ErrDatabaseError
		}
	} else {
		if err := s.onboardingRepo.Update(ctx, record); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}
	return record, nil
}

// ParseBudgetAmount reduces a free-text budget like "$500-$1000" to its upper
// bound, a single number to itself, and anything unparseable to 0.
func ParseBudgetAmount(budget string) int {
	cleaned := budgetCleanPattern.ReplaceAllString(budget, "")
	if cleaned == "" {
		return 0
	}

	if strings.Contains(cleaned, "-") {
		parts := strings.SplitN(cleaned, "-", 2)
		if value, err := strconv.Atoi(parts[1]); err == nil {
			return value
		}
		if value, err := strconv.Atoi(parts[0]); err == nil {
			return value
		}
		return 0
	}

	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return value
}

// NormalizeStayOption splits a label of the form "Name (Sub)" into its parts.
func NormalizeStayOption(label, location string) response_models.StayResponse {
	label = strings.TrimSpace(label)
	if label == "" {
		return response_models.StayResponse{
			Name:     "No Accommodation",
			Location: location,
		}
	}

	if match := stayOptionPattern.FindStringSubmatch(label); match != nil {
		return response_models.StayResponse{
			Name:     strings.TrimSpace(match[1]),
			Subtitle: match[2] + " - Booked",
			Location: location,
		}
	}

	return response_models.StayResponse{
		Name:     label,
		Subtitle: "Booked",
		Location: location,
	}
}

func OnboardingRecordResponse(record *db_models.TripOnboarding) response_models.OnboardingResponse {
	activities := make([]response_models.SelectedActivityResponse, 0, len(record.Activities))
	for _, activity := range record.Activities {
		activities = append(activities, response_models.SelectedActivityResponse{
			ActivityID: activity.ActivityID,
			Date:       activity.Date,
			Time:       activity.Time,
		})
	}

	return response_models.OnboardingResponse{
		ID:              record.ID.String(),
		Country:         record.Country,
		Budget:          record.Budget,
		BudgetAmount:    ParseBudgetAmount(record.Budget),
		StartDate:       record.StartDate,
		EndDate:         record.EndDate,
		ReminderSet:     record.ReminderSet,
		Stay:            NormalizeStayOption(record.StayOption, record.Country),
		StayListingID:   record.StayListingID,
		Interests:       []string(record.Interests),
		WantsBucketList: record.WantsBucketList,
		Activities:      activities,
	}
}
