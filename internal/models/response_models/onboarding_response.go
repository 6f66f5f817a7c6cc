package response_models

type SelectedActivityResponse struct {
	ActivityID string `json:"activity_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

type StayResponse struct {
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Location string `json:"location"`
}

type OnboardingResponse struct {
	ID              string                     `json:"id"`
	Country         string                     `json:"country"`
	Budget          string                     `json:"budget"`
	BudgetAmount    int                        `json:"budget_amount"`
	StartDate       string                     `json:"start_date"`
	EndDate         string                     `json:"end_date"`
	ReminderSet     bool                       `json:"reminder_set"`
	Stay            StayResponse               `json:"stay"`
	StayListingID   string                     `json:"stay_listing_id"`
	Interests       []string                   `json:"interests"`
	WantsBucketList bool                       `json:"wants_bucket_list"`
	Activities      []SelectedActivityResponse `json:"activities"`
}

type OnboardingStatusResponse struct {
	Onboarded bool                `json:"onboarded"`
	Record    *OnboardingResponse `json:"record,omitempty"`
}

type CompleteOnboardingResponse struct {
	Record          OnboardingResponse `json:"record"`
	BookingsCreated []BookingResponse  `json:"bookings_created"`
	BookingErrors   []BookingError     `json:"booking_errors"`
}

type TripResponse struct {
	Record                OnboardingResponse `json:"record"`
	AccommodationBookings []BookingResponse  `json:"accommodation_bookings"`
	ActivityBookings      []BookingResponse  `json:"activity_bookings"`
}
