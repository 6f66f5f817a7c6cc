package request_models

// SelectedActivity is one activity picked on the onboarding form. Entries
// missing any of the three fields are skipped during booking derivation.
type SelectedActivity struct {
	ActivityID string `json:"activity_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

type CompleteOnboardingRequest struct {
	Country         string             `json:"country"`
	Budget          string             `json:"budget"`
	StartDate       string             `json:"start_date"`
	EndDate         string             `json:"end_date"`
	ReminderSet     bool               `json:"reminder_set"`
	StayOption      string             `json:"stay_option"`
	StayListingID   string             `json:"stay_listing_id"`
	Interests       []string           `json:"interests"`
	WantsBucketList bool               `json:"wants_bucket_list"`
	Activities      []SelectedActivity `json:"activities"`
	GuestName       string             `json:"guest_name"`
}

type BookAccommodationRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
	CheckIn   string `json:"check_in" binding:"required"`
	CheckOut  string `json:"check_out" binding:"required"`
	GuestName string `json:"guest_name"`
}

type BookActivityRequest struct {
	ActivityID string `json:"activity_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	GuestName  string `json:"guest_name"`
}
