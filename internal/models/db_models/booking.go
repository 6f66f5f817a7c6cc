package db_models

import "github.com/google/uuid"

// AccommodationBooking is derived from an onboarding submission. Duplicate
// detection keys on (listing, guest, check-in, check-out); there is no unique
// index, so the check-then-insert is best effort only.
type AccommodationBooking struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	ListingID string
	GuestName string
	CheckIn   string // YYYY-MM-DD
	CheckOut  string
	Status    string
}

func (AccommodationBooking) TableName() string {
	return "tourism_entities.accommodation_bookings"
}

// ActivityBooking keys on (activity, guest, date, time).
type ActivityBooking struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;index"`
	ActivityID string
	GuestName  string
	Date       string // YYYY-MM-DD
	Time       string // HH:MM
	Status     string
}

func (ActivityBooking) TableName() string {
	return "tourism_entities.activity_bookings"
}
