package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TripOnboarding holds one user's trip-planning submission for one country.
// At most one live row per (user, country); the service upserts on that pair.
type TripOnboarding struct {
	BaseModel
	UserID          uuid.UUID `gorm:"type:uuid;index:idx_onboarding_user_country"`
	Country         string    `gorm:"index:idx_onboarding_user_country"`
	Budget          string
	StartDate       string // YYYY-MM-DD, empty when not chosen yet
	EndDate         string
	ReminderSet     bool
	StayOption      string
	StayListingID   string
	Interests       pq.StringArray `gorm:"type:text[]"`
	WantsBucketList bool

	Activities []OnboardingActivity `gorm:"foreignKey:OnboardingID"`
}

func (TripOnboarding) TableName() string {
	return "tourism_features.tourism_onboarding"
}

type OnboardingActivity struct {
	BaseModel
	OnboardingID uuid.UUID `gorm:"type:uuid;index"`
	ActivityID   string
	Date         string // YYYY-MM-DD
	Time         string // HH:MM
}

func (OnboardingActivity) TableName() string {
	return "tourism_features.tourism_onboarding_activities"
}
