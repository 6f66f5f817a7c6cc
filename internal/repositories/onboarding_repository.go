package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"limetrip/internal/models/db_models"
)

type OnboardingRepository interface {
	FindByUserAndCountry(ctx context.Context, userId uuid.UUID, country string) (*db_models.TripOnboarding, error)
	Insert(ctx context.Context, record *db_models.TripOnboarding) error
	Update(ctx context.Context, record *db_models.TripOnboarding) error
}

type onboardingRepository struct {
	db *gorm.DB
}

func NewOnboardingRepository(db *gorm.DB) OnboardingRepository {
	return &onboardingRepository{
		db: db,
	}
}

func (o *onboardingRepository) FindByUserAndCountry(ctx context.Context, userId uuid.UUID, country string) (*db_models.TripOnboarding, error) {
	var record db_models.TripOnboarding
	err := o.db.WithContext(ctx).
		Preload("Activities").
		Where("user_id = ? AND country = ?", userId, country).
		First(&record).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

func (o *onboardingRepository) Insert(ctx context.Context, record *db_models.TripOnboarding) error {
	return o.db.WithContext(ctx).Create(record).Error
}

// Update replaces the stored submission, selected activities included. The
// children are swapped wholesale since the form always posts the full set.
func (o *onboardingRepository) Update(ctx context.Context, record *db_models.TripOnboarding) error {
	return o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("onboarding_id = ?", record.ID).
			Delete(&db_models.OnboardingActivity{}).Error; err != nil {
			return err
		}
		for i := range record.Activities {
			record.Activities[i].OnboardingID = record.ID
		}
		return tx.Save(record).Error
	})
}
