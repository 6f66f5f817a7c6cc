package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"limetrip/internal/models/db_models"
)

type BookingRepository interface {
	FindAccommodation(ctx context.Context, listingId, guestName, checkIn, checkOut string) (*db_models.AccommodationBooking, error)
	InsertAccommodation(ctx context.Context, booking *db_models.AccommodationBooking) error
	FindActivity(ctx context.Context, activityId, guestName, date, timeOfDay string) (*db_models.ActivityBooking, error)
	InsertActivity(ctx context.Context, booking *db_models.ActivityBooking) error
	ListAccommodationByUser(ctx context.Context, userId uuid.UUID) ([]db_models.AccommodationBooking, error)
	ListActivityByUser(ctx context.Context, userId uuid.UUID) ([]db_models.ActivityBooking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

func (b *bookingRepository) FindAccommodation(ctx context.Context, listingId, guestName, checkIn, checkOut string) (*db_models.AccommodationBooking, error) {
	var booking db_models.AccommodationBooking
	err := b.db.WithContext(ctx).
		Where("listing_id = ? AND guest_name = ? AND check_in = ? AND check_out = ?",
			listingId, guestName, checkIn, checkOut).
		First(&booking).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

func (b *bookingRepository) InsertAccommodation(ctx context.Context, booking *db_models.AccommodationBooking) error {
	return b.db.WithContext(ctx).Create(booking).Error
}

func (b *bookingRepository) FindActivity(ctx context.Context, activityId, guestName, date, timeOfDay string) (*db_models.ActivityBooking, error) {
	var booking db_models.ActivityBooking
	err := b.db.WithContext(ctx).
		Where("activity_id = ? AND guest_name = ? AND date = ? AND time = ?",
			activityId, guestName, date, timeOfDay).
		First(&booking).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

func (b *bookingRepository) InsertActivity(ctx context.Context, booking *db_models.ActivityBooking) error {
	return b.db.WithContext(ctx).Create(booking).Error
}

func (b *bookingRepository) ListAccommodationByUser(ctx context.Context, userId uuid.UUID) ([]db_models.AccommodationBooking, error) {
	var bookings []db_models.AccommodationBooking
	err := b.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (b *bookingRepository) ListActivityByUser(ctx context.Context, userId uuid.UUID) ([]db_models.ActivityBooking, error) {
	var bookings []db_models.ActivityBooking
	err := b.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
