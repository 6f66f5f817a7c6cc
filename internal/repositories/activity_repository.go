package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"limetrip/internal/models/db_models"
)

type ActivityRepository interface {
	GetById(ctx context.Context, id string) (*db_models.Activity, error)
	List(ctx context.Context, country string, page, pageSize int) ([]db_models.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (a *activityRepository) GetById(ctx context.Context, id string) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := a.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (a *activityRepository) List(ctx context.Context, country string, page, pageSize int) ([]db_models.Activity, error) {
	query := a.db.WithContext(ctx)
	if country != "" {
		query = query.Where("country = ?", country)
	}

	var activities []db_models.Activity
	err := query.Scopes(func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}).Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
