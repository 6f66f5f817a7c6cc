package repositories

import (
	"context"

	"gorm.io/gorm"

	"limetrip/internal/models/db_models"
)

type InterestRepository interface {
	GetAll(ctx context.Context) ([]db_models.InterestTag, error)
}

type interestRepository struct {
	db *gorm.DB
}

func NewInterestRepository(db *gorm.DB) InterestRepository {
	return &interestRepository{db: db}
}

func (i *interestRepository) GetAll(ctx context.Context) ([]db_models.InterestTag, error) {
	var tags []db_models.InterestTag
	err := i.db.WithContext(ctx).Order("name ASC").Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
