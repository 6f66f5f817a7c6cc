package services

import (
	"context"
	"log"

	"limetrip/internal/models/db_models"
	"limetrip/internal/models/response_models"
	"limetrip/internal/repositories"
	"limetrip/pkg/utils"
)

type CatalogServiceInterface interface {
	ListActivities(ctx context.Context, country string, page, pageSize int) ([]response_models.ActivityResponse, error)
	GetActivity(ctx context.Context, id string) (*response_models.ActivityResponse, error)
	ListInterests(ctx context.Context) ([]response_models.InterestTagResponse, error)
}

type CatalogService struct {
	activityRepo repositories.ActivityRepository
	interestRepo repositories.InterestRepository
}

func NewCatalogService(
	activityRepo repositories.ActivityRepository,
	interestRepo repositories.InterestRepository,
) CatalogServiceInterface {
	return &CatalogService{
		activityRepo: activityRepo,
		interestRepo: interestRepo,
	}
}

func (c *CatalogService) ListActivities(ctx context.Context, country string, page, pageSize int) ([]response_models.ActivityResponse, error) {
	activities, err := c.activityRepo.List(ctx, country, page, pageSize)
	if err != nil {
		log.Printf("Error listing activities: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ActivityResponse, 0, len(activities))
	for i := range activities {
		responses = append(responses, activityResponse(&activities[i]))
	}
	return responses, nil
}

func (c *CatalogService) GetActivity(ctx context.Context, id string) (*response_models.ActivityResponse, error) {
	activity, err := c.activityRepo.GetById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	resp := activityResponse(activity)
	return &resp, nil
}

func (c *CatalogService) ListInterests(ctx context.Context) ([]response_models.InterestTagResponse, error) {
	tags, err := c.interestRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.InterestTagResponse, 0, len(tags))
	for _, tag := range tags {
		responses = append(responses, response_models.InterestTagResponse{
			ID:   tag.ID.String(),
			Name: tag.Name,
			Icon: tag.Icon,
		})
	}
	return responses, nil
}

func activityResponse(activity *db_models.Activity) response_models.ActivityResponse {
	return response_models.ActivityResponse{
		ID:          activity.ID.String(),
		Name:        activity.Name,
		Country:     activity.Country,
		Location:    activity.Location,
		Category:    activity.Category,
		Description: activity.Description,
		PriceLabel:  activity.PriceLabel,
		ImageURL:    activity.ImageURL,
	}
}
