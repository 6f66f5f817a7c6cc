package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"limetrip/internal/api/controllers"
	"limetrip/internal/repositories"
	"limetrip/internal/services"
)

var Module = fx.Provide(
	provideActivityRepo,
	provideInterestRepo,
	provideCatalogService,
	provideCatalogController)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideInterestRepo(db *gorm.DB) repositories.InterestRepository {
	return repositories.NewInterestRepository(db)
}

func provideCatalogService(
	activityRepo repositories.ActivityRepository,
	interestRepo repositories.InterestRepository,
) services.CatalogServiceInterface {
	return services.NewCatalogService(activityRepo, interestRepo)
}

func provideCatalogController(catalogService services.CatalogServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}
