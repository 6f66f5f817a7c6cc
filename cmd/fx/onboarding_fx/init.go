package onboarding_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"limetrip/internal/api/controllers"
	"limetrip/internal/repositories"
	"limetrip/internal/services"
)

var Module = fx.Provide(
	provideOnboardingRepo,
	provideBookingRepo,
	provideBookingService,
	provideOnboardingService,
	provideOnboardingController)

func provideOnboardingRepo(db *gorm.DB) repositories.OnboardingRepository {
	return repositories.NewOnboardingRepository(db)
}

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	accountRepo repositories.AccountRepository,
	mailService services.IMailService,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, accountRepo, mailService)
}

func provideOnboardingService(
	onboardingRepo repositories.OnboardingRepository,
	bookingService services.BookingServiceInterface,
) services.OnboardingServiceInterface {
	return services.NewOnboardingService(onboardingRepo, bookingService)
}

func provideOnboardingController(
	onboardingService services.OnboardingServiceInterface,
	bookingService services.BookingServiceInterface,
) *controllers.OnboardingController {
	return controllers.NewOnboardingController(onboardingService, bookingService)
}
