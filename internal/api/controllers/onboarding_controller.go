package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"limetrip/internal/models/request_models"
	"limetrip/internal/services"
	"limetrip/pkg/utils"
)

type OnboardingController struct {
	onboardingService services.OnboardingServiceInterface
	bookingService    services.BookingServiceInterface
}

func NewOnboardingController(
	onboardingService services.OnboardingServiceInterface,
	bookingService services.BookingServiceInterface,
) *OnboardingController {
	return &OnboardingController{
		onboardingService: onboardingService,
		bookingService:    bookingService,
	}
}

func currentUserId(c *gin.Context) (uuid.UUID, bool) {
	userId, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return uuid.Nil, false
	}
	return userId, true
}

// Status godoc
// @Summary Onboarding status
// @Description Whether the user has completed onboarding for a country
// @Tags Onboarding
// @Produce json
// @Param country query string false "Country" default(Barbados)
// @Success 200 {object} response_models.OnboardingStatusResponse
// @Security BearerAuth
// @Router /api/tourism-onboarding/status [get]
func (o *OnboardingController) Status(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}

	status, err := o.onboardingService.Status(c.Request.Context(), userId, c.Query("country"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, status)
}

// Trip godoc
// @Summary Trip details
// @Description The onboarding record with its derived bookings
// @Tags Onboarding
// @Produce json
// @Param country query string false "Country" default(Barbados)
// @Success 200 {object} response_models.TripResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/tourism-onboarding/trip [get]
func (o *OnboardingController) Trip(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}

	trip, err := o.onboardingService.Trip(c.Request.Context(), userId, c.Query("country"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, trip)
}

// Complete godoc
// @Summary Complete onboarding
// @Description Upserts the onboarding record and derives stay and activity bookings
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param request body request_models.CompleteOnboardingRequest true "Onboarding submission"
// @Success 200 {object} response_models.CompleteOnboardingResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/tourism-onboarding/complete [post]
func (o *OnboardingController) Complete(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}

	var req request_models.CompleteOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := o.onboardingService.Complete(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, result)
}

// BookAccommodation godoc
// @Summary Book a stay
// @Description Idempotently books a stay for the given listing and dates
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param request body request_models.BookAccommodationRequest true "Stay booking"
// @Success 200 {object} response_models.BookingResult
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/tourism-onboarding/book-accommodation [post]
func (o *OnboardingController) BookAccommodation(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}

	var req request_models.BookAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "listing_id, check_in and check_out are required")
		return
	}

	result, err := o.bookingService.BookAccommodation(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, result)
}

// BookActivity godoc
// @Summary Book an activity
// @Description Idempotently books an activity for the given date and time
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param request body request_models.BookActivityRequest true "Activity booking"
// @Success 200 {object} response_models.BookingResult
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/tourism-onboarding/book-activity [post]
func (o *OnboardingController) BookActivity(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}

	var req request_models.BookActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "activity_id, date and time are required")
		return
	}

	result, err := o.bookingService.BookActivity(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, result)
}
