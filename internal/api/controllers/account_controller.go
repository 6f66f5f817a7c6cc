package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"limetrip/internal/models/request_models"
	"limetrip/internal/models/response_models"
	"limetrip/internal/services"
	"limetrip/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} utils.ErrorResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{"message": "Account created successfully"})
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.LoginResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, response_models.LoginResponse{Token: token})
}

// Me godoc
// @Summary Current profile
// @Description Profile of the authenticated account
// @Tags Accounts
// @Produce json
// @Success 200 {object} response_models.ProfileResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /accounts/me [get]
func (a *AccountController) Me(c *gin.Context) {
	profile, err := a.accountService.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, profile)
}
