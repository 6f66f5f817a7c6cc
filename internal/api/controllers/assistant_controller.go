package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"limetrip/internal/models/request_models"
	"limetrip/internal/services"
	"limetrip/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

// Ask godoc
// @Summary Ask the travel assistant
// @Description Resolves map requests to an embeddable map, everything else to a text answer
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.AskRequest true "Prompt and optional country"
// @Success 200 {object} response_models.AskResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /ask [post]
func (a *AssistantController) Ask(c *gin.Context) {
	var req request_models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "prompt is required")
		return
	}

	result, err := a.assistantService.Ask(c.Request.Context(), req.Prompt, req.Country)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, result)
}
