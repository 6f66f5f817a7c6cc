package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"limetrip/internal/services"
	"limetrip/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListActivities godoc
// @Summary List bookable activities
// @Tags Catalog
// @Produce json
// @Param country query string false "Country filter"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.ActivityResponse
// @Router /activities [get]
func (ct *CatalogController) ListActivities(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	activities, err := ct.catalogService.ListActivities(c.Request.Context(), c.Query("country"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, activities)
}

// GetActivity godoc
// @Summary Activity detail
// @Tags Catalog
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} response_models.ActivityResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /activities/{id} [get]
func (ct *CatalogController) GetActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Activity ID is required")
		return
	}

	activity, err := ct.catalogService.GetActivity(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, activity)
}

// ListInterests godoc
// @Summary List interest tags
// @Tags Catalog
// @Produce json
// @Success 200 {array} response_models.InterestTagResponse
// @Router /interests [get]
func (ct *CatalogController) ListInterests(c *gin.Context) {
	interests, err := ct.catalogService.ListInterests(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, interests)
}
