package controllers

import (
	"github.com/gin-gonic/gin"

	"jaktrip/internal/models/response_models"
	"jaktrip/internal/planner"
	"jaktrip/internal/services"
	"jaktrip/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

func (dc *DestinationController) ListDestinationsHandler(c *gin.Context) {
	catalog := dc.destinationService.ListDestinations(c.Request.Context())

	resp := make([]response_models.DestinationResponse, 0, len(catalog))
	for _, d := range catalog {
		resp = append(resp, toDestinationResponse(d))
	}

	utils.RespondSuccess(c, resp, "Fetched destinations successfully")
}

func (dc *DestinationController) GetDestinationHandler(c *gin.Context) {
	destination, err := dc.destinationService.GetDestination(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toDestinationResponse(*destination), "Fetched destination successfully")
}

func (dc *DestinationController) ListCategoriesHandler(c *gin.Context) {
	utils.RespondSuccess(c, dc.destinationService.ListCategories(c.Request.Context()), "Fetched categories successfully")
}

func toDestinationResponse(d planner.RawDestination) response_models.DestinationResponse {
	return response_models.DestinationResponse{
		ID:            d.ID,
		Name:          d.Name,
		Category:      d.Category,
		Price:         string(d.Price),
		Location:      d.Location,
		IndoorOutdoor: d.IndoorOutdoor,
		Description:   d.Description,
	}
}
