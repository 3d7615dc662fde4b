package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"routescout/internal/models/request_models"
	"routescout/internal/models/response_models"
	"routescout/internal/services"
	"routescout/pkg/utils"
)

type DiscoveryController struct {
	discoveryService services.DiscoveryServiceInterface
}

func NewDiscoveryController(discoveryService services.DiscoveryServiceInterface) *DiscoveryController {
	return &DiscoveryController{
		discoveryService: discoveryService,
	}
}

func (d *DiscoveryController) DiscoverRoutePOIs(c *gin.Context) {
	var request request_models.DiscoverPOIsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(request.Route) < 2 && (request.Origin == "" || request.Destination == "") {
		utils.RespondError(c, http.StatusBadRequest, "Provide a route or both origin and destination")
		return
	}

	result, err := d.discoveryService.DiscoverPOIs(c.Request.Context(), request.ToTripContext(), request.Limit)
	if err != nil {
		// An exhausted cascade is an answer, not a defect.
		if errors.Is(err, utils.ErrNoPOIsFound) {
			utils.RespondSuccess(c, response_models.FromDiscoveryResult(result), "No points of interest found along this route")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FromDiscoveryResult(result), "POIs discovered successfully")
}
