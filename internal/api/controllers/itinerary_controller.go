package controllers

import (
	"github.com/gin-gonic/gin"

	"tourwise/internal/models/request_models"
	"tourwise/internal/services"
	"tourwise/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// CreateFromRoute godoc
// @Summary Create an itinerary from a route
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryFromRouteRequest true "Source route"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [post]
func (i *ItineraryController) CreateFromRoute(c *gin.Context) {
	var req request_models.CreateItineraryFromRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	itinerary, err := i.itineraryService.CreateFromRoute(c.Request.Context(), viewerFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, itinerary, "Itinerary created successfully")
}

// List godoc
// @Summary List itineraries
// @Description Admin listing with paging and totals
// @Tags Itineraries
// @Produce json
// @Param startIndex query int false "Offset"
// @Param limit query int false "Page size (1-100)"
// @Param sortBy query string false "Sort field"
// @Param order query string false "asc | desc"
// @Param visibility query string false "private | shared"
// @Param status query string false "draft | published | archived"
// @Param source query string false "ai | route"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [get]
func (i *ItineraryController) List(c *gin.Context) {
	var q request_models.ItineraryListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := i.itineraryService.ListItineraries(c.Request.Context(), viewerFrom(c), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itineraries fetched successfully")
}

// ListByUser godoc
// @Summary List a user's itineraries
// @Tags Itineraries
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/user/{userId} [get]
func (i *ItineraryController) ListByUser(c *gin.Context) {
	var q request_models.ItineraryListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	itineraries, err := i.itineraryService.ListByUser(c.Request.Context(), viewerFrom(c), c.Param("userId"), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// Get godoc
// @Summary Get an itinerary
// @Description Shared itineraries are readable by any signed-in user
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [get]
func (i *ItineraryController) Get(c *gin.Context) {
	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), viewerFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// Update godoc
// @Summary Update an itinerary
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body request_models.UpdateItineraryRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [patch]
func (i *ItineraryController) Update(c *gin.Context) {
	var req request_models.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	itinerary, err := i.itineraryService.UpdateItinerary(c.Request.Context(), viewerFrom(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary updated successfully")
}

// ToggleVisibility godoc
// @Summary Toggle itinerary visibility
// @Description Flips between private and shared
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id}/visibility [patch]
func (i *ItineraryController) ToggleVisibility(c *gin.Context) {
	itinerary, err := i.itineraryService.ToggleVisibility(c.Request.Context(), viewerFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Visibility updated successfully")
}

// Delete godoc
// @Summary Delete an itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [delete]
func (i *ItineraryController) Delete(c *gin.Context) {
	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), viewerFrom(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}
