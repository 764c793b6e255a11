package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourwise/internal/models/request_models"
	"tourwise/internal/services"
	"tourwise/pkg/utils"
)

type RouteController struct {
	routeService services.RouteServiceInterface
}

func NewRouteController(routeService services.RouteServiceInterface) *RouteController {
	return &RouteController{
		routeService: routeService,
	}
}

// Create godoc
// @Summary Create a route
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body request_models.CreateRouteRequest true "Route"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes [post]
func (r *RouteController) Create(c *gin.Context) {
	var req request_models.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	route, err := r.routeService.CreateRoute(c.Request.Context(), viewerFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, route, "Route created successfully")
}

// CreateFromItinerary godoc
// @Summary Promote an AI itinerary to a route
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body request_models.CreateRouteFromItineraryRequest true "Source itinerary"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/from-itinerary [post]
func (r *RouteController) CreateFromItinerary(c *gin.Context) {
	var req request_models.CreateRouteFromItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := r.routeService.CreateRouteFromItinerary(c.Request.Context(), viewerFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Route created successfully")
}

// List godoc
// @Summary Search routes
// @Description Anonymous callers see public routes only
// @Tags Routes
// @Produce json
// @Param startIndex query int false "Offset"
// @Param limit query int false "Page size (1-100)"
// @Param sortBy query string false "Sort field"
// @Param order query string false "asc | desc"
// @Param slug query string false "Exact slug"
// @Param searchTerm query string false "Title/summary search"
// @Param tag query string false "Tag"
// @Param userId query string false "Owner"
// @Success 200 {object} utils.APIResponse
// @Router /routes [get]
func (r *RouteController) List(c *gin.Context) {
	var q request_models.RouteListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := r.routeService.ListRoutes(c.Request.Context(), viewerFrom(c), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Routes fetched successfully")
}

// Get godoc
// @Summary Get a route
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id} [get]
func (r *RouteController) Get(c *gin.Context) {
	route, err := r.routeService.GetRoute(c.Request.Context(), viewerFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route fetched successfully")
}

// QRCode godoc
// @Summary Route share QR code
// @Tags Routes
// @Produce image/png
// @Param id path string true "Route ID"
// @Param size query int false "Edge length in pixels (default 256, max 1024)"
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id}/qr [get]
func (r *RouteController) QRCode(c *gin.Context) {
	size := 0
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondError(c, http.StatusBadRequest, "size must be a positive integer")
			return
		}
		size = parsed
	}

	png, err := r.routeService.ShareQRCode(c.Request.Context(), viewerFrom(c), c.Param("id"), size)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// Update godoc
// @Summary Update a route
// @Description A title change re-derives the slug
// @Tags Routes
// @Accept json
// @Produce json
// @Param id path string true "Route ID"
// @Param request body request_models.UpdateRouteRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/{id} [patch]
func (r *RouteController) Update(c *gin.Context) {
	var req request_models.UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	route, err := r.routeService.UpdateRoute(c.Request.Context(), viewerFrom(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route updated successfully")
}

// Delete godoc
// @Summary Delete a route
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/{id} [delete]
func (r *RouteController) Delete(c *gin.Context) {
	if err := r.routeService.DeleteRoute(c.Request.Context(), viewerFrom(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Route deleted successfully")
}

// Like godoc
// @Summary Toggle like on a route
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/{id}/like [post]
func (r *RouteController) Like(c *gin.Context) {
	resp, err := r.routeService.ToggleLike(c.Request.Context(), viewerFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// Fork godoc
// @Summary Fork a route
// @Description Creates a private copy owned by the caller
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/{id}/fork [post]
func (r *RouteController) Fork(c *gin.Context) {
	route, err := r.routeService.ForkRoute(c.Request.Context(), viewerFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, route, "Route forked successfully")
}
