package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tourwise/internal/models/request_models"
	"tourwise/internal/services"
	"tourwise/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get dashboard report
// @Description Totals and new-in-range counts for accounts, itineraries and routes
// @Tags Dashboard
// @Produce json
// @Param start query string false "RFC3339 or YYYY-MM-DD start"
// @Param end   query string false "RFC3339 or YYYY-MM-DD end"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (p *DashboardController) GetDashboard(c *gin.Context) {
	var q request_models.DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	start, err := parseDashboardTime(q.Start)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "start must be RFC3339 or YYYY-MM-DD")
		return
	}
	end, err := parseDashboardTime(q.End)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "end must be RFC3339 or YYYY-MM-DD")
		return
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		utils.RespondError(c, http.StatusBadRequest, "end must be after start")
		return
	}

	report, err := p.dashboardService.BuildDashboard(c.Request.Context(), viewerFrom(c), start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard fetched successfully")
}

func parseDashboardTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, raw)
}
