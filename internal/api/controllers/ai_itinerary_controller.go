package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourwise/internal/models/request_models"
	"tourwise/internal/services"
	"tourwise/pkg/utils"
)

type AIItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewAIItineraryController(itineraryService services.ItineraryServiceInterface) *AIItineraryController {
	return &AIItineraryController{
		itineraryService: itineraryService,
	}
}

// Generate godoc
// @Summary Generate an AI itinerary
// @Description Turns a free-text travel brief into a draft itinerary. Falls back to a deterministic plan when the model is unavailable.
// @Tags AI Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Travel brief"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/itineraries/generate [post]
func (a *AIItineraryController) Generate(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	itinerary, err := a.itineraryService.GenerateAIItinerary(c.Request.Context(), viewerFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, itinerary, "Itinerary generated successfully")
}

// List godoc
// @Summary List my AI itineraries
// @Description Most recently updated first. view=compact returns the summary projection.
// @Tags AI Itineraries
// @Produce json
// @Param view query string false "compact | full (default full)"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/itineraries [get]
func (a *AIItineraryController) List(c *gin.Context) {
	ctx := c.Request.Context()
	viewer := viewerFrom(c)

	if c.Query("view") == "compact" {
		summaries, err := a.itineraryService.ListAIItinerarySummaries(ctx, viewer)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, summaries, "Itineraries fetched successfully")
		return
	}

	itineraries, err := a.itineraryService.ListAIItineraries(ctx, viewer)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// Get godoc
// @Summary Get an AI itinerary
// @Tags AI Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/itineraries/{id} [get]
func (a *AIItineraryController) Get(c *gin.Context) {
	itinerary, err := a.itineraryService.GetAIItinerary(c.Request.Context(), viewerFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// Update godoc
// @Summary Update an AI itinerary
// @Description Partial update. Waypoints are regenerated when days change.
// @Tags AI Itineraries
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body request_models.UpdateItineraryRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/itineraries/{id} [patch]
func (a *AIItineraryController) Update(c *gin.Context) {
	var req request_models.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	itinerary, err := a.itineraryService.UpdateItinerary(c.Request.Context(), viewerFrom(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary updated successfully")
}

// Delete godoc
// @Summary Delete an AI itinerary
// @Tags AI Itineraries
// @Param id path string true "Itinerary ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/itineraries/{id} [delete]
func (a *AIItineraryController) Delete(c *gin.Context) {
	if err := a.itineraryService.DeleteItinerary(c.Request.Context(), viewerFrom(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Reorder godoc
// @Summary Reorder stops within a day
// @Tags AI Itineraries
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body request_models.ReorderStopsRequest true "Reorder request"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/itineraries/{id}/reorder [patch]
func (a *AIItineraryController) Reorder(c *gin.Context) {
	var req request_models.ReorderStopsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	itinerary, err := a.itineraryService.ReorderStops(c.Request.Context(), viewerFrom(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Stops reordered successfully")
}

// Move godoc
// @Summary Move a stop between days
// @Tags AI Itineraries
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body request_models.MoveStopRequest true "Move request"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/itineraries/{id}/move [patch]
func (a *AIItineraryController) Move(c *gin.Context) {
	var req request_models.MoveStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	itinerary, err := a.itineraryService.MoveStop(c.Request.Context(), viewerFrom(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Stop moved successfully")
}

// Copy godoc
// @Summary Duplicate an itinerary
// @Tags AI Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/itineraries/{id}/copy [post]
func (a *AIItineraryController) Copy(c *gin.Context) {
	itinerary, err := a.itineraryService.CopyItinerary(c.Request.Context(), viewerFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, itinerary, "Itinerary copied successfully")
}

// Share godoc
// @Summary Share an itinerary
// @Description Marks the itinerary shared and publishes a public route for it
// @Tags AI Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/itineraries/{id}/share [post]
func (a *AIItineraryController) Share(c *gin.Context) {
	resp, err := a.itineraryService.ShareItinerary(c.Request.Context(), viewerFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary shared successfully")
}

// Export godoc
// @Summary Export an itinerary as PDF
// @Tags AI Itineraries
// @Produce application/pdf
// @Param id path string true "Itinerary ID"
// @Success 200 {file} binary
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/itineraries/{id}/export [get]
func (a *AIItineraryController) Export(c *gin.Context) {
	data, filename, err := a.itineraryService.ExportPDF(c.Request.Context(), viewerFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// Chatbot godoc
// @Summary Ask about a place
// @Description Short travel answer about a point of interest. Returns a fallback answer when the model is unavailable.
// @Tags AI Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.ChatbotRequest true "Question"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/chatbot [post]
func (a *AIItineraryController) Chatbot(c *gin.Context) {
	var req request_models.ChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	answer, err := a.itineraryService.AskChatbot(c.Request.Context(), viewerFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, answer, "")
}
