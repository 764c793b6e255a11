package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type APIResponse struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message,omitempty"`
	TraceID    string      `json:"traceId,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Success:    true,
		StatusCode: code,
		Message:    message,
		TraceID:    c.GetString("trace_id"),
		Data:       data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Success:    false,
		StatusCode: code,
		Message:    message,
		TraceID:    c.GetString("trace_id"),
	})
}

// ValidationMessage strips the sentinel prefix so clients see only the field detail.
func ValidationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
	if msg == "" {
		return ErrValidation.Error()
	}
	return msg
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, ValidationMessage(err))
	case errors.Is(err, ErrIndexOutOfBounds):
		RespondError(c, http.StatusBadRequest, "Stop index is out of bounds")
	case errors.Is(err, ErrNotAIItinerary):
		RespondError(c, http.StatusBadRequest, "Only AI itineraries can be converted to routes")
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "You are not allowed to access this resource")
	case errors.Is(err, ErrForkNotAllowed):
		RespondError(c, http.StatusForbidden, "Forking is disabled for this route")
	case errors.Is(err, ErrItineraryNotFound):
		RespondError(c, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, ErrRouteNotFound):
		RespondError(c, http.StatusNotFound, "Route not found")
	case errors.Is(err, ErrDayNotFound):
		RespondError(c, http.StatusNotFound, "Day not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrSlugConflict):
		RespondError(c, http.StatusConflict, "Could not allocate a unique slug, please retry")
	case errors.Is(err, ErrRateLimited):
		RespondError(c, http.StatusTooManyRequests, "Too many requests, slow down")
	case errors.Is(err, ErrDatabaseError):
		log.WithField("trace_id", c.GetString("trace_id")).Errorf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.WithField("trace_id", c.GetString("trace_id")).Errorf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
