package request_models

import (
	"tourwise/internal/models/db_models"
	"tourwise/pkg/utils"
)

type GenerateItineraryRequest struct {
	Prompt      string                 `json:"prompt" binding:"required,min=10"`
	Preferences *db_models.Preferences `json:"preferences"`
}

// UpdateItineraryRequest is a partial update: nil fields are left untouched.
type UpdateItineraryRequest struct {
	Title        *string               `json:"title" binding:"omitempty,min=3"`
	Summary      *string               `json:"summary" binding:"omitempty,min=10"`
	Notes        *string               `json:"notes"`
	Prompt       *string               `json:"prompt"`
	DurationDays *int                  `json:"durationDays" binding:"omitempty,min=1"`
	Budget       *db_models.Budget     `json:"budget"`
	Tags         *utils.StringList     `json:"tags"`
	Days         *[]db_models.Day      `json:"days"`
	WaypointList *[]db_models.Waypoint `json:"waypointList"`
	Visibility   *string               `json:"visibility" binding:"omitempty,oneof=private shared"`
	Status       *string               `json:"status" binding:"omitempty,oneof=draft published archived"`
	CoverImage   *string               `json:"coverImage"`
}

type ReorderStopsRequest struct {
	DayNumber int  `json:"dayNumber" binding:"required,min=1"`
	OldIndex  *int `json:"oldIndex" binding:"required"`
	NewIndex  *int `json:"newIndex" binding:"required"`
}

type MoveStopRequest struct {
	FromDay   int  `json:"fromDay" binding:"required,min=1"`
	ToDay     int  `json:"toDay" binding:"required,min=1"`
	FromIndex *int `json:"fromIndex" binding:"required"`
	ToIndex   *int `json:"toIndex" binding:"required"`
}

type CreateItineraryFromRouteRequest struct {
	RouteID      string               `json:"routeId" binding:"required"`
	Title        string               `json:"title"`
	Summary      string               `json:"summary"`
	Notes        string               `json:"notes"`
	Visibility   string               `json:"visibility" binding:"omitempty,oneof=private shared"`
	CoverImage   string               `json:"coverImage"`
	Tags         utils.StringList     `json:"tags"`
	WaypointList []db_models.Waypoint `json:"waypointList"`
}

type ItineraryListQuery struct {
	StartIndex int    `form:"startIndex" binding:"omitempty,min=0"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	SortBy     string `form:"sortBy"`
	Order      string `form:"order" binding:"omitempty,oneof=asc desc"`
	Visibility string `form:"visibility" binding:"omitempty,oneof=private shared"`
	Status     string `form:"status" binding:"omitempty,oneof=draft published archived"`
	Source     string `form:"source" binding:"omitempty,oneof=ai route"`
	RouteID    string `form:"routeId"`
	Tag        string `form:"tag"`
	UserID     string `form:"userId"`
}

type ChatbotContext struct {
	PoiID    string              `json:"poiId,omitempty"`
	Name     string              `json:"name,omitempty"`
	Summary  string              `json:"summary,omitempty"`
	Location *db_models.Location `json:"location,omitempty"`
}

type ChatbotRequest struct {
	PoiID    string          `json:"poiId"`
	Question string          `json:"question" binding:"required,min=5"`
	Context  *ChatbotContext `json:"context"`
}
