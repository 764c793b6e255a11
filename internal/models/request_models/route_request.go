package request_models

import (
	"tourwise/internal/models/db_models"
	"tourwise/pkg/utils"
)

type CreateRouteRequest struct {
	Title         string               `json:"title" binding:"required,min=3"`
	Summary       string               `json:"summary" binding:"required,max=240"`
	Visibility    string               `json:"visibility" binding:"omitempty,oneof=public private unlisted"`
	CoverImage    string               `json:"coverImage"`
	Gallery       utils.StringList     `json:"gallery"`
	Tags          utils.StringList     `json:"tags"`
	TerrainTypes  utils.StringList     `json:"terrainTypes"`
	Season        string               `json:"season"`
	StartLocation string               `json:"startLocation"`
	EndLocation   string               `json:"endLocation"`
	DistanceKm    *float64             `json:"distanceKm" binding:"omitempty,min=0"`
	DurationDays  *int                 `json:"durationDays" binding:"omitempty,min=1"`
	Overview      string               `json:"overview"`
	Itinerary     string               `json:"itinerary"`
	Highlights    utils.StringList     `json:"highlights"`
	Tips          utils.StringList     `json:"tips"`
	AllowForks    *bool                `json:"allowForks"`
	AllowComments *bool                `json:"allowComments"`
	WaypointList  []db_models.Waypoint `json:"waypointList"`
}

type CreateRouteFromItineraryRequest struct {
	ItineraryID   string           `json:"itineraryId" binding:"required"`
	Title         string           `json:"title"`
	Summary       string           `json:"summary" binding:"max=240"`
	Visibility    string           `json:"visibility" binding:"omitempty,oneof=public private unlisted"`
	SharePublicly bool             `json:"sharePublicly"`
	CoverImage    string           `json:"coverImage"`
	Gallery       utils.StringList `json:"gallery"`
	Tags          utils.StringList `json:"tags"`
	TerrainTypes  utils.StringList `json:"terrainTypes"`
	Season        string           `json:"season"`
	StartLocation string           `json:"startLocation"`
	EndLocation   string           `json:"endLocation"`
	DurationDays  *int             `json:"durationDays" binding:"omitempty,min=1"`
	DistanceKm    *float64         `json:"distanceKm" binding:"omitempty,min=0"`
	Overview      string           `json:"overview"`
	Itinerary     string           `json:"itinerary"`
	Highlights    utils.StringList `json:"highlights"`
	Tips          utils.StringList `json:"tips"`
	AllowForks    *bool            `json:"allowForks"`
	AllowComments *bool            `json:"allowComments"`
}

type UpdateRouteRequest struct {
	Title         *string               `json:"title" binding:"omitempty,min=3"`
	Summary       *string               `json:"summary" binding:"omitempty,max=240"`
	Visibility    *string               `json:"visibility" binding:"omitempty,oneof=public private unlisted"`
	CoverImage    *string               `json:"coverImage"`
	Gallery       *utils.StringList     `json:"gallery"`
	Tags          *utils.StringList     `json:"tags"`
	TerrainTypes  *utils.StringList     `json:"terrainTypes"`
	Season        *string               `json:"season"`
	StartLocation *string               `json:"startLocation"`
	EndLocation   *string               `json:"endLocation"`
	DistanceKm    *float64              `json:"distanceKm" binding:"omitempty,min=0"`
	DurationDays  *int                  `json:"durationDays" binding:"omitempty,min=1"`
	Overview      *string               `json:"overview"`
	Itinerary     *string               `json:"itinerary"`
	Highlights    *utils.StringList     `json:"highlights"`
	Tips          *utils.StringList     `json:"tips"`
	AllowForks    *bool                 `json:"allowForks"`
	AllowComments *bool                 `json:"allowComments"`
	IsArchived    *bool                 `json:"isArchived"`
	WaypointList  *[]db_models.Waypoint `json:"waypointList"`
}

type RouteListQuery struct {
	StartIndex int    `form:"startIndex" binding:"omitempty,min=0"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	SortBy     string `form:"sortBy"`
	Order      string `form:"order" binding:"omitempty,oneof=asc desc"`
	RouteID    string `form:"routeId"`
	Slug       string `form:"slug"`
	UserID     string `form:"userId"`
	Visibility string `form:"visibility" binding:"omitempty,oneof=public private unlisted"`
	Tag        string `form:"tag"`
	SearchTerm string `form:"searchTerm"`
}
