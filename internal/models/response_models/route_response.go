package response_models

import "tourwise/internal/models/db_models"

type OwnerSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type RouteView struct {
	db_models.Route
	LikesCount int           `json:"likesCount"`
	Owner      *OwnerSummary `json:"owner,omitempty"`
}

type RouteListResponse struct {
	Routes          []RouteView `json:"routes"`
	TotalRoutes     int64       `json:"totalRoutes"`
	LastMonthRoutes int64       `json:"lastMonthRoutes"`
}

type LikeResponse struct {
	RouteID    string   `json:"routeId"`
	Liked      bool     `json:"liked"`
	LikesCount int      `json:"likesCount"`
	Likes      []string `json:"likes"`
}

type RouteFromItineraryResponse struct {
	Route     *db_models.Route     `json:"route"`
	Itinerary *db_models.Itinerary `json:"itinerary"`
}
