package db_models

import (
	"time"

	"github.com/lib/pq"
)

const (
	RouteVisibilityPublic   = "public"
	RouteVisibilityPrivate  = "private"
	RouteVisibilityUnlisted = "unlisted"

	DefaultRouteCoverImage = "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=1600&q=80"
	DefaultSeason          = "all"
	MaxRouteSummaryLength  = 240
)

type Route struct {
	ID                string         `json:"id" bson:"_id" gorm:"type:uuid;primaryKey"`
	UserID            string         `json:"userId" bson:"userId" gorm:"type:uuid;index"`
	Visibility        string         `json:"visibility" bson:"visibility"`
	Title             string         `json:"title" bson:"title"`
	Slug              string         `json:"slug" bson:"slug" gorm:"uniqueIndex"`
	Summary           string         `json:"summary" bson:"summary"`
	CoverImage        string         `json:"coverImage" bson:"coverImage"`
	Gallery           pq.StringArray `json:"gallery" bson:"gallery" gorm:"type:text[]"`
	Tags              pq.StringArray `json:"tags" bson:"tags" gorm:"type:text[]"`
	TerrainTypes      pq.StringArray `json:"terrainTypes" bson:"terrainTypes" gorm:"type:text[]"`
	Season            string         `json:"season" bson:"season"`
	StartLocation     string         `json:"startLocation,omitempty" bson:"startLocation,omitempty"`
	EndLocation       string         `json:"endLocation,omitempty" bson:"endLocation,omitempty"`
	DistanceKm        *float64       `json:"distanceKm,omitempty" bson:"distanceKm,omitempty"`
	DurationDays      int            `json:"durationDays" bson:"durationDays"`
	Overview          string         `json:"overview,omitempty" bson:"overview,omitempty"`
	Itinerary         string         `json:"itinerary,omitempty" bson:"itinerary,omitempty"`
	Highlights        pq.StringArray `json:"highlights" bson:"highlights" gorm:"type:text[]"`
	Tips              pq.StringArray `json:"tips" bson:"tips" gorm:"type:text[]"`
	AllowForks        bool           `json:"allowForks" bson:"allowForks"`
	AllowComments     bool           `json:"allowComments" bson:"allowComments"`
	IsArchived        bool           `json:"isArchived" bson:"isArchived"`
	SourceRouteID     *string        `json:"sourceRouteId,omitempty" bson:"sourceRouteId,omitempty" gorm:"type:uuid"`
	SourceItineraryID *string        `json:"sourceItineraryId,omitempty" bson:"sourceItineraryId,omitempty" gorm:"type:uuid"`
	WaypointList      []Waypoint     `json:"waypointList" bson:"waypointList" gorm:"serializer:json"`
	Likes             pq.StringArray `json:"likes" bson:"likes" gorm:"type:text[]"`
	ForksCount        int            `json:"forksCount" bson:"forksCount"`
	CreatedAt         time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (r *Route) LikedBy(userID string) bool {
	for _, id := range r.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
