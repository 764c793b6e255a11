package db_models

import (
	"time"

	"github.com/lib/pq"
)

const (
	SourceAI    = "ai"
	SourceRoute = "route"

	VisibilityPrivate = "private"
	VisibilityShared  = "shared"

	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

type Itinerary struct {
	ID                    string         `json:"id" bson:"_id" gorm:"type:uuid;primaryKey"`
	UserID                string         `json:"userId" bson:"userId" gorm:"type:uuid;index"`
	RouteID               *string        `json:"routeId,omitempty" bson:"routeId,omitempty" gorm:"type:uuid"`
	PublishedRouteID      *string        `json:"publishedRouteId,omitempty" bson:"publishedRouteId,omitempty" gorm:"type:uuid"`
	Source                string         `json:"source" bson:"source"`
	Prompt                string         `json:"prompt,omitempty" bson:"prompt,omitempty"`
	Preferences           *Preferences   `json:"preferences,omitempty" bson:"preferences,omitempty" gorm:"serializer:json"`
	Title                 string         `json:"title" bson:"title"`
	Summary               string         `json:"summary" bson:"summary"`
	Notes                 string         `json:"notes,omitempty" bson:"notes,omitempty"`
	DurationDays          int            `json:"durationDays" bson:"durationDays"`
	Budget                *Budget        `json:"budget,omitempty" bson:"budget,omitempty" gorm:"serializer:json"`
	Visibility            string         `json:"visibility" bson:"visibility"`
	Status                string         `json:"status" bson:"status"`
	CoverImage            string         `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	Tags                  pq.StringArray `json:"tags" bson:"tags" gorm:"type:text[]"`
	Days                  []Day          `json:"days" bson:"days" gorm:"serializer:json"`
	WaypointList          []Waypoint     `json:"waypointList" bson:"waypointList" gorm:"serializer:json"`
	ForkedFromRouteID     *string        `json:"forkedFromRouteId,omitempty" bson:"forkedFromRouteId,omitempty" gorm:"type:uuid"`
	ForkedFromItineraryID *string        `json:"forkedFromItineraryId,omitempty" bson:"forkedFromItineraryId,omitempty" gorm:"type:uuid"`
	CreatedAt             time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt" bson:"updatedAt"`
}
