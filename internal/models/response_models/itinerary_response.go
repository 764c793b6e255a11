package response_models

import (
	"time"

	"tourwise/internal/models/db_models"
)

// ItinerarySummary is the compact projection used by list views.
type ItinerarySummary struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Summary          string            `json:"summary"`
	Tags             []string          `json:"tags"`
	Status           string            `json:"status"`
	Visibility       string            `json:"visibility"`
	DurationDays     int               `json:"durationDays"`
	Prompt           string            `json:"prompt,omitempty"`
	Budget           *db_models.Budget `json:"budget,omitempty"`
	PublishedRouteID *string           `json:"publishedRouteId,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

func NewItinerarySummary(it db_models.Itinerary) ItinerarySummary {
	tags := []string(it.Tags)
	if tags == nil {
		tags = []string{}
	}
	return ItinerarySummary{
		ID:               it.ID,
		Title:            it.Title,
		Summary:          it.Summary,
		Tags:             tags,
		Status:           it.Status,
		Visibility:       it.Visibility,
		DurationDays:     it.DurationDays,
		Prompt:           it.Prompt,
		Budget:           it.Budget,
		PublishedRouteID: it.PublishedRouteID,
		CreatedAt:        it.CreatedAt,
		UpdatedAt:        it.UpdatedAt,
	}
}

type ItineraryListResponse struct {
	Itineraries          []db_models.Itinerary `json:"itineraries"`
	TotalItineraries     int64                 `json:"totalItineraries"`
	LastMonthItineraries int64                 `json:"lastMonthItineraries"`
}

type ShareItineraryResponse struct {
	Itinerary *db_models.Itinerary `json:"itinerary"`
	Route     *db_models.Route     `json:"route,omitempty"`
}

type ChatbotAnswer struct {
	Answer   string   `json:"answer"`
	Sources  []string `json:"sources,omitempty"`
	Fallback bool     `json:"fallback"`
}
