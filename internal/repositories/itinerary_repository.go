package repositories

import (
	"context"

	"tourwise/internal/models/db_models"
)

// ItineraryRepository persists itinerary documents. Lookups return (nil, nil) when absent.
type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *db_models.Itinerary) error
	FindByID(ctx context.Context, id string) (*db_models.Itinerary, error)
	Find(ctx context.Context, filter ItineraryFilter, opts FindOptions) ([]db_models.Itinerary, error)
	Count(ctx context.Context, filter ItineraryFilter) (int64, error)
	Replace(ctx context.Context, itinerary *db_models.Itinerary) error
	Delete(ctx context.Context, id string) error
}
