package repositories

import (
	"errors"
	"time"
)

// ErrNoMatch is returned by write operations that matched no record.
var ErrNoMatch = errors.New("no record matched")

type FindOptions struct {
	SortBy    string
	Ascending bool
	Skip      int64
	Limit     int64
}

// ItineraryFilter narrows a query. Both CreatedSince and CreatedUntil are inclusive.
type ItineraryFilter struct {
	UserID       string
	Visibility   string
	Status       string
	Source       string
	RouteID      string
	Tag          string
	CreatedSince *time.Time
	CreatedUntil *time.Time
}

type RouteFilter struct {
	ID              string
	Slug            string
	UserID          string
	Visibility      string
	Tag             string
	SearchTerm      string
	IncludeArchived bool
	CreatedSince    *time.Time
	CreatedUntil    *time.Time
}

// Sort keys accepted by the API, mapped to {document field, column}.
var itinerarySortFields = map[string][2]string{
	"createdAt":    {"createdAt", "created_at"},
	"updatedAt":    {"updatedAt", "updated_at"},
	"title":        {"title", "title"},
	"durationDays": {"durationDays", "duration_days"},
}

var routeSortFields = map[string][2]string{
	"createdAt":    {"createdAt", "created_at"},
	"updatedAt":    {"updatedAt", "updated_at"},
	"title":        {"title", "title"},
	"forksCount":   {"forksCount", "forks_count"},
	"durationDays": {"durationDays", "duration_days"},
}

// resolveSort returns the document field (idx 0) or column (idx 1), defaulting to updatedAt.
func resolveSort(fields map[string][2]string, key string, idx int) string {
	if f, ok := fields[key]; ok {
		return f[idx]
	}
	return fields["updatedAt"][idx]
}
