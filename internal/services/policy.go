package services

import (
	"tourwise/internal/models/db_models"
	"tourwise/internal/models/request_models"
	"tourwise/internal/repositories"
	"tourwise/pkg/utils"
)

// Viewer is the identity a request acts as. The zero value is anonymous.
type Viewer struct {
	ID      string
	IsAdmin bool
}

func (v Viewer) Authenticated() bool { return v.ID != "" }

// Authorize allows the owner or an admin. Callers report a missing entity before calling it.
func Authorize(ownerID string, viewer Viewer) error {
	if !viewer.Authenticated() {
		return utils.ErrUnauthenticated
	}
	if viewer.IsAdmin || viewer.ID == ownerID {
		return nil
	}
	return utils.ErrForbidden
}

func canViewItinerary(it *db_models.Itinerary, viewer Viewer) bool {
	return it.Visibility == db_models.VisibilityShared || Authorize(it.UserID, viewer) == nil
}

// Unlisted routes are reachable by direct link but never listed.
func canViewRoute(r *db_models.Route, viewer Viewer) bool {
	if r.Visibility == db_models.RouteVisibilityPublic || r.Visibility == db_models.RouteVisibilityUnlisted {
		return true
	}
	return Authorize(r.UserID, viewer) == nil
}

func seesEverything(requestedUserID string, viewer Viewer) bool {
	return viewer.IsAdmin || (viewer.Authenticated() && requestedUserID != "" && requestedUserID == viewer.ID)
}

// BuildItineraryFilter restricts non-owners to shared itineraries.
func BuildItineraryFilter(q request_models.ItineraryListQuery, viewer Viewer) repositories.ItineraryFilter {
	f := repositories.ItineraryFilter{
		UserID:     q.UserID,
		Visibility: q.Visibility,
		Status:     q.Status,
		Source:     q.Source,
		RouteID:    q.RouteID,
		Tag:        q.Tag,
	}
	if !seesEverything(q.UserID, viewer) {
		f.Visibility = db_models.VisibilityShared
	}
	return f
}

// BuildRouteFilter restricts non-owners to public routes.
func BuildRouteFilter(q request_models.RouteListQuery, viewer Viewer) repositories.RouteFilter {
	f := repositories.RouteFilter{
		ID:         q.RouteID,
		Slug:       q.Slug,
		UserID:     q.UserID,
		Visibility: q.Visibility,
		Tag:        q.Tag,
		SearchTerm: q.SearchTerm,
	}
	if !seesEverything(q.UserID, viewer) {
		f.Visibility = db_models.RouteVisibilityPublic
	}
	return f
}
