package utils

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrIndexOutOfBounds   = errors.New("index out of bounds")
	ErrNotAIItinerary     = errors.New("only AI itineraries can be converted to routes")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrForkNotAllowed     = errors.New("forking is disabled for this route")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrRouteNotFound      = errors.New("route not found")
	ErrDayNotFound        = errors.New("day not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrDuplicateSlug      = errors.New("duplicate slug")
	ErrSlugConflict       = errors.New("slug conflict")
	ErrRateLimited        = errors.New("rate limited")
	ErrDatabaseError      = errors.New("database error")
)
