package repositories

import (
	"context"

	"tourwise/internal/models/db_models"
)

// RouteRepository persists route documents. Create and Replace return
// utils.ErrDuplicateSlug when the unique slug index rejects the write.
type RouteRepository interface {
	Create(ctx context.Context, route *db_models.Route) error
	FindByID(ctx context.Context, id string) (*db_models.Route, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.Route, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Find(ctx context.Context, filter RouteFilter, opts FindOptions) ([]db_models.Route, error)
	Count(ctx context.Context, filter RouteFilter) (int64, error)
	Replace(ctx context.Context, route *db_models.Route) error
	Delete(ctx context.Context, id string) error
	IncrementForks(ctx context.Context, id string) error
}
