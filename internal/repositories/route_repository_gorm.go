package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"tourwise/internal/models/db_models"
	"tourwise/pkg/utils"
)

type gormRouteRepository struct {
	db *gorm.DB
}

func NewGormRouteRepository(db *gorm.DB) RouteRepository {
	return &gormRouteRepository{db: db}
}

func routeScope(f RouteFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !f.IncludeArchived {
			db = db.Where("is_archived = ?", false)
		}
		if f.ID != "" {
			db = whereUUID(db, "id", f.ID)
		}
		if f.Slug != "" {
			db = db.Where("slug = ?", f.Slug)
		}
		if f.UserID != "" {
			db = whereUUID(db, "user_id", f.UserID)
		}
		if f.Visibility != "" {
			db = db.Where("visibility = ?", f.Visibility)
		}
		if f.Tag != "" {
			db = db.Where("? = ANY(tags)", f.Tag)
		}
		if f.SearchTerm != "" {
			p := containsPattern(f.SearchTerm)
			db = db.Where(
				"(title ILIKE ? OR summary ILIKE ? OR overview ILIKE ? OR array_to_string(tags, ' ') ILIKE ? OR start_location ILIKE ? OR end_location ILIKE ?)",
				p, p, p, p, p, p,
			)
		}
		return whereCreated(db, f.CreatedSince, f.CreatedUntil)
	}
}

func (r *gormRouteRepository) Create(ctx context.Context, route *db_models.Route) error {
	stampCreate(&route.CreatedAt, &route.UpdatedAt)
	err := r.db.WithContext(ctx).Create(route).Error
	if isUniqueViolation(err) {
		return utils.ErrDuplicateSlug
	}
	return err
}

func (r *gormRouteRepository) FindByID(ctx context.Context, id string) (*db_models.Route, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.first(ctx, "id = ?", id)
}

func (r *gormRouteRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Route, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *gormRouteRepository) first(ctx context.Context, query string, arg string) (*db_models.Route, error) {
	var route db_models.Route
	err := r.db.WithContext(ctx).First(&route, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &route, nil
}

func (r *gormRouteRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&db_models.Route{}).Where("slug = ?", slug)
	if isUUID(excludeID) {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Limit(1).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *gormRouteRepository) Find(ctx context.Context, filter RouteFilter, opts FindOptions) ([]db_models.Route, error) {
	var routes []db_models.Route
	q := r.db.WithContext(ctx).
		Scopes(routeScope(filter)).
		Order(orderClause(resolveSort(routeSortFields, opts.SortBy, 1), opts.Ascending))
	if opts.Skip > 0 {
		q = q.Offset(int(opts.Skip))
	}
	if opts.Limit > 0 {
		q = q.Limit(int(opts.Limit))
	}
	if err := q.Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *gormRouteRepository) Count(ctx context.Context, filter RouteFilter) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Route{}).Scopes(routeScope(filter)).Count(&n).Error
	return n, err
}

func (r *gormRouteRepository) Replace(ctx context.Context, route *db_models.Route) error {
	route.UpdatedAt = time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&db_models.Route{}).
		Where("id = ?", route.ID).
		Select("*").
		Updates(route)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return utils.ErrDuplicateSlug
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoMatch
	}
	return nil
}

func (r *gormRouteRepository) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&db_models.Route{}, "id = ?", id).Error
}

func (r *gormRouteRepository) IncrementForks(ctx context.Context, id string) error {
	if !isUUID(id) {
		return ErrNoMatch
	}
	return r.db.WithContext(ctx).
		Model(&db_models.Route{}).
		Where("id = ?", id).
		UpdateColumn("forks_count", gorm.Expr("forks_count + ?", 1)).Error
}
