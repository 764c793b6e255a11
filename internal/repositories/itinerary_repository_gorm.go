package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"tourwise/internal/models/db_models"
)

type gormItineraryRepository struct {
	db *gorm.DB
}

func NewGormItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &gormItineraryRepository{db: db}
}

func itineraryScope(f ItineraryFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.UserID != "" {
			db = whereUUID(db, "user_id", f.UserID)
		}
		if f.Visibility != "" {
			db = db.Where("visibility = ?", f.Visibility)
		}
		if f.Status != "" {
			db = db.Where("status = ?", f.Status)
		}
		if f.Source != "" {
			db = db.Where("source = ?", f.Source)
		}
		if f.RouteID != "" {
			db = whereUUID(db, "route_id", f.RouteID)
		}
		if f.Tag != "" {
			db = db.Where("? = ANY(tags)", f.Tag)
		}
		return whereCreated(db, f.CreatedSince, f.CreatedUntil)
	}
}

func (r *gormItineraryRepository) Create(ctx context.Context, itinerary *db_models.Itinerary) error {
	stampCreate(&itinerary.CreatedAt, &itinerary.UpdatedAt)
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *gormItineraryRepository) FindByID(ctx context.Context, id string) (*db_models.Itinerary, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).First(&itinerary, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *gormItineraryRepository) Find(ctx context.Context, filter ItineraryFilter, opts FindOptions) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	q := r.db.WithContext(ctx).
		Scopes(itineraryScope(filter)).
		Order(orderClause(resolveSort(itinerarySortFields, opts.SortBy, 1), opts.Ascending))
	if opts.Skip > 0 {
		q = q.Offset(int(opts.Skip))
	}
	if opts.Limit > 0 {
		q = q.Limit(int(opts.Limit))
	}
	if err := q.Find(&itineraries).Error; err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *gormItineraryRepository) Count(ctx context.Context, filter ItineraryFilter) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Itinerary{}).Scopes(itineraryScope(filter)).Count(&n).Error
	return n, err
}

func (r *gormItineraryRepository) Replace(ctx context.Context, itinerary *db_models.Itinerary) error {
	itinerary.UpdatedAt = time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&db_models.Itinerary{}).
		Where("id = ?", itinerary.ID).
		Select("*").
		Updates(itinerary)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoMatch
	}
	return nil
}

func (r *gormItineraryRepository) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&db_models.Itinerary{}, "id = ?", id).Error
}
