package repositories

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourwise/internal/models/db_models"
	"tourwise/pkg/utils"
)

const RoutesCollection = "routes"

type mongoRouteRepository struct {
	coll *mongo.Collection
}

func NewMongoRouteRepository(db *mongo.Database) RouteRepository {
	return &mongoRouteRepository{coll: db.Collection(RoutesCollection)}
}

func routeFilterToBSON(f RouteFilter) bson.M {
	q := bson.M{}
	if !f.IncludeArchived {
		q["isArchived"] = false
	}
	if f.ID != "" {
		q["_id"] = f.ID
	}
	if f.Slug != "" {
		q["slug"] = f.Slug
	}
	if f.UserID != "" {
		q["userId"] = f.UserID
	}
	if f.Visibility != "" {
		q["visibility"] = f.Visibility
	}
	if f.Tag != "" {
		q["tags"] = f.Tag
	}
	if f.SearchTerm != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(f.SearchTerm), Options: "i"}
		q["$or"] = bson.A{
			bson.M{"title": rx},
			bson.M{"summary": rx},
			bson.M{"overview": rx},
			bson.M{"tags": rx},
			bson.M{"startLocation": rx},
			bson.M{"endLocation": rx},
		}
	}
	createdRange(q, f.CreatedSince, f.CreatedUntil)
	return q
}

func (r *mongoRouteRepository) Create(ctx context.Context, route *db_models.Route) error {
	if r.coll == nil {
		return errNilCollection
	}
	stampCreate(&route.CreatedAt, &route.UpdatedAt)
	_, err := r.coll.InsertOne(ctx, route)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrDuplicateSlug
	}
	return err
}

func (r *mongoRouteRepository) FindByID(ctx context.Context, id string) (*db_models.Route, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoRouteRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Route, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *mongoRouteRepository) findOne(ctx context.Context, filter bson.M) (*db_models.Route, error) {
	if r.coll == nil {
		return nil, errNilCollection
	}
	var route db_models.Route
	err := r.coll.FindOne(ctx, filter).Decode(&route)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &route, nil
}

func (r *mongoRouteRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	if r.coll == nil {
		return false, errNilCollection
	}
	filter := bson.M{"slug": slug}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *mongoRouteRepository) Find(ctx context.Context, filter RouteFilter, opts FindOptions) ([]db_models.Route, error) {
	if r.coll == nil {
		return nil, errNilCollection
	}
	cursor, err := r.coll.Find(ctx, routeFilterToBSON(filter), findOptions(routeSortFields, opts))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	routes := []db_models.Route{}
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *mongoRouteRepository) Count(ctx context.Context, filter RouteFilter) (int64, error) {
	if r.coll == nil {
		return 0, errNilCollection
	}
	return r.coll.CountDocuments(ctx, routeFilterToBSON(filter))
}

func (r *mongoRouteRepository) Replace(ctx context.Context, route *db_models.Route) error {
	if r.coll == nil {
		return errNilCollection
	}
	route.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": route.ID}, route)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ErrDuplicateSlug
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoMatch
	}
	return nil
}

func (r *mongoRouteRepository) Delete(ctx context.Context, id string) error {
	if r.coll == nil {
		return errNilCollection
	}
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *mongoRouteRepository) IncrementForks(ctx context.Context, id string) error {
	if r.coll == nil {
		return errNilCollection
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"forksCount": 1}})
	return err
}
