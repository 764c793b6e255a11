package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tourwise/internal/models/db_models"
)

const ItinerariesCollection = "itineraries"

type mongoItineraryRepository struct {
	coll *mongo.Collection
}

func NewMongoItineraryRepository(db *mongo.Database) ItineraryRepository {
	return &mongoItineraryRepository{coll: db.Collection(ItinerariesCollection)}
}

func itineraryFilterToBSON(f ItineraryFilter) bson.M {
	q := bson.M{}
	if f.UserID != "" {
		q["userId"] = f.UserID
	}
	if f.Visibility != "" {
		q["visibility"] = f.Visibility
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Source != "" {
		q["source"] = f.Source
	}
	if f.RouteID != "" {
		q["routeId"] = f.RouteID
	}
	if f.Tag != "" {
		q["tags"] = f.Tag
	}
	createdRange(q, f.CreatedSince, f.CreatedUntil)
	return q
}

func (r *mongoItineraryRepository) Create(ctx context.Context, itinerary *db_models.Itinerary) error {
	if r.coll == nil {
		return errNilCollection
	}
	stampCreate(&itinerary.CreatedAt, &itinerary.UpdatedAt)
	_, err := r.coll.InsertOne(ctx, itinerary)
	return err
}

func (r *mongoItineraryRepository) FindByID(ctx context.Context, id string) (*db_models.Itinerary, error) {
	if r.coll == nil {
		return nil, errNilCollection
	}
	var itinerary db_models.Itinerary
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&itinerary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *mongoItineraryRepository) Find(ctx context.Context, filter ItineraryFilter, opts FindOptions) ([]db_models.Itinerary, error) {
	if r.coll == nil {
		return nil, errNilCollection
	}
	cursor, err := r.coll.Find(ctx, itineraryFilterToBSON(filter), findOptions(itinerarySortFields, opts))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	itineraries := []db_models.Itinerary{}
	if err := cursor.All(ctx, &itineraries); err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *mongoItineraryRepository) Count(ctx context.Context, filter ItineraryFilter) (int64, error) {
	if r.coll == nil {
		return 0, errNilCollection
	}
	return r.coll.CountDocuments(ctx, itineraryFilterToBSON(filter))
}

func (r *mongoItineraryRepository) Replace(ctx context.Context, itinerary *db_models.Itinerary) error {
	if r.coll == nil {
		return errNilCollection
	}
	itinerary.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": itinerary.ID}, itinerary)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoMatch
	}
	return nil
}

func (r *mongoItineraryRepository) Delete(ctx context.Context, id string) error {
	if r.coll == nil {
		return errNilCollection
	}
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
