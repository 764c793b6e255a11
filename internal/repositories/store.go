package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

// Store groups the repositories of one storage backend.
type Store struct {
	Itineraries ItineraryRepository
	Routes      RouteRepository
	Accounts    AccountRepository
}

func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Itineraries: NewMongoItineraryRepository(db),
		Routes:      NewMongoRouteRepository(db),
		Accounts:    NewMongoAccountRepository(db),
	}
}

func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Itineraries: NewGormItineraryRepository(db),
		Routes:      NewGormRouteRepository(db),
		Accounts:    NewGormAccountRepository(db),
	}
}

// EnsureMongoIndexes creates the unique and lookup indexes the repositories rely on.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		RoutesCollection: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "updatedAt", Value: -1}}},
			{Keys: bson.D{{Key: "visibility", Value: 1}, {Key: "isArchived", Value: 1}}},
		},
		ItinerariesCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "source", Value: 1}, {Key: "updatedAt", Value: -1}}},
		},
		AccountsCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
