package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourwise/internal/models/db_models"
	"tourwise/pkg/utils"
)

func testMongoDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("mongo unreachable: %v", err)
	}

	db := client.Database("tourwise_test_" + uuid.NewString()[:8])
	require.NoError(t, EnsureMongoIndexes(ctx, db))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

func TestMongoRouteRepository_SlugLifecycle(t *testing.T) {
	db := testMongoDB(t)
	repo := NewMongoRouteRepository(db)
	ctx := context.Background()

	first := &db_models.Route{ID: uuid.NewString(), UserID: "alice", Title: "Lisbon Tiles", Slug: "lisbon-tiles", Visibility: db_models.RouteVisibilityPublic}
	require.NoError(t, repo.Create(ctx, first))

	taken, err := repo.SlugExists(ctx, "lisbon-tiles", "")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.SlugExists(ctx, "lisbon-tiles", first.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	dup := &db_models.Route{ID: uuid.NewString(), UserID: "bob", Title: "Lisbon Tiles", Slug: "lisbon-tiles"}
	assert.ErrorIs(t, repo.Create(ctx, dup), utils.ErrDuplicateSlug)

	found, err := repo.FindBySlug(ctx, "lisbon-tiles")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, first.ID, found.ID)

	missing, err := repo.FindByID(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.IncrementForks(ctx, first.ID))
	found, err = repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.ForksCount)

	n, err := repo.Count(ctx, RouteFilter{Visibility: db_models.RouteVisibilityPublic})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
