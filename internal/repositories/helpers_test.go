package repositories

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.False(t, isUniqueViolation(nil))
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%lisbon%", containsPattern("lisbon"))
	assert.Equal(t, `%100\% off\_sale%`, containsPattern("100% off_sale"))
}

func TestResolveSort(t *testing.T) {
	assert.Equal(t, "forks_count", resolveSort(routeSortFields, "forksCount", 1))
	assert.Equal(t, "updatedAt", resolveSort(routeSortFields, "password", 0))
	assert.Equal(t, "created_at DESC", orderClause(resolveSort(itinerarySortFields, "createdAt", 1), false))
}

func TestRouteFilterToBSON(t *testing.T) {
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, bson.M{"isArchived": false}, routeFilterToBSON(RouteFilter{}))
	assert.Equal(t, bson.M{}, routeFilterToBSON(RouteFilter{IncludeArchived: true}))

	q := routeFilterToBSON(RouteFilter{
		Slug:         "lisbon-tiles",
		Visibility:   "public",
		SearchTerm:   "a.b",
		CreatedSince: &since,
	})
	assert.Equal(t, "lisbon-tiles", q["slug"])
	assert.Equal(t, "public", q["visibility"])
	assert.Equal(t, bson.M{"$gte": since}, q["createdAt"])

	or, ok := q["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 6)
	assert.Equal(t, bson.M{"title": primitive.Regex{Pattern: `a\.b`, Options: "i"}}, or[0])
}

func TestItineraryFilterToBSON(t *testing.T) {
	q := itineraryFilterToBSON(ItineraryFilter{UserID: "alice", Source: "ai"})
	assert.Equal(t, bson.M{"userId": "alice", "source": "ai"}, q)
}

func TestCreatedRange(t *testing.T) {
	since := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	q := itineraryFilterToBSON(ItineraryFilter{CreatedSince: &since, CreatedUntil: &until})
	assert.Equal(t, bson.M{"createdAt": bson.M{"$gte": since, "$lte": until}}, q)

	q = routeFilterToBSON(RouteFilter{IncludeArchived: true, CreatedUntil: &until})
	assert.Equal(t, bson.M{"createdAt": bson.M{"$lte": until}}, q)

	q = bson.M{}
	createdRange(q, nil, nil)
	assert.Empty(t, q)
}

func TestFindOptions(t *testing.T) {
	fo := findOptions(routeSortFields, FindOptions{SortBy: "title", Ascending: true, Skip: 20, Limit: 10})

	assert.Equal(t, bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 1}}, fo.Sort)
	assert.EqualValues(t, 20, *fo.Skip)
	assert.EqualValues(t, 10, *fo.Limit)

	fo = findOptions(routeSortFields, FindOptions{})
	assert.Nil(t, fo.Skip)
	assert.Nil(t, fo.Limit)
}
