package repositories

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var errNilCollection = errors.New("mongo collection is nil")

// createdRange adds a createdAt bound to q when either end is set.
func createdRange(q bson.M, since, until *time.Time) {
	r := bson.M{}
	if since != nil {
		r["$gte"] = *since
	}
	if until != nil {
		r["$lte"] = *until
	}
	if len(r) > 0 {
		q["createdAt"] = r
	}
}

func findOptions(fields map[string][2]string, opts FindOptions) *options.FindOptions {
	dir := -1
	if opts.Ascending {
		dir = 1
	}
	fo := options.Find().SetSort(bson.D{
		{Key: resolveSort(fields, opts.SortBy, 0), Value: dir},
		{Key: "_id", Value: dir},
	})
	if opts.Skip > 0 {
		fo.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		fo.SetLimit(opts.Limit)
	}
	return fo
}
