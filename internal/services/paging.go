package services

import (
	"time"

	"tourwise/internal/repositories"
)

const defaultPageSize = 10

var timeNow = func() time.Time { return time.Now().UTC() }

func listOptions(sortBy, order string, startIndex, limit int, defaultSort string) repositories.FindOptions {
	if sortBy == "" {
		sortBy = defaultSort
	}
	if startIndex < 0 {
		startIndex = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	return repositories.FindOptions{
		SortBy:    sortBy,
		Ascending: order == "asc",
		Skip:      int64(startIndex),
		Limit:     int64(limit),
	}
}
