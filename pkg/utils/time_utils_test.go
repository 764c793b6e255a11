package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOneMonthAgo(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC), OneMonthAgo(now))
}

func TestNormalizeRange(t *testing.T) {
	start, end := NormalizeRange(time.Time{}, time.Time{})
	assert.False(t, end.IsZero())
	assert.Equal(t, end.AddDate(0, 0, -30), start)

	a := end.AddDate(0, 0, -1)
	s, e := NormalizeRange(end, a)
	assert.Equal(t, a, s)
	assert.Equal(t, end, e)
}
