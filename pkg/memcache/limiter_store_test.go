package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestLimiterStore_ReusesBucketPerKey(t *testing.T) {
	s := NewLimiterStore(60, 3, time.Minute)

	a := s.Get("a")
	assert.Same(t, a, s.Get("a"))
	assert.NotSame(t, a, s.Get("b"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, rate.Limit(1), a.Limit())
	assert.Equal(t, 3, a.Burst())
}

func TestLimiterStore_Defaults(t *testing.T) {
	s := NewLimiterStore(0, 0, 0)
	l := s.Get("k")
	assert.Equal(t, rate.Inf, l.Limit())
	assert.Equal(t, 1, l.Burst())
	assert.Equal(t, 10*time.Minute, s.ttl)
}

func TestLimiterStore_SweepsIdleKeys(t *testing.T) {
	s := NewLimiterStore(60, 1, 20*time.Millisecond)
	s.Get("old")
	time.Sleep(40 * time.Millisecond)

	s.Get("fresh")
	assert.Equal(t, 1, s.Len())
}
