// pkg/memcache/limiter_store.go
package mem

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LimiterStore keeps one token bucket per key. Buckets idle longer than ttl are
// dropped on the next access sweep.
type LimiterStore struct {
	mu        sync.Mutex
	data      map[string]*entry
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
}

// NewLimiterStore allows perMinute requests per key with the given burst.
func NewLimiterStore(perMinute float64, burst int, ttl time.Duration) *LimiterStore {
	if burst < 1 {
		burst = 1
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(perMinute / 60)
	}
	return &LimiterStore{
		data:      make(map[string]*entry),
		limit:     limit,
		burst:     burst,
		ttl:       ttl,
		lastSweep: time.Now(),
	}
}

func (s *LimiterStore) Get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if now.Sub(s.lastSweep) > s.ttl {
		for k, e := range s.data {
			if now.Sub(e.lastSeen) > s.ttl {
				delete(s.data, k)
			}
		}
		s.lastSweep = now
	}

	e, ok := s.data[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.data[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

func (s *LimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
