package memcache_fx

import (
	"time"

	"go.uber.org/fx"

	"tourwise/internal/config"
	mem "tourwise/pkg/memcache"
)

var Module = fx.Provide(provideLimiterStore)

func provideLimiterStore(cfg *config.Config) *mem.LimiterStore {
	return mem.NewLimiterStore(cfg.GenerateRatePerMinute, cfg.GenerateBurst, 30*time.Minute)
}
