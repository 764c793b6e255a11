package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	mem "tourwise/pkg/memcache"
	"tourwise/pkg/utils"
)

// RateLimitMiddleware throttles per authenticated user, falling back to the client IP.
func RateLimitMiddleware(store *mem.LimiterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString(ContextUserID)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		limiter := store.Get(key)
		reservation := limiter.Reserve()
		if !reservation.OK() {
			utils.HandleServiceError(c, utils.ErrRateLimited)
			c.Abort()
			return
		}
		if delay := reservation.Delay(); delay > 0 {
			reservation.Cancel()
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			log.WithFields(log.Fields{"key": key, "path": c.FullPath()}).Info("rate limited")
			utils.HandleServiceError(c, utils.ErrRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}
