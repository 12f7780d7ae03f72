package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/devfolio/devfolio/backend/go-services/pkg/metrics"
)

// RedisRateLimitMiddleware provides a coarse fixed-window Redis-backed limiter.
// Keying: prefers the authenticated admin subject, otherwise the client IP.
// Algorithm: INCR a per-window key and compare against allowed = floor(rps*windowSeconds)+burst.
// Intentionally simple and deterministic (suitable for distributed deployments).
func RedisRateLimitMiddleware(client *redis.Client, rps float64, burst int, window time.Duration) gin.HandlerFunc {
	if client == nil {
		// fallback to in-memory if no client
		return RateLimitMiddleware(rps, burst)
	}
	windowSeconds := int(window.Seconds())
	if windowSeconds <= 0 {
		windowSeconds = 1
	}
	allowedPerWindow := int(rps*float64(windowSeconds)) + burst
	return func(c *gin.Context) {
		key := "rl:" + limiterKey(c)

		// window bucket suffix
		bucket := time.Now().Unix() / int64(windowSeconds)
		redisKey := fmt.Sprintf("%s:%d", key, bucket)

		ctx := c.Request.Context()
		count, err := client.Incr(ctx, redisKey).Result()
		if err != nil {
			// fail open: a broken limiter must not take the site down
			metrics.RateLimitAllowed.WithLabelValues("redis").Inc()
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, redisKey, time.Duration(windowSeconds)*time.Second)
		}
		if count > int64(allowedPerWindow) {
			c.Header("Retry-After", fmt.Sprintf("%d", windowSeconds))
			metrics.RateLimitRejected.WithLabelValues("redis").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		metrics.RateLimitAllowed.WithLabelValues("redis").Inc()
		c.Next()
	}
}
