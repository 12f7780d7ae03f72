package portfolio

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/devfolio/devfolio/backend/go-services/pkg/logger"
	"github.com/devfolio/devfolio/backend/go-services/pkg/metrics"
)

const (
	cacheKey = "portfolio:snapshot"
	// matches the 60s CDN window; stale-while-revalidate covers the rest
	cacheControl = "public, s-maxage=60, stale-while-revalidate=30"
)

// Handler serves the aggregated public read path. The Redis client is
// optional; without it every request rebuilds the snapshot and only the
// HTTP cache header limits staleness.
type Handler struct {
	svc      *Service
	redis    *redis.Client
	cacheTTL time.Duration
}

func NewHandler(svc *Service, rdb *redis.Client, cacheTTL time.Duration) *Handler {
	return &Handler{svc: svc, redis: rdb, cacheTTL: cacheTTL}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/portfolio-data", h.Get)
}

func (h *Handler) Get(c *gin.Context) {
	c.Header("Cache-Control", cacheControl)
	ctx := c.Request.Context()

	if h.redis != nil {
		if cached, err := h.redis.Get(ctx, cacheKey).Bytes(); err == nil {
			metrics.SnapshotCacheHits.WithLabelValues("hit").Inc()
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
		metrics.SnapshotCacheHits.WithLabelValues("miss").Inc()
	}

	snap, err := h.svc.Snapshot(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching portfolio data", "error": err.Error()})
		return
	}

	if h.redis != nil {
		payload, err := json.Marshal(snap)
		if err == nil {
			if err := h.redis.Set(ctx, cacheKey, payload, h.cacheTTL).Err(); err != nil {
				logger.Warnf("snapshot cache write failed: %v", err)
			}
		}
	}
	c.JSON(http.StatusOK, snap)
}
