package stats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/surplustoserve/backend/pkg/response"
)

const cacheKey = "stats:counts"

// Store is the aggregate access the handler needs.
type Store interface {
	Counts(ctx context.Context) (Counts, error)
}

// Handler serves the dashboard stats, with an optional short-TTL Redis cache
// in front of the count query. A nil cache disables caching.
type Handler struct {
	store  Store
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewHandler creates a stats handler. cache may be nil.
func NewHandler(store Store, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *Handler {
	return &Handler{store: store, cache: cache, ttl: ttl, logger: logger}
}

// Get handles GET /stats (public).
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if raw, err := h.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var counts Counts
			if json.Unmarshal(raw, &counts) == nil {
				response.OK(c, counts)
				return
			}
		}
	}

	counts, err := h.store.Counts(ctx)
	if err != nil {
		h.logger.Error("count stats", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}

	if h.cache != nil {
		if raw, err := json.Marshal(counts); err == nil {
			// Best effort; a cache write failure must not fail the request.
			if err := h.cache.Set(ctx, cacheKey, raw, h.ttl).Err(); err != nil {
				h.logger.Warn("stats cache write", zap.Error(err))
			}
		}
	}

	response.OK(c, counts)
}
