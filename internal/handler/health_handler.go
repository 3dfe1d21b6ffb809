package handler

import (
	"context"
	"time"

	"ai-tutor/internal/dto"
	"ai-tutor/internal/logger"
	"ai-tutor/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is satisfied by adapter.RedisStorage.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	analytics service.AnalyticsService
	redis     Pinger
}

// NewHealthHandler creates a HealthHandler. redis may be nil when no Redis is configured.
func NewHealthHandler(analytics service.AnalyticsService, redis Pinger) *HealthHandler {
	return &HealthHandler{analytics: analytics, redis: redis}
}

// Health godoc
// @Summary Health check
// @Description Reports the dataset version in use and Redis reachability
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	info, err := h.analytics.GetDatasetInfo(c.UserContext())
	if err != nil {
		return err
	}

	resp := dto.HealthResponse{Status: "ok", DatasetVersion: info.Version}
	if h.redis != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), time.Second)
		defer cancel()
		if err := h.redis.Ping(ctx); err != nil {
			logger.Get().Warn("Redis health check failed", zap.Error(err))
			resp.Redis = "unavailable"
			resp.Status = "degraded"
		} else {
			resp.Redis = "ok"
		}
	}
	return c.JSON(resp)
}
