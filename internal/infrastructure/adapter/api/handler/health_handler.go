package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves GET /health
type HealthHandler struct {
	storage     Pinger
	backend     string
	poolMetrics func() database.ConnectionPoolMetrics
	logger      coreport.Logger
}

// NewHealthHandler reports pool metrics only when poolMetrics is set
func NewHealthHandler(storage Pinger, backend string, poolMetrics func() database.ConnectionPoolMetrics, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{storage: storage, backend: backend, poolMetrics: poolMetrics, logger: logger}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Storage: h.backend}
	if h.poolMetrics != nil {
		metrics := h.poolMetrics()
		resp.DBPool = &metrics
	}

	if err := h.storage.Ping(ctx); err != nil {
		h.logger.Warn("Health check failed", map[string]any{
			"storage": h.backend,
			"error":   err.Error(),
		})
		resp.Status = "unavailable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
