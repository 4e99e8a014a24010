// Package health reports liveness and dependency status.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

const checkTimeout = 2 * time.Second

// Check pings one dependency.
type Check func(ctx context.Context) error

type Handler struct {
	version string
	checks  map[string]Check
	logger  logger.Interface
}

func NewHandler(version string, checks map[string]Check, log logger.Interface) *Handler {
	return &Handler{version: version, checks: checks, logger: log}
}

type Response struct {
	Status   string            `json:"status"`
	Service  string            `json:"service"`
	Version  string            `json:"version"`
	Services map[string]string `json:"services"`
}

// HealthCheck handles GET /health
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /health [get]
func (h *Handler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	resp := Response{
		Status:   "healthy",
		Service:  "relatorio",
		Version:  h.version,
		Services: make(map[string]string, len(h.checks)),
	}
	status := http.StatusOK

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warnw("health check failed", "service", name, "error", err)
			resp.Services[name] = "unavailable"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Services[name] = "ok"
	}

	c.JSON(status, resp)
}
