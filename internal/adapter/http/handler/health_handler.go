package handler

import (
	"net/http"

	"marketing-portal/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HealthHandler reports service and dependency health.
type HealthHandler struct {
	checkers []ports.HealthChecker
	log      zerolog.Logger
}

func NewHealthHandler(log zerolog.Logger, checkers ...ports.HealthChecker) *HealthHandler {
	return &HealthHandler{checkers: checkers, log: log}
}

// Check pings every dependency and reports per-dependency status.
//
//	GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	status := http.StatusOK
	deps := gin.H{}

	for _, checker := range h.checkers {
		if err := checker.Ping(c.Request.Context()); err != nil {
			h.log.Warn().Err(err).Str("dependency", checker.Name()).Msg("health check failed")
			deps[checker.Name()] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		deps[checker.Name()] = "ok"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}

	c.JSON(status, gin.H{
		"status":       overall,
		"dependencies": deps,
	})
}
