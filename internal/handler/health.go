package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jwalitptl/clinician-api/internal/store"
	"github.com/jwalitptl/clinician-api/pkg/metrics"
)

// Handler serves the health and metrics endpoints.
type Handler struct {
	store   store.Store
	metrics *metrics.Metrics
}

func NewHandler(st store.Store, m *metrics.Metrics) *Handler {
	return &Handler{store: st, metrics: m}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// ReadinessCheck verifies the session store answers. A missing key is a
// healthy answer; only a transport-level failure makes the check fail.
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if _, err := h.store.Get(c.Request.Context(), store.KeyAuthToken); err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "session store unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (h *Handler) MetricsHandler(c *gin.Context) {
	promhttp.HandlerFor(h.metrics.Registry(), promhttp.HandlerOpts{}).ServeHTTP(c.Writer, c.Request)
}
