package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinician-api/internal/handler"
	"github.com/jwalitptl/clinician-api/internal/model"
	"github.com/jwalitptl/clinician-api/internal/service/analytics"
)

type Handler struct {
	service *analytics.Service
}

func NewHandler(service *analytics.Service) *Handler {
	return &Handler{service: service}
}

// TrackEvent accepts an event and acknowledges immediately; the sink is
// fire-and-forget and never surfaces a delivery result.
func (h *Handler) TrackEvent(c *gin.Context) {
	var event model.AnalyticsEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	h.service.Track(event.Name, event.Properties)
	c.JSON(http.StatusAccepted, handler.NewSuccessResponse(nil))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/analytics/events", h.TrackEvent)
}
