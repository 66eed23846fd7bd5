package notification

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinician-api/internal/handler"
	"github.com/jwalitptl/clinician-api/internal/service/analytics"
	"github.com/jwalitptl/clinician-api/internal/service/notification"
)

type Handler struct {
	service   *notification.Service
	analytics *analytics.Service
}

func NewHandler(service *notification.Service, analytics *analytics.Service) *Handler {
	return &Handler{service: service, analytics: analytics}
}

type reminderRequest struct {
	AppointmentID string    `json:"appointment_id" binding:"required"`
	At            time.Time `json:"at" binding:"required"`
}

func (h *Handler) RequestPermission(c *gin.Context) {
	granted, err := h.service.RequestPermission(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"granted": granted}))
}

func (h *Handler) Status(c *gin.Context) {
	enabled, err := h.service.Enabled(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"enabled": enabled}))
}

func (h *Handler) Disable(c *gin.Context) {
	if err := h.service.Disable(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}
	h.analytics.Track("notifications_toggled", map[string]interface{}{"enabled": false})
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ScheduleReminder(c *gin.Context) {
	var req reminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.service.ScheduleReminder(c.Request.Context(), req.AppointmentID, req.At); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusAccepted, handler.NewSuccessResponse(nil))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.POST("/permission", h.RequestPermission)
		notifications.GET("/status", h.Status)
		notifications.POST("/disable", h.Disable)
		notifications.POST("/reminders", h.ScheduleReminder)
	}
}
