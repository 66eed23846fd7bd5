package schedule

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinician-api/internal/handler"
	"github.com/jwalitptl/clinician-api/internal/service/analytics"
	"github.com/jwalitptl/clinician-api/internal/service/schedule"
)

type Handler struct {
	service   *schedule.Service
	analytics *analytics.Service
}

func NewHandler(service *schedule.Service, analytics *analytics.Service) *Handler {
	return &Handler{service: service, analytics: analytics}
}

func (h *Handler) TodayAppointments(c *gin.Context) {
	h.analytics.TrackScreenView("dashboard", nil)

	appointments, err := h.service.TodayAppointments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.Appointments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) WeeklySchedule(c *gin.Context) {
	h.analytics.TrackScreenView("schedule", nil)

	week, err := h.service.WeeklySchedule(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(week))
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.GET("/today", h.TodayAppointments)
		appointments.GET("/week", h.WeeklySchedule)
	}

	r.GET("/dashboard/stats", h.Stats)
}
