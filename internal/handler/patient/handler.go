package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinician-api/internal/handler"
	"github.com/jwalitptl/clinician-api/internal/model"
	"github.com/jwalitptl/clinician-api/internal/service/analytics"
	"github.com/jwalitptl/clinician-api/internal/service/schedule"
	apperrors "github.com/jwalitptl/clinician-api/pkg/errors"
)

type Handler struct {
	service   *schedule.Service
	analytics *analytics.Service
}

func NewHandler(service *schedule.Service, analytics *analytics.Service) *Handler {
	return &Handler{service: service, analytics: analytics}
}

// ListPatients returns the day's appointments filtered by patient name and
// status, which is exactly what the patient roster renders: one card per
// appointment with its embedded patient.
func (h *Handler) ListPatients(c *gin.Context) {
	query := c.Query("q")
	status := model.AppointmentStatus(c.Query("status"))

	if query != "" {
		h.analytics.Track("patient_search", map[string]interface{}{"query": query})
	}

	appointments, err := h.service.SearchAppointments(c.Request.Context(), query, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

// MedicalRecord serves the record view: vitals, allergies, medications, and
// last-visit notes for one patient.
func (h *Handler) MedicalRecord(c *gin.Context) {
	patientID := c.Param("id")
	if patientID == "" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("patient ID is required"))
		return
	}

	h.analytics.TrackScreenView("medical_record", map[string]interface{}{"patient_id": patientID})

	patient, err := h.service.PatientDetails(c.Request.Context(), patientID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("patient not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(patient))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.GET("", h.ListPatients)
		patients.GET("/:id/record", h.MedicalRecord)
	}
}
