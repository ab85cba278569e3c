package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/schedule"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

type DoctorHandler struct {
	registry       *schedule.Registry
	availabilityUC *ucAppointment.GetAvailability
}

func NewDoctorHandler(
	registry *schedule.Registry,
	availabilityUC *ucAppointment.GetAvailability,
) *DoctorHandler {
	return &DoctorHandler{
		registry:       registry,
		availabilityUC: availabilityUC,
	}
}

func (h *DoctorHandler) List(c *gin.Context) {
	httpresp.List(c, h.registry.Doctors())
}

func (h *DoctorHandler) Slots(c *gin.Context) {
	doctor := c.Param("doctor")
	if !h.registry.Has(doctor) {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	httpresp.List(c, h.registry.Slots(doctor))
}

func (h *DoctorHandler) Availability(c *gin.Context) {
	date := c.DefaultQuery("date", calendar.Today())

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		Doctor: c.Param("doctor"),
		Date:   date,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, slots)
}
