package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/form"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/schedule"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/views"
)

const actionSelectDoctor = "select_doctor"

// BookingWebHandler serves the HTML booking form and appointment list.
type BookingWebHandler struct {
	registry *schedule.Registry
	createUC *ucAppointment.CreateAppointment
	deleteUC *ucAppointment.DeleteAppointment
	listUC   *ucAppointment.ListAppointments
	log      *zap.Logger
}

func NewBookingWebHandler(
	registry *schedule.Registry,
	createUC *ucAppointment.CreateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
	log *zap.Logger,
) *BookingWebHandler {
	return &BookingWebHandler{
		registry: registry,
		createUC: createUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		log:      log,
	}
}

type BookingForm struct {
	PatientName     string `form:"patientName"`
	AppointmentDate string `form:"appointmentDate"`
	AppointmentTime string `form:"appointmentTime"`
	Doctor          string `form:"doctor"`
	Action          string `form:"action"`
}

func (h *BookingWebHandler) Show(c *gin.Context) {
	h.render(c, http.StatusOK, form.New(h.registry, h.createUC))
}

func (h *BookingWebHandler) Submit(c *gin.Context) {
	var req BookingForm
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid form.")
		return
	}

	ctrl := form.Restore(h.registry, h.createUC, domain.Draft{
		PatientName:     req.PatientName,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Doctor:          req.Doctor,
	})
	ctrl.OnTransition = func(from, to form.State) {
		h.log.Debug("booking form transition",
			zap.Stringer("from", from),
			zap.Stringer("to", to),
		)
	}

	if req.Action == actionSelectDoctor {
		h.render(c, http.StatusOK, ctrl)
		return
	}

	if _, err := ctrl.Submit(c.Request.Context()); err != nil {
		status := http.StatusUnprocessableEntity
		if _, ok := httperr.AsBusiness(err); !ok {
			h.log.Error("booking failed", zap.Error(err))
			status = http.StatusInternalServerError
		}
		h.render(c, status, ctrl)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *BookingWebHandler) Delete(c *gin.Context) {
	h.deleteUC.Execute(c.Request.Context(), c.Param("id"))
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *BookingWebHandler) render(c *gin.Context, status int, ctrl *form.Controller) {
	c.HTML(status, views.Index, gin.H{
		"Doctors":      ctrl.Doctors(),
		"Draft":        ctrl.Draft(),
		"Times":        ctrl.AvailableTimes(),
		"TimeVisible":  ctrl.TimeVisible(),
		"Error":        ctrl.ErrorMessage(),
		"Appointments": h.listUC.Execute(c.Request.Context(), ucAppointment.ListFilter{}),
	})
}
