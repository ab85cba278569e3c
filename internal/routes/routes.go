package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/schedule"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	repo domain.Repository,
	registry *schedule.Registry,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) {

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	validator := domain.NewValidator(registry, repo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		repo,
		validator,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		repo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(repo)

	availabilityUC := ucAppointment.NewGetAvailability(repo, registry)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
	)

	doctorHandler := handlers.NewDoctorHandler(registry, availabilityUC)

	bookingWebHandler := handlers.NewBookingWebHandler(
		registry,
		createAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		log,
	)

	r.GET("/health", func(c *gin.Context) {
		httpresp.OK(c, gin.H{"status": "ok"})
	})

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/", bookingWebHandler.Show)
	r.POST("/appointments", bookingWebHandler.Submit)
	r.POST("/appointments/:id/delete", bookingWebHandler.Delete)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/doctors", doctorHandler.List)
		api.GET("/doctors/:doctor/slots", doctorHandler.Slots)
		api.GET("/doctors/:doctor/availability", doctorHandler.Availability)

		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
	}
}
