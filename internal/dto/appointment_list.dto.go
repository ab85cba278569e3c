package dto

import (
	"fmt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AppointmentListDTO struct {
	ID              string `json:"id"`
	PatientName     string `json:"patientName"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Doctor          string `json:"doctor"`
	Summary         string `json:"summary"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:              ap.ID,
		PatientName:     ap.PatientName,
		AppointmentDate: ap.AppointmentDate,
		AppointmentTime: ap.AppointmentTime,
		Doctor:          ap.Doctor,
		Summary: fmt.Sprintf(
			"%s has an appointment with %s on %s at %s",
			ap.PatientName, ap.Doctor, ap.AppointmentDate, ap.AppointmentTime,
		),
	}
}
