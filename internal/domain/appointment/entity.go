package appointment

import "strings"

const (
	FieldPatientName     = "patientName"
	FieldAppointmentDate = "appointmentDate"
	FieldAppointmentTime = "appointmentTime"
	FieldDoctor          = "doctor"
)

// Draft is an uncommitted booking request.
type Draft struct {
	PatientName     string
	AppointmentDate string
	AppointmentTime string
	Doctor          string
}

// Normalize trims surrounding whitespace from every field.
func (d Draft) Normalize() Draft {
	return Draft{
		PatientName:     strings.TrimSpace(d.PatientName),
		AppointmentDate: strings.TrimSpace(d.AppointmentDate),
		AppointmentTime: strings.TrimSpace(d.AppointmentTime),
		Doctor:          strings.TrimSpace(d.Doctor),
	}
}

// MissingFields lists the required fields that are blank, in form order.
func (d Draft) MissingFields() []string {
	d = d.Normalize()

	var missing []string
	if d.PatientName == "" {
		missing = append(missing, FieldPatientName)
	}
	if d.AppointmentDate == "" {
		missing = append(missing, FieldAppointmentDate)
	}
	if d.AppointmentTime == "" {
		missing = append(missing, FieldAppointmentTime)
	}
	if d.Doctor == "" {
		missing = append(missing, FieldDoctor)
	}
	return missing
}

func (d Draft) IsEmpty() bool {
	return d == Draft{}
}
