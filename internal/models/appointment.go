package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Appointment is a committed booking. Field names match the persisted slot format.
type Appointment struct {
	ID              string `json:"id"`
	PatientName     string `json:"patientName"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Doctor          string `json:"doctor"`
}

// UnmarshalJSON also accepts the numeric ids written by older clients and
// trims the slot fields, which older clients stored with stray spaces ("09:30 ").
func (a *Appointment) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID              any    `json:"id"`
		PatientName     string `json:"patientName"`
		AppointmentDate string `json:"appointmentDate"`
		AppointmentTime string `json:"appointmentTime"`
		Doctor          string `json:"doctor"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch v := raw.ID.(type) {
	case string:
		a.ID = v
	case float64:
		a.ID = strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		a.ID = ""
	default:
		return fmt.Errorf("appointment id: unsupported type %T", v)
	}

	a.PatientName = raw.PatientName
	a.AppointmentDate = strings.TrimSpace(raw.AppointmentDate)
	a.AppointmentTime = strings.TrimSpace(raw.AppointmentTime)
	a.Doctor = strings.TrimSpace(raw.Doctor)
	return nil
}

// SameSlot reports whether both appointments occupy the same doctor, date and time.
func (a Appointment) SameSlot(doctor, date, hm string) bool {
	return a.Doctor == doctor &&
		a.AppointmentDate == date &&
		a.AppointmentTime == hm
}
