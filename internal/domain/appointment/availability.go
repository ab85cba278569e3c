package appointment

import "github.com/BruksfildServices01/clinic-scheduler/internal/models"

type AvailabilityInput struct {
	Doctor string
	Date   string
}

type TimeSlot struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// Availability marks each offered slot as booked or free for one doctor and day.
func Availability(
	offered []string,
	booked []models.Appointment,
	in AvailabilityInput,
) []TimeSlot {

	taken := make(map[string]bool)
	for _, ap := range booked {
		if ap.Doctor == in.Doctor && ap.AppointmentDate == in.Date {
			taken[ap.AppointmentTime] = true
		}
	}

	slots := make([]TimeSlot, 0, len(offered))
	for _, hm := range offered {
		slots = append(slots, TimeSlot{Time: hm, Booked: taken[hm]})
	}
	return slots
}
