package schedule

import (
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/calendar"
)

// Registry maps each doctor to the fixed, ordered list of time slots they offer.
// It is built once at startup and never changes afterwards.
type Registry struct {
	doctors []string
	slots   map[string][]string
}

type Entry struct {
	Doctor string
	Slots  []string
}

// New builds a registry. Slots are trimmed; anything that is not a zero-padded
// HH:MM time is dropped.
func New(entries ...Entry) *Registry {
	r := &Registry{slots: make(map[string][]string, len(entries))}

	for _, e := range entries {
		name := strings.TrimSpace(e.Doctor)
		if name == "" {
			continue
		}
		if _, dup := r.slots[name]; !dup {
			r.doctors = append(r.doctors, name)
		}

		times := make([]string, 0, len(e.Slots))
		for _, s := range e.Slots {
			if s = strings.TrimSpace(s); calendar.IsTimeOfDay(s) {
				times = append(times, s)
			}
		}
		r.slots[name] = times
	}

	return r
}

// Default is the clinic's built-in schedule.
func Default() *Registry {
	return New(
		Entry{Doctor: "Dr. Smith", Slots: []string{
			"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "14:00", "14:30", "15:00",
		}},
		Entry{Doctor: "Dr. Brown", Slots: []string{
			"08:00", "08:30", "09:00", "09:30", "11:30", "12:00", "13:00", "13:30", "16:00",
		}},
		Entry{Doctor: "Dr. Taylor", Slots: []string{
			"10:00", "10:30", "11:00", "11:30", "12:00", "14:00", "14:30", "15:00", "16:00",
		}},
		Entry{Doctor: "Dr. Johnson", Slots: []string{
			"09:00", "09:30", "10:00", "11:00", "13:00", "14:00", "15:00", "17:00", "19:00",
		}},
	)
}

// Doctors returns the doctor names in declaration order.
func (r *Registry) Doctors() []string {
	out := make([]string, len(r.doctors))
	copy(out, r.doctors)
	return out
}

// Slots returns a copy of the doctor's slots, or an empty slice for an unknown doctor.
func (r *Registry) Slots(doctor string) []string {
	slots := r.slots[doctor]
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}

func (r *Registry) Has(doctor string) bool {
	_, ok := r.slots[doctor]
	return ok
}

func (r *Registry) Offers(doctor, hm string) bool {
	for _, s := range r.slots[doctor] {
		if s == hm {
			return true
		}
	}
	return false
}
