package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/calendar"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/schedule"
)

// Validator turns a draft into a new appointment or rejects it.
type Validator struct {
	registry *schedule.Registry
	repo     Repository
	newID    func() string
}

func NewValidator(registry *schedule.Registry, repo Repository) *Validator {
	return &Validator{
		registry: registry,
		repo:     repo,
		newID:    uuid.NewString,
	}
}

// WithIDGenerator replaces the UUID generator, mainly for tests.
func (v *Validator) WithIDGenerator(fn func() string) *Validator {
	v.newID = fn
	return v
}

func (v *Validator) Validate(ctx context.Context, d Draft) (models.Appointment, error) {
	d = d.Normalize()

	// ===============================
	// Required fields
	// ===============================
	if missing := d.MissingFields(); len(missing) > 0 {
		return models.Appointment{}, &IncompleteFieldsError{Fields: missing}
	}

	// ===============================
	// Field values
	// ===============================
	if !calendar.IsDate(d.AppointmentDate) {
		return models.Appointment{}, &InvalidFieldError{
			Field:  FieldAppointmentDate,
			Value:  d.AppointmentDate,
			Reason: "Appointment date must be a valid YYYY-MM-DD date.",
		}
	}

	if !v.registry.Has(d.Doctor) {
		return models.Appointment{}, &InvalidFieldError{
			Field:  FieldDoctor,
			Value:  d.Doctor,
			Reason: fmt.Sprintf("%s is not one of our doctors.", d.Doctor),
		}
	}

	if !v.registry.Offers(d.Doctor, d.AppointmentTime) {
		return models.Appointment{}, &InvalidFieldError{
			Field:  FieldAppointmentTime,
			Value:  d.AppointmentTime,
			Reason: fmt.Sprintf("%s does not see patients at %s.", d.Doctor, d.AppointmentTime),
		}
	}

	// ===============================
	// Slot availability
	// ===============================
	if _, taken := v.repo.FindConflict(
		ctx,
		d.Doctor,
		d.AppointmentDate,
		d.AppointmentTime,
	); taken {
		return models.Appointment{}, SlotConflict(d.Doctor, d.AppointmentDate, d.AppointmentTime)
	}

	return models.Appointment{
		ID:              v.newID(),
		PatientName:     d.PatientName,
		AppointmentDate: d.AppointmentDate,
		AppointmentTime: d.AppointmentTime,
		Doctor:          d.Doctor,
	}, nil
}
