package appointment

import (
	"context"
	"errors"
	"sync"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	validator *domain.Validator
	audit     *audit.Dispatcher

	// serializes check-then-append so two concurrent bookings of the
	// same slot cannot both pass validation
	mu sync.Mutex
}

func NewCreateAppointment(
	repo domain.Repository,
	validator *domain.Validator,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		validator: validator,
		audit:     audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in domain.Draft,
) (models.Appointment, error) {

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// --------------------------------------------------
	// 1️⃣ Validation (fields + slot conflict)
	// --------------------------------------------------
	ap, err := uc.validator.Validate(ctx, in)
	if err != nil {
		uc.auditRejection(in, err)
		return models.Appointment{}, err
	}

	// --------------------------------------------------
	// 2️⃣ Commit (store persists on append)
	// --------------------------------------------------
	uc.repo.Append(ctx, ap)

	// --------------------------------------------------
	// 3️⃣ Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"doctor": ap.Doctor,
			"date":   ap.AppointmentDate,
			"time":   ap.AppointmentTime,
		},
	})

	return ap, nil
}

func (uc *CreateAppointment) auditRejection(in domain.Draft, err error) {
	action := audit.ActionAppointmentRejected
	var conflict *domain.SlotConflictError
	if errors.As(err, &conflict) {
		action = audit.ActionAppointmentConflict
	}

	uc.audit.Dispatch(audit.Event{
		Action: action,
		Entity: "appointment",
		Metadata: map[string]any{
			"doctor": in.Doctor,
			"date":   in.AppointmentDate,
			"time":   in.AppointmentTime,
			"reason": err.Error(),
		},
	})
}
