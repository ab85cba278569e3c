package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the appointment. Deleting an unknown id is not an error;
// the result only reports whether something was removed.
func (uc *DeleteAppointment) Execute(ctx context.Context, id string) bool {
	removed := uc.repo.Remove(ctx, id)

	if removed {
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionAppointmentDeleted,
			Entity:   "appointment",
			EntityID: id,
		})
	}

	return removed
}
