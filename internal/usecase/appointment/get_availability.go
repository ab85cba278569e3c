package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/schedule"
)

type GetAvailability struct {
	repo     domain.Repository
	registry *schedule.Registry
}

func NewGetAvailability(
	repo domain.Repository,
	registry *schedule.Registry,
) *GetAvailability {
	return &GetAvailability{repo: repo, registry: registry}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	if !uc.registry.Has(in.Doctor) {
		return nil, httperr.ErrBusiness("doctor_not_found", "Doctor not found.")
	}

	if !calendar.IsDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date", "Date must be YYYY-MM-DD.")
	}

	return domain.Availability(
		uc.registry.Slots(in.Doctor),
		uc.repo.All(ctx),
		in,
	), nil
}
