package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
)

// ListFilter narrows the list; empty fields match everything.
type ListFilter struct {
	Doctor string
	Date   string
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	f ListFilter,
) []dto.AppointmentListDTO {

	appointments := uc.repo.All(ctx)

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		if f.Doctor != "" && ap.Doctor != f.Doctor {
			continue
		}
		if f.Date != "" && ap.AppointmentDate != f.Date {
			continue
		}
		out = append(out, dto.FromAppointment(ap))
	}

	return out
}
