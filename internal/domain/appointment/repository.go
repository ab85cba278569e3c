package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Repository is the single owner of committed appointments.
// Every mutation persists the whole collection before returning.
type Repository interface {
	// Load replaces the in-memory collection with the persisted one.
	// Missing or malformed data yields an empty collection.
	Load(ctx context.Context) error

	Append(ctx context.Context, ap models.Appointment)

	// Remove deletes the appointment with that id; an unknown id is a no-op.
	Remove(ctx context.Context, id string) bool

	// All returns a snapshot in booking order.
	All(ctx context.Context) []models.Appointment

	FindConflict(
		ctx context.Context,
		doctor string,
		date string,
		hm string,
	) (models.Appointment, bool)
}
