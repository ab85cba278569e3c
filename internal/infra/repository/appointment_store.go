package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/slot"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// AppointmentStore keeps appointments in memory in booking order and writes
// the full collection to its slot after every change.
type AppointmentStore struct {
	mu    sync.Mutex
	slot  slot.Slot
	log   *zap.Logger
	items []models.Appointment
}

func NewAppointmentStore(s slot.Slot, log *zap.Logger) *AppointmentStore {
	return &AppointmentStore{
		slot:  s,
		log:   log,
		items: []models.Appointment{},
	}
}

// --------------------------------------------------
// Load
// --------------------------------------------------

func (s *AppointmentStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []models.Appointment{}

	data, err := s.slot.Read(ctx)
	if errors.Is(err, slot.ErrEmpty) {
		return nil
	}
	if err != nil {
		s.log.Warn("appointment slot unreadable, starting empty", zap.Error(err))
		return nil
	}

	var items []models.Appointment
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn("appointment slot malformed, starting empty", zap.Error(err))
		return nil
	}
	if items != nil {
		s.items = items
	}

	s.log.Info("appointments loaded", zap.Int("count", len(s.items)))
	return nil
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

func (s *AppointmentStore) Append(ctx context.Context, ap models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, ap)
	s.persist(ctx)
}

func (s *AppointmentStore) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.Appointment, 0, len(s.items))
	for _, ap := range s.items {
		if ap.ID != id {
			kept = append(kept, ap)
		}
	}
	removed := len(kept) != len(s.items)

	s.items = kept
	s.persist(ctx)
	return removed
}

// persist overwrites the slot with the whole collection. Write failures are
// logged and dropped; the in-memory collection stays authoritative.
func (s *AppointmentStore) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.log.Error("encode appointments", zap.Error(err))
		return
	}

	if err := s.slot.Write(ctx, data); err != nil {
		s.log.Warn("persist appointments", zap.Error(err))
	}
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (s *AppointmentStore) All(_ context.Context) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Appointment, len(s.items))
	copy(out, s.items)
	return out
}

func (s *AppointmentStore) FindConflict(
	_ context.Context,
	doctor string,
	date string,
	hm string,
) (models.Appointment, bool) {

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ap := range s.items {
		if ap.SameSlot(doctor, date, hm) {
			return ap, true
		}
	}
	return models.Appointment{}, false
}

// Compile-time check
var _ domain.Repository = (*AppointmentStore)(nil)
