package repository

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/slot"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func alice() models.Appointment {
	return models.Appointment{
		ID:              "a1",
		PatientName:     "Alice",
		AppointmentDate: "2024-06-01",
		AppointmentTime: "09:00",
		Doctor:          "Dr. Smith",
	}
}

func bob() models.Appointment {
	return models.Appointment{
		ID:              "b1",
		PatientName:     "Bob",
		AppointmentDate: "2024-06-01",
		AppointmentTime: "09:00",
		Doctor:          "Dr. Brown",
	}
}

func newStore(t *testing.T, s slot.Slot) *AppointmentStore {
	t.Helper()
	st := NewAppointmentStore(s, zap.NewNop())
	require.NoError(t, st.Load(context.Background()))
	return st
}

func TestLoadEmptySlot(t *testing.T) {
	st := newStore(t, slot.NewMemory())

	assert.NotNil(t, st.All(context.Background()))
	assert.Empty(t, st.All(context.Background()))
}

func TestLoadMalformedSlot(t *testing.T) {
	for name, data := range map[string]string{
		"garbage":    "{not json",
		"object":     `{"id":"1"}`,
		"null":       "null",
		"empty":      "",
		"wrong type": `[{"id":{"nested":true}}]`,
	} {
		t.Run(name, func(t *testing.T) {
			st := newStore(t, slot.NewMemoryWith([]byte(data)))
			assert.Empty(t, st.All(context.Background()))
		})
	}
}

func TestAppendPersistsFullCollection(t *testing.T) {
	ctx := context.Background()
	mem := slot.NewMemory()
	st := newStore(t, mem)

	st.Append(ctx, alice())
	st.Append(ctx, bob())

	var persisted []models.Appointment
	require.NoError(t, json.Unmarshal(mem.Bytes(), &persisted))
	assert.Equal(t, []models.Appointment{alice(), bob()}, persisted)
	assert.Equal(t, persisted, st.All(ctx))
}

func TestAppendThenRemoveRestoresStore(t *testing.T) {
	ctx := context.Background()
	mem := slot.NewMemory()
	st := newStore(t, mem)
	st.Append(ctx, alice())

	before := st.All(ctx)
	st.Append(ctx, bob())
	assert.True(t, st.Remove(ctx, bob().ID))

	assert.Equal(t, before, st.All(ctx))

	var persisted []models.Appointment
	require.NoError(t, json.Unmarshal(mem.Bytes(), &persisted))
	assert.Equal(t, before, persisted)
}

func TestRemoveUnknownID(t *testing.T) {
	ctx := context.Background()
	st := newStore(t, slot.NewMemory())
	st.Append(ctx, alice())

	assert.False(t, st.Remove(ctx, "missing"))
	assert.Equal(t, []models.Appointment{alice()}, st.All(ctx))
}

func TestPersistThenLoadRoundTrip(t *testing.T) {
	ctx := context.Background()

	f, err := slot.NewFile(t.TempDir(), "appointments")
	require.NoError(t, err)

	first := newStore(t, f)
	first.Append(ctx, alice())
	first.Append(ctx, bob())

	second := newStore(t, f)
	assert.Equal(t, first.All(ctx), second.All(ctx))
}

func TestLoadLegacyNumericIDs(t *testing.T) {
	data := `[{"id":1717232400000,"patientName":"Alice","appointmentDate":"2024-06-01","appointmentTime":"09:00","doctor":"Dr. Smith"}]`
	st := newStore(t, slot.NewMemoryWith([]byte(data)))

	all := st.All(context.Background())
	require.Len(t, all, 1)
	assert.Equal(t, "1717232400000", all[0].ID)

	assert.True(t, st.Remove(context.Background(), "1717232400000"))
}

func TestLoadLegacyTrailingSpaceTime(t *testing.T) {
	ctx := context.Background()
	data := `[{"id":1717232400000,"patientName":"Alice","appointmentDate":"2024-06-01","appointmentTime":"09:30 ","doctor":"Dr. Smith"}]`
	st := newStore(t, slot.NewMemoryWith([]byte(data)))

	all := st.All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "09:30", all[0].AppointmentTime)

	_, ok := st.FindConflict(ctx, "Dr. Smith", "2024-06-01", "09:30")
	assert.True(t, ok)
}

func TestWriteFailureIsIgnored(t *testing.T) {
	ctx := context.Background()
	mem := slot.NewMemory()
	mem.Fail = assert.AnError
	st := newStore(t, mem)

	st.Append(ctx, alice())

	assert.Equal(t, []models.Appointment{alice()}, st.All(ctx))
	assert.Nil(t, mem.Bytes())
}

func TestFindConflict(t *testing.T) {
	ctx := context.Background()
	st := newStore(t, slot.NewMemory())
	st.Append(ctx, alice())

	ap, ok := st.FindConflict(ctx, "Dr. Smith", "2024-06-01", "09:00")
	assert.True(t, ok)
	assert.Equal(t, alice(), ap)

	_, ok = st.FindConflict(ctx, "Dr. Brown", "2024-06-01", "09:00")
	assert.False(t, ok)
}

func TestAllReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	st := newStore(t, slot.NewMemory())
	st.Append(ctx, alice())

	snap := st.All(ctx)
	snap[0].PatientName = "Mallory"

	assert.Equal(t, "Alice", st.All(ctx)[0].PatientName)
}
