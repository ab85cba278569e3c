// Package form drives the booking form: it owns the transient draft, keeps the
// doctor's time list in sync and commits through the create use case.
package form

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/schedule"
)

type State int

const (
	StateEmpty State = iota
	StateEditing
	StateSubmitting
	StateCommitted
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateCommitted:
		return "committed"
	case StateRejected:
		return "rejected"
	}
	return "unknown"
}

const genericFailure = "Something went wrong while booking. Please try again."

// Booker commits a validated draft.
type Booker interface {
	Execute(ctx context.Context, in domain.Draft) (models.Appointment, error)
}

type Controller struct {
	registry *schedule.Registry
	booker   Booker

	draft        domain.Draft
	times        []string
	errorMessage string
	state        State

	// OnTransition, if set, is called on every state change.
	OnTransition func(from, to State)
}

func New(registry *schedule.Registry, booker Booker) *Controller {
	return &Controller{
		registry: registry,
		booker:   booker,
		state:    StateEmpty,
	}
}

// Restore rebuilds a controller from a posted draft, applying the same rules
// as field-by-field editing.
func Restore(registry *schedule.Registry, booker Booker, d domain.Draft) *Controller {
	c := New(registry, booker)
	if d.IsEmpty() {
		return c
	}

	c.SetPatientName(d.PatientName)
	c.SetDate(d.AppointmentDate)
	c.SetTime(d.AppointmentTime)
	c.SelectDoctor(d.Doctor)
	return c
}

// --------------------------------------------------
// Editing
// --------------------------------------------------

func (c *Controller) SetPatientName(v string) {
	c.draft.PatientName = v
	c.edit()
}

func (c *Controller) SetDate(v string) {
	c.draft.AppointmentDate = v
	c.edit()
}

func (c *Controller) SetTime(v string) {
	c.draft.AppointmentTime = v
	c.edit()
}

// SelectDoctor switches the doctor and reloads the offered times. A chosen
// time the new doctor does not offer is cleared.
func (c *Controller) SelectDoctor(v string) {
	c.draft.Doctor = v
	c.times = c.registry.Slots(v)

	if c.draft.AppointmentTime != "" && !c.registry.Offers(v, c.draft.AppointmentTime) {
		c.draft.AppointmentTime = ""
	}
	c.edit()
}

func (c *Controller) edit() {
	if c.state == StateEmpty {
		c.transition(StateEditing)
	}
}

// --------------------------------------------------
// Submit
// --------------------------------------------------

// Submit validates and commits the draft. On success the form is reset; on
// failure the error message is set and every field is kept.
func (c *Controller) Submit(ctx context.Context) (models.Appointment, error) {
	c.transition(StateSubmitting)

	ap, err := c.booker.Execute(ctx, c.draft)
	if err != nil {
		c.transition(StateRejected)
		c.errorMessage = messageFor(err)
		c.transition(StateEditing)
		return models.Appointment{}, err
	}

	c.transition(StateCommitted)
	c.Reset()
	return ap, nil
}

func messageFor(err error) string {
	if be, ok := httperr.AsBusiness(err); ok {
		return be.Message
	}
	return genericFailure
}

func (c *Controller) Reset() {
	c.draft = domain.Draft{}
	c.times = nil
	c.errorMessage = ""
	c.transition(StateEmpty)
}

func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	if c.OnTransition != nil && from != to {
		c.OnTransition(from, to)
	}
}

// --------------------------------------------------
// Read side
// --------------------------------------------------

func (c *Controller) Draft() domain.Draft { return c.draft }

func (c *Controller) State() State { return c.state }

func (c *Controller) ErrorMessage() string { return c.errorMessage }

// AvailableTimes lists the selected doctor's slots, empty before a doctor is chosen.
func (c *Controller) AvailableTimes() []string {
	out := make([]string, len(c.times))
	copy(out, c.times)
	return out
}

// TimeVisible reports whether the time picker should be shown.
func (c *Controller) TimeVisible() bool {
	return c.draft.Doctor != ""
}

// Doctors are the options of the doctor picker.
func (c *Controller) Doctors() []string {
	return c.registry.Doctors()
}
