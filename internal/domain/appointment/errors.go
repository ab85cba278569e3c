package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

const (
	CodeIncompleteFields = "incomplete_fields"
	CodeInvalidField     = "invalid_field"
	CodeSlotConflict     = "slot_conflict"
)

// IncompleteFieldsError is returned when a required draft field is empty.
type IncompleteFieldsError struct {
	Fields []string
}

func (e *IncompleteFieldsError) Error() string {
	return "All fields are required."
}

func (e *IncompleteFieldsError) Unwrap() error {
	return httperr.ErrBusiness(CodeIncompleteFields, e.Error())
}

// InvalidFieldError is returned when a field is present but not acceptable:
// a malformed date, an unknown doctor or a time the doctor does not offer.
type InvalidFieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return e.Reason
}

func (e *InvalidFieldError) Unwrap() error {
	return httperr.ErrBusiness(CodeInvalidField, e.Error())
}

// SlotConflictError is returned when the doctor is already booked at that date and time.
type SlotConflictError struct {
	Doctor string
	Date   string
	Time   string
}

func SlotConflict(doctor, date, hm string) error {
	return &SlotConflictError{Doctor: doctor, Date: date, Time: hm}
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf(
		"The selected time %s on %s is already booked for %s. Please select another time.",
		e.Time, e.Date, e.Doctor,
	)
}

func (e *SlotConflictError) Unwrap() error {
	return httperr.ErrBusiness(CodeSlotConflict, e.Error())
}
