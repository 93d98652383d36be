package booking

import (
	"time"

	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/domain/table"
)

// Event is a user action or the outcome of an effect.
type Event interface {
	eventName() string
}

type CheckRequested struct {
	Input reservation.Input
	Now   time.Time
}

type AvailabilityLoaded struct {
	Tables []table.Availability
}

type AvailabilityFailed struct {
	Message string
}

type TableSelected struct {
	TableID table.TableID
}

type SelectionCancelled struct{}

type ConfirmRequested struct {
	Customer reservation.Customer
}

type ReservationConfirmed struct {
	Receipt reservation.Receipt
	At      time.Time
}

type ReservationRejected struct {
	Message string
}

type ResetRequested struct{}

func (CheckRequested) eventName() string       { return "check_requested" }
func (AvailabilityLoaded) eventName() string   { return "availability_loaded" }
func (AvailabilityFailed) eventName() string   { return "availability_failed" }
func (TableSelected) eventName() string        { return "table_selected" }
func (SelectionCancelled) eventName() string   { return "selection_cancelled" }
func (ConfirmRequested) eventName() string     { return "confirm_requested" }
func (ReservationConfirmed) eventName() string { return "reservation_confirmed" }
func (ReservationRejected) eventName() string  { return "reservation_rejected" }
func (ResetRequested) eventName() string       { return "reset_requested" }

func EventName(e Event) string {
	return e.eventName()
}
