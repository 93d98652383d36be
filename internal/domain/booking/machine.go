package booking

import (
	"time"

	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/domain/table"
)

const (
	NoTablesNotice      = "No tables available for the selected criteria."
	NoSelectionMessage  = "No table has been selected."
	UnavailableSelected = "The selected table is not available."
	DefaultSuccessText  = "Reservation confirmed."
)

// Machine drives the booking widget. Handle never performs I/O; network work
// is returned as effects and its outcome comes back as another event.
type Machine struct {
	guard      *reservation.Guard
	guest      reservation.Customer
	resetDelay time.Duration
}

func NewMachine(guard *reservation.Guard, guest reservation.Customer, resetDelay time.Duration) *Machine {
	return &Machine{
		guard:      guard,
		guest:      guest,
		resetDelay: resetDelay,
	}
}

func (m *Machine) Handle(s State, e Event) (State, []Effect) {
	switch ev := e.(type) {
	case CheckRequested:
		return m.check(s, ev)
	case AvailabilityLoaded:
		return m.loaded(s, ev)
	case AvailabilityFailed:
		s.Phase = PhaseIdle
		s.Tables = []table.Availability{}
		s.Error = ev.Message
		return s, []Effect{Notify{Kind: MessageError, Text: ev.Message}}
	case TableSelected:
		return m.selectTable(s, ev)
	case SelectionCancelled:
		if s.Selected == nil {
			return s, nil
		}
		s.Selected = nil
		s.Message = nil
		s.Phase = PhaseListing
		return s, nil
	case ConfirmRequested:
		return m.confirm(s, ev)
	case ReservationConfirmed:
		return m.confirmed(s, ev)
	case ReservationRejected:
		s.Phase = PhaseSelected
		s.Message = &Message{Kind: MessageError, Text: ev.Message}
		return s, []Effect{Notify{Kind: MessageError, Text: ev.Message}}
	case ResetRequested:
		return NewState(), nil
	default:
		return s, nil
	}
}

func (m *Machine) check(s State, ev CheckRequested) (State, []Effect) {
	req, err := m.guard.Check(ev.Input, ev.Now)
	if err != nil {
		msg := reservation.RejectionMessage(err)
		s.Error = msg
		return s, []Effect{Notify{Kind: MessageError, Text: msg}}
	}

	next := NewState()
	next.Phase = PhaseLoading
	next.Request = &req
	return next, []Effect{FetchAvailability{Request: req}}
}

func (m *Machine) loaded(s State, ev AvailabilityLoaded) (State, []Effect) {
	if s.Phase != PhaseLoading {
		return s, nil
	}
	s.Phase = PhaseListing
	s.Tables = ev.Tables
	if s.Tables == nil {
		s.Tables = []table.Availability{}
	}
	s.Error = ""
	s.Notice = ""
	if table.CountAvailable(s.Tables) == 0 {
		s.Notice = NoTablesNotice
	}
	return s, nil
}

func (m *Machine) selectTable(s State, ev TableSelected) (State, []Effect) {
	switch s.Phase {
	case PhaseListing, PhaseSelected:
	default:
		return s, nil
	}

	t, ok := table.Find(s.Tables, ev.TableID)
	if !ok || !t.Available {
		s.Message = &Message{Kind: MessageError, Text: UnavailableSelected}
		return s, []Effect{Notify{Kind: MessageError, Text: UnavailableSelected}}
	}
	s.Selected = &t
	s.Message = nil
	s.Phase = PhaseSelected
	return s, nil
}

func (m *Machine) confirm(s State, ev ConfirmRequested) (State, []Effect) {
	if s.Phase == PhaseConfirmed || s.Phase == PhaseSubmitting {
		return s, nil
	}
	if s.Selected == nil || s.Request == nil {
		s.Message = &Message{Kind: MessageError, Text: NoSelectionMessage}
		return s, []Effect{Notify{Kind: MessageError, Text: NoSelectionMessage}}
	}

	sub := reservation.Submission{
		Customer:  ev.Customer.WithDefaults(m.guest),
		TableID:   s.Selected.ID,
		Date:      s.Request.Date,
		Time:      s.Request.Time,
		PartySize: s.Request.PartySize,
	}
	s.Phase = PhaseSubmitting
	s.Message = nil
	return s, []Effect{SubmitReservation{Submission: sub}}
}

func (m *Machine) confirmed(s State, ev ReservationConfirmed) (State, []Effect) {
	receipt := ev.Receipt
	text := receipt.Message
	if text == "" {
		text = DefaultSuccessText
	}
	resetAt := ev.At.Add(m.resetDelay)

	s.Phase = PhaseConfirmed
	s.Receipt = &receipt
	s.Message = &Message{Kind: MessageSuccess, Text: text}
	s.ResetAt = &resetAt
	return s, []Effect{
		Notify{Kind: MessageSuccess, Text: text},
		ScheduleReset{Delay: m.resetDelay, At: resetAt},
	}
}
