package booking

import (
	"time"

	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/domain/table"
)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseLoading    Phase = "loading"
	PhaseListing    Phase = "listing"
	PhaseSelected   Phase = "selected"
	PhaseSubmitting Phase = "submitting"
	PhaseConfirmed  Phase = "confirmed"
)

func (p Phase) String() string {
	return string(p)
}

type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

type Message struct {
	Kind MessageKind `json:"kind"`
	Text string      `json:"text"`
}

// State is everything the booking widget shows for one visitor. It is owned
// by a single controller and replaced wholesale on every event.
type State struct {
	Phase    Phase                `json:"phase"`
	Request  *reservation.Request `json:"request,omitempty"`
	Tables   []table.Availability `json:"tables"`
	Selected *table.Availability  `json:"selected,omitempty"`
	Receipt  *reservation.Receipt `json:"receipt,omitempty"`
	Error    string               `json:"error,omitempty"`
	Notice   string               `json:"notice,omitempty"`
	Message  *Message             `json:"message,omitempty"`
	ResetAt  *time.Time           `json:"resetAt,omitempty"`
}

func NewState() State {
	return State{
		Phase:  PhaseIdle,
		Tables: []table.Availability{},
	}
}

// ResetDue reports whether a scheduled reset has come due.
func (s State) ResetDue(now time.Time) bool {
	return s.ResetAt != nil && !now.Before(*s.ResetAt)
}
