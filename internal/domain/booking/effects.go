package booking

import (
	"time"

	"mesa-booking/internal/domain/reservation"
)

// Effect is work the machine asks its owner to perform.
type Effect interface {
	effectName() string
}

type FetchAvailability struct {
	Request reservation.Request
}

type SubmitReservation struct {
	Submission reservation.Submission
}

type ScheduleReset struct {
	Delay time.Duration
	At    time.Time
}

type Notify struct {
	Kind MessageKind
	Text string
}

func (FetchAvailability) effectName() string { return "fetch_availability" }
func (SubmitReservation) effectName() string { return "submit_reservation" }
func (ScheduleReset) effectName() string     { return "schedule_reset" }
func (Notify) effectName() string            { return "notify" }

func EffectName(e Effect) string {
	return e.effectName()
}
