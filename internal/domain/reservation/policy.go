package reservation

import (
	"time"
)

const DefaultServiceDuration = 90 * time.Minute

// Policy holds the booking rules shared by the overlap check, the filter and
// the pre-check guard.
type Policy struct {
	ServiceDuration time.Duration
	OpensAt         TimeOfDay
	LastStart       TimeOfDay
	Location        *time.Location
}

func DefaultPolicy() Policy {
	return Policy{
		ServiceDuration: DefaultServiceDuration,
		OpensAt:         NewTimeOfDay(8, 0),
		LastStart:       NewTimeOfDay(21, 0),
		Location:        time.Local,
	}
}

func (p Policy) WithinServiceHours(t TimeOfDay) bool {
	return t >= p.OpensAt && t <= p.LastStart
}

func (p Policy) Overlaps(a, b TimeOfDay) bool {
	return Overlap(a, b, p.ServiceDuration)
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}
