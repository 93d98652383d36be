package reservation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrIncompleteRequest   = errors.New("incomplete booking request")
	ErrPastDateTime        = errors.New("requested time is in the past")
	ErrOutsideServiceHours = errors.New("requested time is outside service hours")
)

// RejectionError carries the message shown next to the booking form.
type RejectionError struct {
	Reason  error
	Message string
}

func (e *RejectionError) Error() string { return e.Message }

func (e *RejectionError) Unwrap() error { return e.Reason }

// Input is the raw form as typed by the visitor.
type Input struct {
	Date   string
	Time   string
	People string
}

// Request is an Input that passed the pre-check.
type Request struct {
	Date      string    `json:"date"`
	Time      TimeOfDay `json:"time"`
	PartySize int       `json:"partySize"`
}

// Guard is the advisory client-side pre-check. The backend re-validates
// everything it accepts.
type Guard struct {
	policy Policy
}

func NewGuard(policy Policy) *Guard {
	return &Guard{policy: policy}
}

func (g *Guard) Policy() Policy {
	return g.policy
}

func (g *Guard) Check(in Input, now time.Time) (Request, error) {
	dateStr := strings.TrimSpace(in.Date)
	timeStr := strings.TrimSpace(in.Time)
	peopleStr := strings.TrimSpace(in.People)

	if dateStr == "" || timeStr == "" || peopleStr == "" {
		return Request{}, g.incomplete()
	}

	people, err := strconv.Atoi(peopleStr)
	if err != nil || people < 1 {
		return Request{}, g.incomplete()
	}

	date, err := time.ParseInLocation(DateLayout, dateStr, g.policy.location())
	if err != nil {
		return Request{}, g.incomplete()
	}

	tod, err := ParseTimeOfDay(timeStr)
	if err != nil {
		return Request{}, g.incomplete()
	}

	if tod.On(date).Before(now) {
		return Request{}, &RejectionError{
			Reason:  ErrPastDateTime,
			Message: "Reservations cannot be made for past dates or times.",
		}
	}

	if !g.policy.WithinServiceHours(tod) {
		return Request{}, &RejectionError{
			Reason: ErrOutsideServiceHours,
			Message: fmt.Sprintf("Reservation time must be between %s and %s.",
				g.policy.OpensAt, g.policy.LastStart),
		}
	}

	return Request{
		Date:      date.Format(DateLayout),
		Time:      tod,
		PartySize: people,
	}, nil
}

func (g *Guard) incomplete() error {
	return &RejectionError{
		Reason:  ErrIncompleteRequest,
		Message: "Please fill in all fields correctly.",
	}
}

// RejectionMessage returns the user-facing text of a guard error, or "" when
// err did not come from the guard.
func RejectionMessage(err error) string {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Message
	}
	return ""
}
