//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"mesa-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guardCase struct {
	name  string
	input reservation.Input
	errIs error
}

func TestGuard_Check(t *testing.T) {
	policy := reservation.DefaultPolicy()
	policy.Location = time.UTC
	guard := reservation.NewGuard(policy)
	now := time.Date(2026, 5, 1, 12, 30, 0, 0, time.UTC)

	valid := reservation.Input{Date: "2026-05-02", Time: "19:30", People: "4"}

	t.Run("accepts a complete future request inside service hours", func(t *testing.T) {
		got, err := guard.Check(valid, now)
		require.NoError(t, err)
		assert.Equal(t, reservation.Request{
			Date:      "2026-05-02",
			Time:      reservation.NewTimeOfDay(19, 30),
			PartySize: 4,
		}, got)
	})

	runGuardCases(t, guard, now, []guardCase{
		{name: "missing date", input: reservation.Input{Time: "19:30", People: "4"}, errIs: reservation.ErrIncompleteRequest},
		{name: "missing time", input: reservation.Input{Date: "2026-05-02", People: "4"}, errIs: reservation.ErrIncompleteRequest},
		{name: "missing people", input: reservation.Input{Date: "2026-05-02", Time: "19:30"}, errIs: reservation.ErrIncompleteRequest},
		{name: "zero people", input: reservation.Input{Date: "2026-05-02", Time: "19:30", People: "0"}, errIs: reservation.ErrIncompleteRequest},
		{name: "negative people", input: reservation.Input{Date: "2026-05-02", Time: "19:30", People: "-2"}, errIs: reservation.ErrIncompleteRequest},
		{name: "non-integer people", input: reservation.Input{Date: "2026-05-02", Time: "19:30", People: "two"}, errIs: reservation.ErrIncompleteRequest},
		{name: "malformed date", input: reservation.Input{Date: "02/05/2026", Time: "19:30", People: "2"}, errIs: reservation.ErrIncompleteRequest},
		{name: "malformed time", input: reservation.Input{Date: "2026-05-02", Time: "7pm", People: "2"}, errIs: reservation.ErrIncompleteRequest},
		{name: "earlier today", input: reservation.Input{Date: "2026-05-01", Time: "12:29", People: "2"}, errIs: reservation.ErrPastDateTime},
		{name: "yesterday", input: reservation.Input{Date: "2026-04-30", Time: "19:00", People: "2"}, errIs: reservation.ErrPastDateTime},
		{name: "right now is not in the past", input: reservation.Input{Date: "2026-05-01", Time: "12:30", People: "2"}},
		{name: "before opening", input: reservation.Input{Date: "2026-05-02", Time: "07:59", People: "2"}, errIs: reservation.ErrOutsideServiceHours},
		{name: "opening time", input: reservation.Input{Date: "2026-05-02", Time: "08:00", People: "2"}},
		{name: "last start exactly", input: reservation.Input{Date: "2026-05-02", Time: "21:00", People: "2"}},
		{name: "one minute after last start", input: reservation.Input{Date: "2026-05-02", Time: "21:01", People: "2"}, errIs: reservation.ErrOutsideServiceHours},
		{name: "late night", input: reservation.Input{Date: "2026-05-02", Time: "23:15", People: "2"}, errIs: reservation.ErrOutsideServiceHours},
	})

	t.Run("rejection carries a user-facing message", func(t *testing.T) {
		_, err := guard.Check(reservation.Input{Date: "2026-05-02", Time: "22:00", People: "2"}, now)
		require.Error(t, err)
		assert.Equal(t, "Reservation time must be between 08:00 and 21:00.", reservation.RejectionMessage(err))
	})
}

func TestGuard_UsesPolicyLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	policy := reservation.DefaultPolicy()
	policy.Location = loc
	guard := reservation.NewGuard(policy)

	// 14:00 UTC is 09:00 at UTC-5, so 09:30 local is still ahead.
	now := time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC)
	_, err := guard.Check(reservation.Input{Date: "2026-05-01", Time: "09:30", People: "2"}, now)
	require.NoError(t, err)

	_, err = guard.Check(reservation.Input{Date: "2026-05-01", Time: "08:30", People: "2"}, now)
	require.ErrorIs(t, err, reservation.ErrPastDateTime)
}

func runGuardCases(t *testing.T, guard *reservation.Guard, now time.Time, cases []guardCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := guard.Check(c.input, now)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.NotEmpty(t, reservation.RejectionMessage(err))
		})
	}
}
