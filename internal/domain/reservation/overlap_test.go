//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"mesa-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

const serviceDuration = 90 * time.Minute

func TestOverlap(t *testing.T) {
	cases := []struct {
		name string
		a, b reservation.TimeOfDay
		want bool
	}{
		{name: "identical times overlap", a: 600, b: 600, want: true},
		{name: "exactly one duration later does not overlap", a: 600, b: 690, want: false},
		{name: "one minute inside the upper boundary overlaps", a: 600, b: 689, want: true},
		{name: "booking ending one minute after start overlaps", a: 600, b: 511, want: true},
		{name: "booking ending one minute before start does not overlap", a: 600, b: 509, want: false},
		{name: "booking ending exactly at start does not overlap", a: 600, b: 510, want: false},
		{name: "far apart", a: 480, b: 1260, want: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, reservation.Overlap(c.a, c.b, serviceDuration))
		})
	}
}

func TestOverlap_Symmetric(t *testing.T) {
	for a := reservation.TimeOfDay(0); a < 1440; a += 7 {
		for b := reservation.TimeOfDay(0); b < 1440; b += 11 {
			if reservation.Overlap(a, b, serviceDuration) != reservation.Overlap(b, a, serviceDuration) {
				t.Fatalf("overlap(%d,%d) is not symmetric", a, b)
			}
		}
	}
}

func TestOverlap_NoRangeValidation(t *testing.T) {
	assert.True(t, reservation.Overlap(-30, 0, serviceDuration))
	assert.True(t, reservation.Overlap(1500, 1450, serviceDuration))
}

func TestPolicy_Overlaps_UsesConfiguredDuration(t *testing.T) {
	p := reservation.DefaultPolicy()
	p.ServiceDuration = 60 * time.Minute

	assert.False(t, p.Overlaps(600, 660))
	assert.True(t, p.Overlaps(600, 659))
}
