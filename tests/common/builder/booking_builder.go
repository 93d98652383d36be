//go:build unit || e2e

package builder

import (
	"strconv"
	"time"

	widget "mesa-booking/internal/domain/booking"
	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/domain/table"
	reqdto "mesa-booking/internal/handler/dto/request"
)

type BookingBuilder struct {
	Date   string
	Time   string
	People int
	Tables []table.Availability
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Date:   time.Now().AddDate(0, 0, 7).Format(reservation.DateLayout),
		Time:   "19:00",
		People: 2,
		Tables: []table.Availability{
			{ID: table.NewTableID("1"), Number: 1, Capacity: 2, Available: true},
			{ID: table.NewTableID("2"), Number: 2, Capacity: 4, Available: false},
		},
	}
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTime(tod string) *BookingBuilder {
	b.Time = tod
	return b
}

func (b *BookingBuilder) WithPeople(people int) *BookingBuilder {
	b.People = people
	return b
}

func (b *BookingBuilder) BuildCheckDTO() map[string]any {
	return map[string]any{
		"date":   b.Date,
		"time":   b.Time,
		"people": b.People,
	}
}

func (b *BookingBuilder) BuildQuery() string {
	return "date=" + b.Date + "&time=" + b.Time + "&people=" + strconv.Itoa(b.People)
}

func (b *BookingBuilder) BuildRequest() reservation.Request {
	return reservation.Request{
		Date:      b.Date,
		Time:      reservation.MustParseTimeOfDay(b.Time),
		PartySize: b.People,
	}
}

func (b *BookingBuilder) BuildConfirmDTO() reqdto.ConfirmReservationRequest {
	return reqdto.ConfirmReservationRequest{
		Name:  "Ana García",
		Email: "ana@example.com",
		Phone: "600123123",
	}
}

// BuildListingState is a widget showing the builder's tables.
func (b *BookingBuilder) BuildListingState() widget.State {
	req := b.BuildRequest()
	state := widget.NewState()
	state.Phase = widget.PhaseListing
	state.Request = &req
	state.Tables = append([]table.Availability(nil), b.Tables...)
	return state
}

func (b *BookingBuilder) BuildSelectedState() widget.State {
	state := b.BuildListingState()
	selected := state.Tables[0]
	state.Selected = &selected
	state.Phase = widget.PhaseSelected
	return state
}
