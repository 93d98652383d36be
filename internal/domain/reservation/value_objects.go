package reservation

import (
	"strings"

	"mesa-booking/internal/domain/table"
)

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// WithDefaults fills blank fields from the guest placeholder customer.
func (c Customer) WithDefaults(guest Customer) Customer {
	out := Customer{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
	}
	if out.Name == "" {
		out.Name = guest.Name
	}
	if out.Email == "" {
		out.Email = guest.Email
	}
	if out.Phone == "" {
		out.Phone = guest.Phone
	}
	return out
}

// Submission is what gets posted to the backend when a visitor confirms.
type Submission struct {
	Customer  Customer
	TableID   table.TableID
	Date      string
	Time      TimeOfDay
	PartySize int
}

// Receipt is the backend's confirmation of a created reservation.
type Receipt struct {
	ReservationID string    `json:"reservationId"`
	TableNumber   int       `json:"tableNumber"`
	Date          string    `json:"date"`
	Time          TimeOfDay `json:"time"`
	Message       string    `json:"message"`
}

// Booking is an existing reservation as listed by the backend.
type Booking struct {
	ReservationID string        `json:"reservationId"`
	TableID       table.TableID `json:"tableId"`
	TableNumber   int           `json:"tableNumber"`
	Customer      Customer      `json:"customer"`
	Date          string        `json:"date"`
	Time          TimeOfDay     `json:"time"`
	PartySize     int           `json:"partySize"`
	Status        string        `json:"status"`
}

func (b Booking) Slot() Slot {
	return Slot{TableID: b.TableID, Date: b.Date, Time: b.Time}
}
