package request

import (
	"bytes"
	"encoding/json"

	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/domain/table"
)

// FormValue accepts a JSON string, number or null so that form fields reach
// the pre-check as typed.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = FormValue(n.String())
	}
	return nil
}

type CheckAvailabilityRequest struct {
	Date   FormValue `json:"date"`
	Time   FormValue `json:"time"`
	People FormValue `json:"people"`
}

func (r CheckAvailabilityRequest) ToInput() reservation.Input {
	return reservation.Input{
		Date:   string(r.Date),
		Time:   string(r.Time),
		People: string(r.People),
	}
}

type AvailabilityQuery struct {
	Date   string `form:"date"`
	Time   string `form:"time"`
	People string `form:"people"`
}

func (q AvailabilityQuery) ToInput() reservation.Input {
	return reservation.Input{Date: q.Date, Time: q.Time, People: q.People}
}

type SelectTableRequest struct {
	TableID table.TableID `json:"tableId"`
}

type ConfirmReservationRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

func (r ConfirmReservationRequest) ToCustomer() reservation.Customer {
	return reservation.Customer{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type ReservationsQuery struct {
	Email string `form:"email" binding:"required,email"`
}
