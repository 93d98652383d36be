package response

import (
	"time"

	widget "mesa-booking/internal/domain/booking"
	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/domain/table"
	"mesa-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type TableResponse struct {
	ID        table.TableID `json:"id"`
	Number    int           `json:"number"`
	Capacity  int           `json:"capacity"`
	Available bool          `json:"available"`
}

type AvailabilityResponse struct {
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	People         int             `json:"people"`
	Tables         []TableResponse `json:"tables"`
	AvailableCount int             `json:"availableCount"`
	Notice         string          `json:"notice,omitempty"`
}

type ReservationResponse struct {
	ID          string        `json:"id"`
	TableID     table.TableID `json:"tableId"`
	TableNumber int           `json:"tableNumber"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	People      int           `json:"people"`
	Status      string        `json:"status"`
}

type MessageResponse struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type ReceiptResponse struct {
	ReservationID string `json:"reservationId"`
	TableNumber   int    `json:"tableNumber"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

type BookingViewResponse struct {
	Phase    string           `json:"phase"`
	Date     string           `json:"date,omitempty"`
	Time     string           `json:"time,omitempty"`
	People   int              `json:"people,omitempty"`
	Tables   []TableResponse  `json:"tables"`
	Selected *TableResponse   `json:"selected,omitempty"`
	Error    string           `json:"error,omitempty"`
	Notice   string           `json:"notice,omitempty"`
	Message  *MessageResponse `json:"message,omitempty"`
	Receipt  *ReceiptResponse `json:"receipt,omitempty"`
	ResetAt  *time.Time       `json:"resetAt,omitempty"`
}

func FromAvailability(items []table.Availability) ([]TableResponse, error) {
	out := make([]TableResponse, 0, len(items))
	if len(items) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, &items); err != nil {
		return nil, err
	}
	return out, nil
}

func FromAvailabilityResult(res *queries.AvailabilityResult) (*AvailabilityResponse, error) {
	tables, err := FromAvailability(res.Tables)
	if err != nil {
		return nil, err
	}
	resp := &AvailabilityResponse{
		Date:           res.Request.Date,
		Time:           res.Request.Time.String(),
		People:         res.Request.PartySize,
		Tables:         tables,
		AvailableCount: res.AvailableCount,
	}
	if res.AvailableCount == 0 {
		resp.Notice = widget.NoTablesNotice
	}
	return resp, nil
}

func FromBookings(bookings []reservation.Booking) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ReservationResponse{
			ID:          b.ReservationID,
			TableID:     b.TableID,
			TableNumber: b.TableNumber,
			Name:        b.Customer.Name,
			Email:       b.Customer.Email,
			Phone:       b.Customer.Phone,
			Date:        b.Date,
			Time:        b.Time.String(),
			People:      b.PartySize,
			Status:      b.Status,
		})
	}
	return out
}

func FromBookingState(state widget.State) (*BookingViewResponse, error) {
	tables, err := FromAvailability(state.Tables)
	if err != nil {
		return nil, err
	}

	resp := &BookingViewResponse{
		Phase:   state.Phase.String(),
		Tables:  tables,
		Error:   state.Error,
		Notice:  state.Notice,
		ResetAt: state.ResetAt,
	}
	if state.Request != nil {
		resp.Date = state.Request.Date
		resp.Time = state.Request.Time.String()
		resp.People = state.Request.PartySize
	}
	if state.Selected != nil {
		var selected TableResponse
		if err := copier.Copy(&selected, state.Selected); err != nil {
			return nil, err
		}
		resp.Selected = &selected
	}
	if state.Message != nil {
		resp.Message = &MessageResponse{Kind: string(state.Message.Kind), Text: state.Message.Text}
	}
	if state.Receipt != nil {
		resp.Receipt = &ReceiptResponse{
			ReservationID: state.Receipt.ReservationID,
			TableNumber:   state.Receipt.TableNumber,
			Date:          state.Receipt.Date,
			Time:          state.Receipt.Time.String(),
		}
	}
	return resp, nil
}
