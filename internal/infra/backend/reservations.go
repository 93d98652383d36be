package backend

import (
	"context"
	"log/slog"
	"net/url"

	"mesa-booking/internal/domain/reservation"
)

// ListReservations asks for the reservations at date and time. The backend
// may ignore the filter and return more than that.
func (c *Client) ListReservations(ctx context.Context, date string, at reservation.TimeOfDay) ([]reservation.Slot, error) {
	query := url.Values{}
	query.Set("fecha", date)
	query.Set("hora", at.String())

	var rows []reservaDTO
	if err := c.get(ctx, "/api/reservas", query, &rows); err != nil {
		return nil, err
	}

	slots := make([]reservation.Slot, 0, len(rows))
	for _, row := range rows {
		tod, err := reservation.ParseTimeOfDay(row.Hora)
		if err != nil {
			c.logger.Warn("Skipping reservation with unreadable time",
				slog.String("id", row.ID.String()),
				slog.String("hora", row.Hora))
			continue
		}
		slots = append(slots, reservation.Slot{
			TableID: row.MesaID,
			Date:    normalizeDate(row.Fecha),
			Time:    tod,
		})
	}
	return slots, nil
}

func (c *Client) ListReservationsByEmail(ctx context.Context, email string) ([]reservation.Booking, error) {
	query := url.Values{}
	query.Set("email", email)

	var rows []reservaDTO
	if err := c.get(ctx, "/api/reservas", query, &rows); err != nil {
		return nil, err
	}

	bookings := make([]reservation.Booking, 0, len(rows))
	for _, row := range rows {
		tod, err := reservation.ParseTimeOfDay(row.Hora)
		if err != nil {
			c.logger.Warn("Skipping reservation with unreadable time",
				slog.String("id", row.ID.String()),
				slog.String("hora", row.Hora))
			continue
		}
		bookings = append(bookings, reservation.Booking{
			ReservationID: row.ID.String(),
			TableID:       row.MesaID,
			TableNumber:   int(row.Numero),
			Customer: reservation.Customer{
				Name:  row.Nombre,
				Email: row.Email,
				Phone: row.Telefono,
			},
			Date:      normalizeDate(row.Fecha),
			Time:      tod,
			PartySize: int(row.Personas),
			Status:    row.Estado,
		})
	}
	return bookings, nil
}

func (c *Client) CreateReservation(ctx context.Context, sub reservation.Submission) (*reservation.Receipt, error) {
	var resp createReservaResponse
	if err := c.post(ctx, "/api/reservas", toSubmissionDTO(sub), &resp); err != nil {
		return nil, err
	}

	receipt := &reservation.Receipt{
		ReservationID: resp.ID.String(),
		TableNumber:   int(resp.Numero),
		Date:          sub.Date,
		Time:          sub.Time,
		Message:       resp.Message,
	}
	if resp.Fecha != "" {
		receipt.Date = normalizeDate(resp.Fecha)
	}
	if tod, err := reservation.ParseTimeOfDay(resp.Hora); err == nil {
		receipt.Time = tod
	}
	return receipt, nil
}
