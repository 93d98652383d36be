package backend

import (
	"bytes"
	"encoding/json"
	"strconv"

	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/domain/table"
)

// wireInt accepts a JSON number or a numeric string.
type wireInt int

func (n *wireInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*n = wireInt(v)
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = wireInt(v)
	return nil
}

type mesaDTO struct {
	ID        table.TableID `json:"id_Mesa"`
	Numero    wireInt       `json:"numero_Mesa"`
	Capacidad wireInt       `json:"capacidad_Mesa"`
	Estado    string        `json:"estado_Mesa"`
}

type reservaDTO struct {
	ID       table.TableID `json:"id_Reserva"`
	MesaID   table.TableID `json:"id_Mesa"`
	Nombre   string        `json:"nombre_Cliente"`
	Email    string        `json:"email_Cliente"`
	Telefono string        `json:"telefono_Cliente"`
	Numero   wireInt       `json:"numero_Mesa"`
	Fecha    string        `json:"fecha_Reserva"`
	Hora     string        `json:"hora_Reserva"`
	Personas wireInt       `json:"num_Personas"`
	Estado   string        `json:"estado_Reserva"`
}

type createReservaRequest struct {
	NombreCliente   string        `json:"nombre_cliente"`
	EmailCliente    string        `json:"email_cliente"`
	TelefonoCliente string        `json:"telefono_cliente"`
	MesaID          table.TableID `json:"id_Mesa"`
	Fecha           string        `json:"fecha_Reserva"`
	Hora            string        `json:"hora_Reserva"`
	Personas        int           `json:"num_Personas"`
}

type createReservaResponse struct {
	Message string        `json:"message"`
	ID      table.TableID `json:"id_Reserva"`
	Numero  wireInt       `json:"numero_Mesa"`
	Fecha   string        `json:"fecha_Reserva"`
	Hora    string        `json:"hora_Reserva"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type identityRequest struct {
	Token string `json:"token"`
}

type tokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// normalizeDate keeps the calendar part of an ISO date or timestamp.
func normalizeDate(s string) string {
	if len(s) >= len(reservation.DateLayout) {
		return s[:len(reservation.DateLayout)]
	}
	return s
}

func toSubmissionDTO(sub reservation.Submission) createReservaRequest {
	return createReservaRequest{
		NombreCliente:   sub.Customer.Name,
		EmailCliente:    sub.Customer.Email,
		TelefonoCliente: sub.Customer.Phone,
		MesaID:          sub.TableID,
		Fecha:           sub.Date,
		Hora:            sub.Time.String(),
		Personas:        sub.PartySize,
	}
}
