//go:build unit

package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mesa-booking/internal/domain/auth"
	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/domain/table"
	"mesa-booking/internal/infra/backend"
	"mesa-booking/internal/pkg/authctx"
	"mesa-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	server *httptest.Server
	client *backend.Client
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.client = backend.NewClient(config.BackendConfig{
		BaseURL:    s.server.URL,
		AuthPrefix: "/auth",
		Timeout:    2 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (s *ClientTestSuite) TestListTables() {
	s.Run("decodes numeric and string fields and skips invalid rows", func() {
		s.mux.HandleFunc("/api/mesas", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `[
				{"id_Mesa": 1, "numero_Mesa": 1, "capacidad_Mesa": 4, "estado_Mesa": "disponible"},
				{"id_Mesa": "b-2", "numero_Mesa": "2", "capacidad_Mesa": "2"},
				{"id_Mesa": 3, "numero_Mesa": 3, "capacidad_Mesa": 0}
			]`)
		})

		got, err := s.client.ListTables(context.Background())

		s.Require().NoError(err)
		s.Equal([]table.Table{
			{ID: table.NumericTableID(1), Number: 1, Capacity: 4},
			{ID: table.NewTableID("b-2"), Number: 2, Capacity: 2},
		}, got)
	})
}

func (s *ClientTestSuite) TestListReservations() {
	s.mux.HandleFunc("/api/reservas", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("2026-05-02", r.URL.Query().Get("fecha"))
		s.Equal("19:00", r.URL.Query().Get("hora"))
		writeJSON(w, http.StatusOK, `[
			{"id_Reserva": 10, "id_Mesa": 1, "fecha_Reserva": "2026-05-02", "hora_Reserva": "18:00"},
			{"id_Reserva": 11, "id_Mesa": 2, "fecha_Reserva": "2026-05-03T00:00:00Z", "hora_Reserva": "19:30:00"},
			{"id_Reserva": 12, "id_Mesa": 2, "fecha_Reserva": "2026-05-02", "hora_Reserva": "late"}
		]`)
	})

	got, err := s.client.ListReservations(context.Background(), "2026-05-02", reservation.NewTimeOfDay(19, 0))

	s.Require().NoError(err)
	s.Equal([]reservation.Slot{
		{TableID: table.NumericTableID(1), Date: "2026-05-02", Time: reservation.NewTimeOfDay(18, 0)},
		{TableID: table.NumericTableID(2), Date: "2026-05-03", Time: reservation.NewTimeOfDay(19, 30)},
	}, got)
}

func (s *ClientTestSuite) TestListReservationsByEmail() {
	s.mux.HandleFunc("/api/reservas", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("ana@example.com", r.URL.Query().Get("email"))
		writeJSON(w, http.StatusOK, `[{
			"id_Reserva": 7, "id_Mesa": 3, "numero_Mesa": 5,
			"nombre_Cliente": "Ana", "email_Cliente": "ana@example.com", "telefono_Cliente": "600",
			"fecha_Reserva": "2026-05-02", "hora_Reserva": "20:00",
			"num_Personas": 2, "estado_Reserva": "confirmada"
		}]`)
	})

	got, err := s.client.ListReservationsByEmail(context.Background(), "ana@example.com")

	s.Require().NoError(err)
	s.Equal([]reservation.Booking{{
		ReservationID: "7",
		TableID:       table.NumericTableID(3),
		TableNumber:   5,
		Customer:      reservation.Customer{Name: "Ana", Email: "ana@example.com", Phone: "600"},
		Date:          "2026-05-02",
		Time:          reservation.NewTimeOfDay(20, 0),
		PartySize:     2,
		Status:        "confirmada",
	}}, got)
}

func (s *ClientTestSuite) TestCreateReservation() {
	s.Run("posts the backend body with the bearer token", func() {
		s.mux.HandleFunc("/api/reservas", func(w http.ResponseWriter, r *http.Request) {
			s.Equal(http.MethodPost, r.Method)
			s.Equal("Bearer tkn", r.Header.Get("Authorization"))

			var body map[string]any
			s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
			s.Equal(map[string]any{
				"nombre_cliente":   "Invitado",
				"email_cliente":    "invitado@ejemplo.com",
				"telefono_cliente": "N/A",
				"id_Mesa":          float64(4),
				"fecha_Reserva":    "2026-05-02",
				"hora_Reserva":     "19:00",
				"num_Personas":     float64(2),
			}, body)

			writeJSON(w, http.StatusCreated, `{"message": "Reserva creada con éxito", "id_Reserva": 99, "numero_Mesa": 4, "fecha_Reserva": "2026-05-02", "hora_Reserva": "19:00"}`)
		})

		ctx := authctx.WithToken(context.Background(), "tkn")
		got, err := s.client.CreateReservation(ctx, reservation.Submission{
			Customer:  reservation.Customer{Name: "Invitado", Email: "invitado@ejemplo.com", Phone: "N/A"},
			TableID:   table.NumericTableID(4),
			Date:      "2026-05-02",
			Time:      reservation.NewTimeOfDay(19, 0),
			PartySize: 2,
		})

		s.Require().NoError(err)
		s.Equal(&reservation.Receipt{
			ReservationID: "99",
			TableNumber:   4,
			Date:          "2026-05-02",
			Time:          reservation.NewTimeOfDay(19, 0),
			Message:       "Reserva creada con éxito",
		}, got)
	})
}

func (s *ClientTestSuite) TestErrors() {
	s.Run("non-2xx is rejected with the backend message", func() {
		s.mux.HandleFunc("/api/reservas", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, `{"message": "La mesa ya está reservada para esa fecha y hora"}`)
		})

		_, err := s.client.CreateReservation(context.Background(), reservation.Submission{TableID: table.NewTableID("1")})

		s.Require().Error(err)
		s.True(backend.IsKind(err, backend.KindRejected))
		gwErr, ok := backend.AsError(err)
		s.Require().True(ok)
		s.Equal(http.StatusBadRequest, gwErr.Status)
		s.Equal("La mesa ya está reservada para esa fecha y hora", gwErr.Message)
	})

	s.Run("undecodable body is malformed", func() {
		s.mux.HandleFunc("/api/mesas", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `<html>`)
		})

		_, err := s.client.ListTables(context.Background())

		s.True(backend.IsKind(err, backend.KindMalformed))
	})
}

func (s *ClientTestSuite) TestAuth() {
	s.Run("login returns the token", func() {
		s.mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
			s.Equal(map[string]string{"email": "ana@example.com", "password": "pw"}, body)
			writeJSON(w, http.StatusOK, `{"token": "jwt-token"}`)
		})

		creds, err := auth.NewCredentials("ana@example.com", "pw")
		s.Require().NoError(err)

		got, err := s.client.Login(context.Background(), creds)

		s.Require().NoError(err)
		s.Equal(auth.Session{Token: "jwt-token"}, got)
	})

	s.Run("google login without token is malformed", func() {
		s.mux.HandleFunc("/auth/google-login", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{}`)
		})

		_, err := s.client.GoogleLogin(context.Background(), auth.IdentityToken("id-token"))

		s.True(backend.IsKind(err, backend.KindMalformed))
	})

	s.Run("register forwards the name", func() {
		s.mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
			s.Equal("Ana", body["nombre"])
			writeJSON(w, http.StatusCreated, `{"message": "Usuario registrado"}`)
		})

		reg, err := auth.NewRegistration("Ana", "ana@example.com", "pw")
		s.Require().NoError(err)

		msg, err := s.client.Register(context.Background(), reg)

		s.Require().NoError(err)
		s.Equal("Usuario registrado", msg)
	})
}

func TestClient_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := backend.NewClient(config.BackendConfig{BaseURL: url, Timeout: time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.ListTables(context.Background())

	require.Error(t, err)
	assert.True(t, backend.IsKind(err, backend.KindUnavailable))
}
