//go:build unit || e2e

// Package backendtest runs an in-process stand-in for the restaurant REST API.
package backendtest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"mesa-booking/tests/common/authtest"

	"github.com/gin-gonic/gin"
)

type Mesa struct {
	ID        int    `json:"id_Mesa"`
	Numero    int    `json:"numero_Mesa"`
	Capacidad int    `json:"capacidad_Mesa"`
	Estado    string `json:"estado_Mesa"`
}

type Reserva struct {
	ID       int    `json:"id_Reserva"`
	MesaID   int    `json:"id_Mesa"`
	Nombre   string `json:"nombre_Cliente"`
	Email    string `json:"email_Cliente"`
	Telefono string `json:"telefono_Cliente"`
	Numero   int    `json:"numero_Mesa"`
	Fecha    string `json:"fecha_Reserva"`
	Hora     string `json:"hora_Reserva"`
	Personas int    `json:"num_Personas"`
	Estado   string `json:"estado_Reserva"`
}

type createReserva struct {
	Nombre   string `json:"nombre_cliente"`
	Email    string `json:"email_cliente"`
	Telefono string `json:"telefono_cliente"`
	MesaID   int    `json:"id_Mesa"`
	Fecha    string `json:"fecha_Reserva"`
	Hora     string `json:"hora_Reserva"`
	Personas int    `json:"num_Personas"`
}

type credentials struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Backend is the fake restaurant API. Its data can be changed while the
// server runs.
type Backend struct {
	Server *httptest.Server

	t        *testing.T
	mu       sync.Mutex
	mesas    []Mesa
	reservas []Reserva
	users    map[string]string
	nextID   int
	lastAuth string
}

func DefaultMesas() []Mesa {
	return []Mesa{
		{ID: 1, Numero: 1, Capacidad: 2, Estado: "Disponible"},
		{ID: 2, Numero: 2, Capacidad: 4, Estado: "Disponible"},
		{ID: 3, Numero: 3, Capacidad: 6, Estado: "Disponible"},
	}
}

// Start serves the fake API until the test ends.
func Start(t *testing.T, mesas []Mesa) *Backend {
	t.Helper()

	b := &Backend{
		t:      t,
		mesas:  mesas,
		users:  map[string]string{},
		nextID: 1,
	}

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		b.mu.Lock()
		b.lastAuth = c.GetHeader("Authorization")
		b.mu.Unlock()
		c.Next()
	})
	engine.GET("/api/mesas", b.listMesas)
	engine.GET("/api/reservas", b.listReservas)
	engine.POST("/api/reservas", b.createReserva)
	engine.POST("/login", b.login)
	engine.POST("/register", b.register)
	engine.POST("/google-login", b.googleLogin)

	b.Server = httptest.NewServer(engine)
	t.Cleanup(b.Server.Close)
	return b
}

func (b *Backend) URL() string {
	return b.Server.URL
}

// AddUser registers credentials accepted by /login.
func (b *Backend) AddUser(email, password string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users[email] = password
}

// Book stores an existing reservation for the table with the given id.
func (b *Backend) Book(mesaID int, fecha, hora string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reservas = append(b.reservas, b.newReserva(createReserva{
		Nombre:   "Invitado",
		Email:    "invitado@ejemplo.com",
		Telefono: "N/A",
		MesaID:   mesaID,
		Fecha:    fecha,
		Hora:     hora,
		Personas: 2,
	}))
}

func (b *Backend) Reservas() []Reserva {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Reserva(nil), b.reservas...)
}

// LastAuthorization is the Authorization header of the most recent call.
func (b *Backend) LastAuthorization() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastAuth
}

func (b *Backend) listMesas(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c.JSON(http.StatusOK, b.mesas)
}

func (b *Backend) listReservas(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	email := c.Query("email")
	fecha := c.Query("fecha")
	out := make([]Reserva, 0, len(b.reservas))
	for _, r := range b.reservas {
		if email != "" && r.Email != email {
			continue
		}
		if fecha != "" && r.Fecha != fecha {
			continue
		}
		out = append(out, r)
	}
	c.JSON(http.StatusOK, out)
}

func (b *Backend) createReserva(c *gin.Context) {
	var req createReserva
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos inválidos"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.mesa(req.MesaID); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mesa no encontrada"})
		return
	}
	for _, r := range b.reservas {
		if r.MesaID == req.MesaID && r.Fecha == req.Fecha && r.Hora == req.Hora {
			c.JSON(http.StatusBadRequest, gin.H{"message": "La mesa ya está reservada en ese horario"})
			return
		}
	}

	r := b.newReserva(req)
	b.reservas = append(b.reservas, r)
	c.JSON(http.StatusCreated, gin.H{
		"message":       "Reserva creada con éxito",
		"id_Reserva":    r.ID,
		"numero_Mesa":   r.Numero,
		"fecha_Reserva": r.Fecha,
		"hora_Reserva":  r.Hora,
	})
}

func (b *Backend) login(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos inválidos"})
		return
	}

	b.mu.Lock()
	password, ok := b.users[req.Email]
	b.mu.Unlock()
	if !ok || password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciales inválidas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": authtest.IssueToken(b.t, req.Email, time.Hour)})
}

func (b *Backend) register(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos inválidos"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.users[req.Email]; exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "El usuario ya existe"})
		return
	}
	b.users[req.Email] = req.Password
	c.JSON(http.StatusCreated, gin.H{"message": "Usuario registrado con éxito"})
}

func (b *Backend) googleLogin(c *gin.Context) {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token requerido"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": authtest.IssueToken(b.t, "google-"+req.Token, time.Hour)})
}

func (b *Backend) mesa(id int) (Mesa, bool) {
	for _, m := range b.mesas {
		if m.ID == id {
			return m, true
		}
	}
	return Mesa{}, false
}

// newReserva must be called with mu held.
func (b *Backend) newReserva(req createReserva) Reserva {
	m, _ := b.mesa(req.MesaID)
	r := Reserva{
		ID:       b.nextID,
		MesaID:   req.MesaID,
		Nombre:   req.Nombre,
		Email:    req.Email,
		Telefono: req.Telefono,
		Numero:   m.Numero,
		Fecha:    req.Fecha,
		Hora:     req.Hora,
		Personas: req.Personas,
		Estado:   "Confirmada",
	}
	b.nextID++
	return r
}

// ReservaID formats a reservation id the way the BFF reports it.
func ReservaID(id int) string {
	return strconv.Itoa(id)
}
