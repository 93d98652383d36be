package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, etc.)
// - default: Values common across all environments (booking rules, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Backend   BackendConfig
	Booking   BookingConfig
	Session   SessionConfig
	Cookie    CookieConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// BackendConfig points at the external restaurant REST API.
type BackendConfig struct {
	BaseURL    string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	AuthPrefix string        `envconfig:"BACKEND_AUTH_PREFIX" default:""`
	Timeout    time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
}

// BookingConfig is the single source of the booking rules that the backend
// enforces as well.
type BookingConfig struct {
	ServiceDuration time.Duration `envconfig:"BOOKING_SERVICE_DURATION" default:"90m"`
	OpensAt         string        `envconfig:"BOOKING_OPENS_AT" default:"08:00"`
	LastStart       string        `envconfig:"BOOKING_LAST_START" default:"21:00"`
	TimeZone        string        `envconfig:"BOOKING_TIMEZONE" default:"Local"`
	ResetDelay      time.Duration `envconfig:"BOOKING_RESET_DELAY" default:"2s"`
	GuestName       string        `envconfig:"BOOKING_GUEST_NAME" default:"Invitado"`
	GuestEmail      string        `envconfig:"BOOKING_GUEST_EMAIL" default:"invitado@ejemplo.com"`
	GuestPhone      string        `envconfig:"BOOKING_GUEST_PHONE" default:"N/A"`
}

type SessionConfig struct {
	Store         string        `envconfig:"SESSION_STORE" default:"memory"`
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
}

type CookieConfig struct {
	Domain   string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool          `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	TokenTTL time.Duration `envconfig:"TOKEN_COOKIE_TTL" default:"24h"`
}

type RateLimitConfig struct {
	RequestsPerMinute int           `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
	Burst             int           `envconfig:"RATE_LIMIT_BURST" default:"20"`
	IdleTTL           time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"10m"`
}

func (c BookingConfig) Location() (*time.Location, error) {
	switch c.TimeZone {
	case "", "Local":
		return time.Local, nil
	default:
		loc, err := time.LoadLocation(c.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", c.TimeZone, err)
		}
		return loc, nil
	}
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Backend: BackendConfig{
			BaseURL: "http://127.0.0.1:5000",
			Timeout: 5 * time.Second,
		},
		Booking: BookingConfig{
			ServiceDuration: 90 * time.Minute,
			OpensAt:         "08:00",
			LastStart:       "21:00",
			TimeZone:        "UTC",
			ResetDelay:      2 * time.Second,
			GuestName:       "Invitado",
			GuestEmail:      "invitado@ejemplo.com",
			GuestPhone:      "N/A",
		},
		Session: SessionConfig{
			Store: "memory",
			TTL:   30 * time.Minute,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
			TokenTTL: 24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 6000,
			Burst:             1000,
			IdleTTL:           10 * time.Minute,
		},
	}
}
