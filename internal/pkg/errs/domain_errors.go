package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Backend gateway errors
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrBackendRejected    = errors.New("backend rejected request")
	ErrBackendMalformed   = errors.New("backend returned malformed response")

	// Booking errors
	ErrInvalidBookingRequest = errors.New("invalid booking request")
	ErrTableNotSelectable    = errors.New("table not selectable")
	ErrNoTableSelected       = errors.New("no table selected")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionStore    = errors.New("session store failure")
)
