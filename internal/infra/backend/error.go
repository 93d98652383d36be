package backend

import (
	"errors"
	"log/slog"

	"mesa-booking/internal/pkg/errs"
)

type ErrorKind string

// Gateway error kinds
const (
	KindUnavailable ErrorKind = "UNAVAILABLE"
	KindRejected    ErrorKind = "REJECTED"
	KindMalformed   ErrorKind = "MALFORMED"
)

// Error is returned by every Client call that did not succeed.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string // backend supplied message, only for KindRejected
	msg     string
	err     error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

func wrapErr(logger *slog.Logger, kind ErrorKind, status int, message, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if status != 0 {
		logArgs = append(logArgs, slog.Int("status", status))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("cause", err.Error()))
	}

	logger.Warn("Backend error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, Status: status, Message: message, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// AsError extracts the gateway error from err's chain.
func AsError(err error) (Error, bool) {
	var e Error
	if errors.As(err, &e) {
		return e, true
	}
	return Error{}, false
}
