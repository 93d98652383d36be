package shared

import (
	"net/http"

	"mesa-booking/internal/infra/backend"
	"mesa-booking/internal/pkg/errs"
)

// MarkGatewayErr wraps a backend client error and marks it with the sentinel
// matching its kind.
func MarkGatewayErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	wrapped := errs.Wrap(err, msg)
	switch {
	case backend.IsKind(err, backend.KindUnavailable):
		return errs.Mark(wrapped, errs.ErrBackendUnavailable)
	case backend.IsKind(err, backend.KindRejected):
		return errs.Mark(wrapped, errs.ErrBackendRejected)
	default:
		return errs.Mark(wrapped, errs.ErrBackendMalformed)
	}
}

// GatewayMessage is the message the backend attached to a rejected call.
func GatewayMessage(err error) string {
	if e, ok := backend.AsError(err); ok {
		return e.Message
	}
	return ""
}

// GatewayStatus is the backend's HTTP status for a rejected call, 0 otherwise.
func GatewayStatus(err error) int {
	if e, ok := backend.AsError(err); ok && e.Kind == backend.KindRejected {
		return e.Status
	}
	return 0
}

// IsClientStatus reports a 4xx status.
func IsClientStatus(status int) bool {
	return status >= http.StatusBadRequest && status < http.StatusInternalServerError
}
