package api

import (
	"net/http"

	"mesa-booking/internal/handler/httperr"
	"mesa-booking/internal/pkg/errs"
	"mesa-booking/internal/usecase/booking"
	"mesa-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// abortWithGatewayError maps a failed backend call to the response the
// browser sees. Rejections keep the backend's 4xx status and message.
func abortWithGatewayError(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, errs.ErrBackendUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, booking.MsgConnectionFailed, nil)
	case errs.Is(err, errs.ErrBackendRejected):
		status := shared.GatewayStatus(err)
		if !shared.IsClientStatus(status) {
			status = http.StatusBadGateway
		}
		msg := shared.GatewayMessage(err)
		if msg == "" {
			msg = fallback
		}
		httperr.AbortWithError(c, status, err, msg, nil)
	case errs.Is(err, errs.ErrBackendMalformed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, fallback, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
