package api

import (
	"net/http"

	"mesa-booking/internal/domain/reservation"
	reqdto "mesa-booking/internal/handler/dto/request"
	resdto "mesa-booking/internal/handler/dto/response"
	"mesa-booking/internal/handler/httperr"
	"mesa-booking/internal/pkg/errs"
	"mesa-booking/internal/usecase/booking"
	"mesa-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
	reservationQueries  queries.ReservationQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries, reservationQueries queries.ReservationQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Check table availability
// @Description Lists the tables that seat the party, flagging those already booked around the requested time
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Time (HH:MM)"
// @Param people query int true "Party size"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.availabilityQueries.Search(c.Request.Context(), query.ToInput())
	if err != nil {
		if errs.Is(err, errs.ErrInvalidBookingRequest) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, reservation.RejectionMessage(err), nil)
			return
		}
		abortWithGatewayError(c, err, booking.MsgTablesLoadFailed)
		return
	}

	resp, err := resdto.FromAvailabilityResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List a customer's reservations
// @Tags availability
// @Produce json
// @Param email query string true "Customer email"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/reservations [get]
func (h *AvailabilityHandler) ListReservations(c *gin.Context) {
	var query reqdto.ReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "A valid email is required", nil)
		return
	}

	bookings, err := h.reservationQueries.ListByEmail(c.Request.Context(), query.Email)
	if err != nil {
		if errs.Is(err, queries.ErrEmailRequired) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "A valid email is required", nil)
			return
		}
		abortWithGatewayError(c, err, "Failed to load reservations.")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}
