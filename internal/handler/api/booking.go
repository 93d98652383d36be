package api

import (
	"errors"
	"io"
	"net/http"

	widget "mesa-booking/internal/domain/booking"
	reqdto "mesa-booking/internal/handler/dto/request"
	resdto "mesa-booking/internal/handler/dto/response"
	"mesa-booking/internal/handler/httperr"
	"mesa-booking/internal/handler/middleware"
	"mesa-booking/internal/usecase/booking"

	"github.com/gin-gonic/gin"
)

var (
	errNoSession      = errors.New("booking session missing")
	errMissingTableID = errors.New("table id missing")
)

type BookingHandler struct {
	controller booking.Controller
}

func NewBookingHandler(controller booking.Controller) *BookingHandler {
	return &BookingHandler{controller: controller}
}

// @Summary Current booking widget
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.BookingViewResponse
// @Router /api/booking [get]
func (h *BookingHandler) View(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	state, err := h.controller.View(c.Request.Context(), sessionID)
	h.respond(c, state, err)
}

// @Summary Check availability
// @Description Runs the pre-check and loads the tables for the requested date, time and party size
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Search form"
// @Success 200 {object} resdto.BookingViewResponse
// @Router /api/booking/check [post]
func (h *BookingHandler) Check(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	h.dispatch(c, widget.CheckRequested{Input: req.ToInput()})
}

// @Summary Select a table
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.SelectTableRequest true "Table"
// @Success 200 {object} resdto.BookingViewResponse
// @Router /api/booking/selection [post]
func (h *BookingHandler) Select(c *gin.Context) {
	var req reqdto.SelectTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if req.TableID.IsZero() {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingTableID, "Invalid request format", nil)
		return
	}
	h.dispatch(c, widget.TableSelected{TableID: req.TableID})
}

// @Summary Cancel the table selection
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.BookingViewResponse
// @Router /api/booking/selection [delete]
func (h *BookingHandler) CancelSelection(c *gin.Context) {
	h.dispatch(c, widget.SelectionCancelled{})
}

// @Summary Confirm the reservation
// @Description Submits the selected table. Blank customer fields fall back to the guest placeholder.
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmReservationRequest false "Customer details"
// @Success 200 {object} resdto.BookingViewResponse
// @Router /api/booking/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	h.dispatch(c, widget.ConfirmRequested{Customer: req.ToCustomer()})
}

// @Summary Reset the widget
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.BookingViewResponse
// @Router /api/booking/reset [post]
func (h *BookingHandler) Reset(c *gin.Context) {
	h.dispatch(c, widget.ResetRequested{})
}

func (h *BookingHandler) dispatch(c *gin.Context, event widget.Event) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	state, err := h.controller.Dispatch(c.Request.Context(), sessionID, event)
	h.respond(c, state, err)
}

func (h *BookingHandler) sessionID(c *gin.Context) (string, bool) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return "", false
	}
	return sessionID, true
}

func (h *BookingHandler) respond(c *gin.Context, state widget.State, err error) {
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Booking session unavailable", nil)
		return
	}

	resp, err := resdto.FromBookingState(state)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
