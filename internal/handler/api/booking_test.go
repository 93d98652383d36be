//go:build unit

package api_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	widget "mesa-booking/internal/domain/booking"
	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/domain/table"
	"mesa-booking/internal/handler/api"
	resdto "mesa-booking/internal/handler/dto/response"
	"mesa-booking/internal/handler/middleware"
	"mesa-booking/internal/pkg/config"
	"mesa-booking/internal/pkg/cookie"
	"mesa-booking/internal/pkg/errs"
	"mesa-booking/tests/common/builder"
	"mesa-booking/tests/common/httptest"
	bookingmock "mesa-booking/tests/mock/booking"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockController *bookingmock.MockController
	sessionID      string
	sessionCookie  *http.Cookie
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockController = bookingmock.NewMockController(s.mockCtrl)
	handler := api.NewBookingHandler(s.mockController)

	cfg := config.NewTestConfig()
	group := s.router.Group("/booking", middleware.BookingSession(cfg.Cookie, cfg.Session))
	group.GET("", handler.View)
	group.POST("/check", handler.Check)
	group.POST("/selection", handler.Select)
	group.DELETE("/selection", handler.CancelSelection)
	group.POST("/confirm", handler.Confirm)
	group.POST("/reset", handler.Reset)

	s.sessionID = uuid.NewString()
	s.sessionCookie = &http.Cookie{Name: cookie.SessionCookieName, Value: s.sessionID}
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) perform(method, path string, body any) *nethttptest.ResponseRecorder {
	return httptest.PerformRequestWithCookies(s.T(), s.router, method, path, body, []*http.Cookie{s.sessionCookie}, "")
}

func (s *BookingHandlerTestSuite) TestView() {
	s.Run("success: fresh widget for a new visitor gets a session cookie", func() {
		s.mockController.EXPECT().View(gomock.Any(), gomock.Any()).
			Return(widget.NewState(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking", nil, "")

		var response resdto.BookingViewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("idle", response.Phase)
		s.NotNil(response.Tables)
		s.Empty(response.Tables)

		sessionCookie := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(sessionCookie)
		_, err := uuid.Parse(sessionCookie.Value)
		s.NoError(err)
	})

	s.Run("success: existing session id is reused", func() {
		s.mockController.EXPECT().View(gomock.Any(), s.sessionID).
			Return(builder.NewBookingBuilder().BuildListingState(), nil).Times(1)

		rec := s.perform(http.MethodGet, "/booking", nil)

		var response resdto.BookingViewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("listing", response.Phase)
		s.Len(response.Tables, 2)
		httptest.AssertCookie(s.T(), rec, cookie.SessionCookieName, s.sessionID)
	})

	s.Run("success: a forged session id is replaced", func() {
		s.mockController.EXPECT().View(gomock.Any(), gomock.Not(gomock.Eq("not-a-uuid"))).
			Return(widget.NewState(), nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/booking", nil,
			[]*http.Cookie{{Name: cookie.SessionCookieName, Value: "not-a-uuid"}}, "")

		s.Equal(http.StatusOK, rec.Code)
		s.NotEqual("not-a-uuid", httptest.ExtractCookie(rec, cookie.SessionCookieName).Value)
	})

	s.Run("error: 503 when the session store fails", func() {
		s.mockController.EXPECT().View(gomock.Any(), s.sessionID).
			Return(widget.State{}, errs.Mark(errs.New("redis down"), errs.ErrSessionStore)).Times(1)

		rec := s.perform(http.MethodGet, "/booking", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Booking session unavailable")
	})
}

func (s *BookingHandlerTestSuite) TestCheck() {
	b := builder.NewBookingBuilder().WithDate("2030-05-10").WithTime("19:30").WithPeople(3)

	s.Run("success: form values reach the widget as typed", func() {
		s.mockController.EXPECT().
			Dispatch(gomock.Any(), s.sessionID, widget.CheckRequested{
				Input: reservation.Input{Date: "2030-05-10", Time: "19:30", People: "3"},
			}).
			Return(b.BuildListingState(), nil).Times(1)

		rec := s.perform(http.MethodPost, "/booking/check", b.BuildCheckDTO())

		var response resdto.BookingViewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("listing", response.Phase)
		s.Equal("2030-05-10", response.Date)
		s.Equal("19:30", response.Time)
		s.Equal(3, response.People)
	})

	s.Run("success: pre-check failure is part of the view", func() {
		state := widget.NewState()
		state.Error = "Please fill in all fields correctly."
		s.mockController.EXPECT().
			Dispatch(gomock.Any(), s.sessionID, widget.CheckRequested{Input: reservation.Input{Date: "2030-05-10"}}).
			Return(state, nil).Times(1)

		rec := s.perform(http.MethodPost, "/booking/check", map[string]any{"date": "2030-05-10", "people": nil})

		var response resdto.BookingViewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("idle", response.Phase)
		s.Equal("Please fill in all fields correctly.", response.Error)
	})

	s.Run("error: body is not JSON", func() {
		rec := s.perform(http.MethodPost, "/booking/check", "date=2030-05-10")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestSelection() {
	b := builder.NewBookingBuilder()

	s.Run("success: select a table", func() {
		s.mockController.EXPECT().
			Dispatch(gomock.Any(), s.sessionID, widget.TableSelected{TableID: table.NumericTableID(1)}).
			Return(b.BuildSelectedState(), nil).Times(1)

		rec := s.perform(http.MethodPost, "/booking/selection", map[string]any{"tableId": 1})

		var response resdto.BookingViewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("selected", response.Phase)
		s.Require().NotNil(response.Selected)
		s.Equal(1, response.Selected.Number)
	})

	s.Run("error: table id missing", func() {
		rec := s.perform(http.MethodPost, "/booking/selection", map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("success: cancel the selection", func() {
		s.mockController.EXPECT().
			Dispatch(gomock.Any(), s.sessionID, widget.SelectionCancelled{}).
			Return(b.BuildListingState(), nil).Times(1)

		rec := s.perform(http.MethodDelete, "/booking/selection", nil)

		var response resdto.BookingViewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("listing", response.Phase)
		s.Nil(response.Selected)
	})
}

func (s *BookingHandlerTestSuite) TestConfirm() {
	b := builder.NewBookingBuilder()

	s.Run("success: confirmed reservation with reset time", func() {
		resetAt := time.Date(2030, 5, 10, 12, 0, 2, 0, time.UTC)
		state := b.BuildSelectedState()
		state.Phase = widget.PhaseConfirmed
		state.Receipt = &reservation.Receipt{ReservationID: "42", TableNumber: 1, Date: b.Date, Time: state.Request.Time}
		state.Message = &widget.Message{Kind: widget.MessageSuccess, Text: "Reserva creada con éxito"}
		state.ResetAt = &resetAt

		confirm := b.BuildConfirmDTO()
		s.mockController.EXPECT().
			Dispatch(gomock.Any(), s.sessionID, widget.ConfirmRequested{Customer: confirm.ToCustomer()}).
			Return(state, nil).Times(1)

		rec := s.perform(http.MethodPost, "/booking/confirm", confirm)

		var response resdto.BookingViewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Phase)
		s.Require().NotNil(response.Message)
		s.Equal("success", response.Message.Kind)
		s.Require().NotNil(response.Receipt)
		s.Equal("42", response.Receipt.ReservationID)
		s.Require().NotNil(response.ResetAt)
		s.True(resetAt.Equal(*response.ResetAt))
	})

	s.Run("success: empty body confirms as guest", func() {
		s.mockController.EXPECT().
			Dispatch(gomock.Any(), s.sessionID, widget.ConfirmRequested{}).
			Return(b.BuildSelectedState(), nil).Times(1)

		rec := s.perform(http.MethodPost, "/booking/confirm", nil)
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: malformed email", func() {
		rec := s.perform(http.MethodPost, "/booking/confirm", map[string]any{"email": "nope"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestReset() {
	s.mockController.EXPECT().
		Dispatch(gomock.Any(), s.sessionID, widget.ResetRequested{}).
		Return(widget.NewState(), nil).Times(1)

	rec := s.perform(http.MethodPost, "/booking/reset", nil)

	var response resdto.BookingViewResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("idle", response.Phase)
}

func TestBookingHandler_NoSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	router := gin.New()
	router.GET("/booking", api.NewBookingHandler(bookingmock.NewMockController(ctrl)).View)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/booking", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
