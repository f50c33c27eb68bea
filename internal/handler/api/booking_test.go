//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/handler/api"
	resdto "fleet-ledger/internal/handler/dto/response"
	"fleet-ledger/internal/handler/middleware"
	"fleet-ledger/internal/usecase/commands"
	"fleet-ledger/tests/common/httptest"
	"fleet-ledger/tests/common/testutil"
	commandsmock "fleet-ledger/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"lukechampine.com/uint128"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFleetCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFleetCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)

	s.router.POST("/bookings", fakeAuth, middleware.AttachedPayment(), s.handler.BookCar)
	s.router.DELETE("/bookings/:id", fakeAuth, middleware.AttachedPayment(), s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestBookCar() {
	body := map[string]any{
		"car_id":     "car-1",
		"user_id":    string(driver),
		"start_time": 3600,
		"end_time":   7200,
		"deposit":    "90",
	}

	s.Run("success: 201 with the required deposit in the event", func() {
		s.mockCommands.EXPECT().
			BookCar(gomock.Any(), commands.Caller{Identity: driver}, commands.BookCarRequest{
				CarID: "car-1", UserID: driver, StartTime: 3600, EndTime: 7200, Deposit: uint128.From64(90),
			}).
			Return([]fleet.Event{fleet.CarBooked{CarID: "car-1", User: driver, StartTime: 3600, EndTime: 7200, Deposit: uint128.From64(90)}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, string(driver))

		var res resdto.EventsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("CarBooked", res.Events[0].Kind)
		s.Equal("90", res.Events[0].Data["deposit"])
		s.EqualValues(3600, res.Events[0].Data["start_time"])
	})

	s.Run("error: 400 on non-numeric deposit", func() {
		req := testutil.DtoMap(s.T(), body, testutil.Field("deposit", "ninety"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", req, string(driver))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid deposit")
	})

	s.Run("error: 400 on negative start time", func() {
		req := testutil.DtoMap(s.T(), body, testutil.Field("start_time", -1))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", req, string(driver))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	ledgerErrors := []struct {
		err    error
		status int
	}{
		{fleet.ErrInvalidInterval, http.StatusBadRequest},
		{fleet.ErrInsufficientDeposit, http.StatusPaymentRequired},
		{fleet.ErrCarNotAvailable, http.StatusConflict},
		{fleet.ErrUserNotFound, http.StatusNotFound},
		{fleet.ErrCarNotFound, http.StatusNotFound},
		{fleet.ErrInvalidDriver, http.StatusForbidden},
	}
	for _, tc := range ledgerErrors {
		s.Run("error: maps "+tc.err.Error(), func() {
			s.mockCommands.EXPECT().BookCar(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, string(driver))

			kind, _ := fleet.KindOf(tc.err)
			httptest.AssertLedgerError(s.T(), rec, tc.status, string(kind))
		})
	}
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := fleet.BookingID("car-1", driver, 3600)

	s.Run("success: deposit retained", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), gomock.Any(), bookingID).
			Return([]fleet.Event{fleet.BookingCancelled{BookingID: bookingID, User: driver, DepositRetained: uint128.From64(95)}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+bookingID, nil, string(owner))

		var res resdto.EventsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(map[string]any{"booking_id": bookingID, "user": string(driver), "deposit_retained": "95"}, res.Events[0].Data)
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), gomock.Any(), "nope").Return(nil, fleet.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/nope", nil, string(driver))

		httptest.AssertLedgerError(s.T(), rec, http.StatusNotFound, "BookingNotFound")
	})
}
