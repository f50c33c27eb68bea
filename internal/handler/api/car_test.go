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
	queriesmock "fleet-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"lukechampine.com/uint128"
)

type CarHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFleetCommands
	mockQueries  *queriesmock.MockFleetQueries
	handler      *api.CarHandler
}

func (s *CarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFleetCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFleetQueries(s.mockCtrl)
	s.handler = api.NewCarHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/cars", fakeAuth, middleware.AttachedPayment(), s.handler.AddCar)
	s.router.GET("/cars/available", s.handler.ListAvailableCars)
	s.router.GET("/cars/:id", s.handler.GetCar)
	s.router.GET("/cars/:id/availability", s.handler.CarAvailability)
	s.router.DELETE("/cars/:id", fakeAuth, middleware.AttachedPayment(), s.handler.DeleteCar)
	s.router.POST("/cars/:id/return", fakeAuth, middleware.AttachedPayment(), s.handler.ReturnCar)
	s.router.POST("/rentals", fakeAuth, middleware.AttachedPayment(), s.handler.RentCar)
}

func (s *CarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CarHandlerTestSuite))
}

type testCaseCar struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *CarHandlerTestSuite) TestAddCar() {
	body := map[string]any{"car_id": "car-1", "owner_id": string(owner), "hourly_rate": "100"}

	s.Run("success: rate parsed as a 128-bit amount", func() {
		s.mockCommands.EXPECT().
			AddCar(gomock.Any(), gomock.Any(), commands.AddCarRequest{CarID: "car-1", OwnerID: owner, HourlyRate: uint128.From64(100)}).
			Return([]fleet.Event{fleet.CarAdded{CarID: "car-1", Owner: owner}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars", body, string(owner))

		var res resdto.EventsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("CarAdded", res.Events[0].Kind)
		s.Equal(map[string]any{"car_id": "car-1", "owner": string(owner)}, res.Events[0].Data)
	})

	s.Run("rate above 64 bits is accepted", func() {
		s.mockCommands.EXPECT().AddCar(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ commands.Caller, req commands.AddCarRequest) ([]fleet.Event, error) {
				s.Equal("340282366920938463463374607431768211455", req.HourlyRate.String())
				return []fleet.Event{fleet.CarAdded{CarID: req.CarID, Owner: req.OwnerID}}, nil
			})

		req := testutil.DtoMap(s.T(), body, testutil.Field("hourly_rate", "340282366920938463463374607431768211455"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars", req, string(owner))

		s.Equal(http.StatusCreated, rec.Code)
	})

	invalid := []testCaseCar{
		{name: "missing car_id", mutate: testutil.Field("car_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing hourly_rate", mutate: testutil.Field("hourly_rate", nil), expectCode: http.StatusBadRequest},
		{name: "negative hourly_rate", mutate: testutil.Field("hourly_rate", "-5"), expectCode: http.StatusBadRequest},
		{name: "rate beyond 128 bits", mutate: testutil.Field("hourly_rate", "340282366920938463463374607431768211456"), expectCode: http.StatusBadRequest},
	}
	for _, tc := range invalid {
		s.Run("error: "+tc.name, func() {
			req := testutil.DtoMap(s.T(), body, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars", req, string(owner))
			s.Equal(tc.expectCode, rec.Code)
		})
	}

	ledgerErrors := []struct {
		err    error
		status int
	}{
		{fleet.ErrInvalidRate, http.StatusBadRequest},
		{fleet.ErrOwnerNotFound, http.StatusNotFound},
		{fleet.ErrCarAlreadyExists, http.StatusConflict},
		{fleet.ErrUnauthorized, http.StatusForbidden},
	}
	for _, tc := range ledgerErrors {
		s.Run("error: maps "+tc.err.Error(), func() {
			s.mockCommands.EXPECT().AddCar(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars", body, string(owner))

			kind, _ := fleet.KindOf(tc.err)
			httptest.AssertLedgerError(s.T(), rec, tc.status, string(kind))
		})
	}
}

func (s *CarHandlerTestSuite) TestDeleteCar() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().DeleteCar(gomock.Any(), gomock.Any(), "car-1").
			Return([]fleet.Event{fleet.CarDeleted{CarID: "car-1"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cars/car-1", nil, string(owner))

		var res resdto.EventsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("CarDeleted", res.Events[0].Kind)
	})

	s.Run("error: 404 for unknown car", func() {
		s.mockCommands.EXPECT().DeleteCar(gomock.Any(), gomock.Any(), "ghost").Return(nil, fleet.ErrCarNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cars/ghost", nil, string(owner))

		httptest.AssertLedgerError(s.T(), rec, http.StatusNotFound, "CarNotFound")
	})
}

func (s *CarHandlerTestSuite) TestRentCar() {
	body := map[string]any{"car_id": "car-1", "user_id": string(driver), "duration_hours": 2}

	s.Run("success: attached payment reaches the command", func() {
		expected := commands.Caller{Identity: driver, Attached: uint128.From64(200)}
		s.mockCommands.EXPECT().
			RentCar(gomock.Any(), expected, commands.RentCarRequest{CarID: "car-1", UserID: driver, DurationHours: 2}).
			Return([]fleet.Event{
				fleet.CarBooked{CarID: "car-1", User: driver, StartTime: 0, EndTime: 7200, Deposit: uint128.From64(180)},
				fleet.CarRented{CarID: "car-1", User: driver, Duration: 2},
			}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/rentals", body,
			map[string]string{middleware.AttachedPaymentHeader: "200"}, string(driver))

		var res resdto.EventsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Require().Len(res.Events, 2)
		s.Equal("CarBooked", res.Events[0].Kind)
		s.Equal("180", res.Events[0].Data["deposit"])
		s.Equal("CarRented", res.Events[1].Kind)
	})

	s.Run("error: 400 on malformed payment header", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/rentals", body,
			map[string]string{middleware.AttachedPaymentHeader: "lots"}, string(driver))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, middleware.AttachedPaymentHeader)
	})

	s.Run("error: 402 when underpaid", func() {
		s.mockCommands.EXPECT().RentCar(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fleet.ErrInsufficientPayment)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/rentals", body,
			map[string]string{middleware.AttachedPaymentHeader: "199"}, string(driver))

		httptest.AssertLedgerError(s.T(), rec, http.StatusPaymentRequired, "InsufficientPayment")
	})

	s.Run("error: 409 when the car is out", func() {
		s.mockCommands.EXPECT().RentCar(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fleet.ErrCarNotAvailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rentals", body, string(driver))

		httptest.AssertLedgerError(s.T(), rec, http.StatusConflict, "CarNotAvailable")
	})

	s.Run("error: 403 for an invalid driver", func() {
		s.mockCommands.EXPECT().RentCar(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fleet.ErrInvalidDriver)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rentals", body, string(owner))

		httptest.AssertLedgerError(s.T(), rec, http.StatusForbidden, "InvalidDriver")
	})
}

func (s *CarHandlerTestSuite) TestReturnCar() {
	s.mockCommands.EXPECT().ReturnCar(gomock.Any(), commands.Caller{Identity: driver}, "car-1").
		Return([]fleet.Event{
			fleet.BookingCancelled{BookingID: "b", User: driver, DepositRetained: uint128.From64(180)},
			fleet.CarReturned{CarID: "car-1"},
		}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars/car-1/return", nil, string(driver))

	var res resdto.EventsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Require().Len(res.Events, 2)
	s.Equal("BookingCancelled", res.Events[0].Kind)
	s.Equal("180", res.Events[0].Data["deposit_retained"])
	s.Equal("CarReturned", res.Events[1].Kind)
}

func (s *CarHandlerTestSuite) TestReadQueries() {
	car := fleet.Car{CarID: "car-1", OwnerID: owner, Available: false, HourlyRate: uint128.From64(100)}

	s.Run("get car", func() {
		s.mockQueries.EXPECT().GetCar(gomock.Any(), "car-1").Return(car, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/car-1", nil, "")

		var res resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(resdto.CarResponse{CarID: "car-1", OwnerID: string(owner), Available: false, HourlyRate: "100"}, res)
	})

	s.Run("get car not found", func() {
		s.mockQueries.EXPECT().GetCar(gomock.Any(), "ghost").Return(fleet.Car{}, fleet.ErrCarNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/ghost", nil, "")

		httptest.AssertLedgerError(s.T(), rec, http.StatusNotFound, "CarNotFound")
	})

	s.Run("availability", func() {
		s.mockQueries.EXPECT().CarAvailability(gomock.Any(), "car-1").Return(false, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/car-1/availability", nil, "")

		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(resdto.AvailabilityResponse{CarID: "car-1", Available: false}, res)
	})

	s.Run("available list is routed before :id", func() {
		s.mockQueries.EXPECT().ListAvailableCars(gomock.Any()).Return([]fleet.Car{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/available", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}
