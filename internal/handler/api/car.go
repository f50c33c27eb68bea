package api

import (
	"net/http"

	reqdto "fleet-ledger/internal/handler/dto/request"
	resdto "fleet-ledger/internal/handler/dto/response"
	"fleet-ledger/internal/handler/httperr"
	"fleet-ledger/internal/usecase/commands"
	"fleet-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	cmds commands.FleetCommands
	q    queries.FleetQueries
}

func NewCarHandler(cmds commands.FleetCommands, q queries.FleetQueries) *CarHandler {
	return &CarHandler{cmds: cmds, q: q}
}

// @Summary Add car
// @Description List a car for rent under the owner
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCarRequest true "Car"
// @Success 201 {object} resdto.EventsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cars [post]
func (h *CarHandler) AddCar(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req reqdto.AddCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hourly_rate", nil)
		return
	}
	events, err := h.cmds.AddCar(c.Request.Context(), caller, cmd)
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEvents(events))
}

// @Summary Delete car
// @Description Remove a car; only its owner may do this. Bookings are kept.
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.EventsResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	events, err := h.cmds.DeleteCar(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEvents(events))
}

// @Summary Rent car
// @Description Rent a car from now for whole hours; the full fee must be attached
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Attached-Payment header string false "Attached payment in smallest units"
// @Param request body reqdto.RentCarRequest true "Rental"
// @Success 201 {object} resdto.EventsResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rentals [post]
func (h *CarHandler) RentCar(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req reqdto.RentCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	events, err := h.cmds.RentCar(c.Request.Context(), caller, req.ToCommand())
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEvents(events))
}

// @Summary Return car
// @Description Make a car available again and close the booking covering now
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.EventsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id}/return [post]
func (h *CarHandler) ReturnCar(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	events, err := h.cmds.ReturnCar(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEvents(events))
}

// @Summary Get car
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.q.GetCar(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}
	res, err := resdto.FromCar(car)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Car availability
// @Description Report the car's available flag. Future bookings do not clear it.
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id}/availability [get]
func (h *CarHandler) CarAvailability(c *gin.Context) {
	carID := c.Param("id")
	available, err := h.q.CarAvailability(c.Request.Context(), carID)
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{CarID: carID, Available: available})
}

// @Summary List available cars
// @Tags cars
// @Produce json
// @Success 200 {array} resdto.CarResponse
// @Router /api/cars/available [get]
func (h *CarHandler) ListAvailableCars(c *gin.Context) {
	cars, err := h.q.ListAvailableCars(c.Request.Context())
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}
	respondCars(c, cars)
}
