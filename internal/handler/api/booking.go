package api

import (
	"net/http"

	reqdto "fleet-ledger/internal/handler/dto/request"
	resdto "fleet-ledger/internal/handler/dto/response"
	"fleet-ledger/internal/handler/httperr"
	"fleet-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.FleetCommands
}

func NewBookingHandler(cmds commands.FleetCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Book car
// @Description Reserve [start_time, end_time) on a car with at least 90% of the fee as deposit
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookCarRequest true "Booking"
// @Success 201 {object} resdto.EventsResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) BookCar(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req reqdto.BookCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid deposit", nil)
		return
	}
	events, err := h.cmds.BookCar(c.Request.Context(), caller, cmd)
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEvents(events))
}

// @Summary Cancel booking
// @Description Remove a booking; the deposit is retained
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.EventsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	events, err := h.cmds.CancelBooking(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEvents(events))
}
