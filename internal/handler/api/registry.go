package api

import (
	"net/http"

	"fleet-ledger/internal/domain/fleet"
	reqdto "fleet-ledger/internal/handler/dto/request"
	resdto "fleet-ledger/internal/handler/dto/response"
	"fleet-ledger/internal/handler/httperr"
	"fleet-ledger/internal/usecase/commands"
	"fleet-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RegistryHandler struct {
	cmds commands.FleetCommands
	q    queries.FleetQueries
}

func NewRegistryHandler(cmds commands.FleetCommands, q queries.FleetQueries) *RegistryHandler {
	return &RegistryHandler{cmds: cmds, q: q}
}

// @Summary Register owner
// @Description Register a car owner under an identity
// @Tags registry
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterOwnerRequest true "Owner"
// @Success 201 {object} resdto.EventsResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/owners [post]
func (h *RegistryHandler) RegisterOwner(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req reqdto.RegisterOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	events, err := h.cmds.RegisterOwner(c.Request.Context(), caller, req.OwnerID, req.Name)
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEvents(events))
}

// @Summary Register user
// @Description Register a driver under an identity
// @Tags registry
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterUserRequest true "Driver"
// @Success 201 {object} resdto.EventsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/users [post]
func (h *RegistryHandler) RegisterUser(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req reqdto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	events, err := h.cmds.RegisterUser(c.Request.Context(), caller, req.UserID, req.Name, req.DrivingLicense)
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEvents(events))
}

// @Summary Identity roles
// @Description Report whether an identity is a registered owner and/or driver
// @Tags registry
// @Produce json
// @Param id path string true "Identity"
// @Success 200 {object} resdto.IdentityResponse
// @Router /api/identities/{id} [get]
func (h *RegistryHandler) Identity(c *gin.Context) {
	view, err := h.q.Identity(c.Request.Context(), fleet.Identity(c.Param("id")))
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIdentityView(view))
}

// @Summary List owner cars
// @Description List cars registered under an owner, sorted by car ID
// @Tags registry
// @Produce json
// @Param id path string true "Owner identity"
// @Success 200 {array} resdto.CarResponse
// @Router /api/owners/{id}/cars [get]
func (h *RegistryHandler) ListOwnerCars(c *gin.Context) {
	cars, err := h.q.ListOwnerCars(c.Request.Context(), fleet.Identity(c.Param("id")))
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}
	respondCars(c, cars)
}

// @Summary List user bookings
// @Description List a driver's bookings, sorted by booking ID
// @Tags registry
// @Produce json
// @Param id path string true "Driver identity"
// @Success 200 {array} resdto.BookingResponse
// @Router /api/users/{id}/bookings [get]
func (h *RegistryHandler) ListUserBookings(c *gin.Context) {
	bookings, err := h.q.ListUserBookings(c.Request.Context(), fleet.Identity(c.Param("id")))
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}
	res, err := resdto.FromBookings(bookings)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func respondCars(c *gin.Context, cars []fleet.Car) {
	res, err := resdto.FromCars(cars)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
