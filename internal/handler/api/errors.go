package api

import (
	"net/http"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/handler/httperr"
	"fleet-ledger/internal/handler/middleware"
	"fleet-ledger/internal/pkg/errs"
	"fleet-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errNoCaller = errs.New("no caller identity in context")

var statusByKind = map[fleet.ErrorKind]int{
	fleet.KindOwnerAlreadyExists:  http.StatusConflict,
	fleet.KindUserAlreadyExists:   http.StatusConflict,
	fleet.KindCarAlreadyExists:    http.StatusConflict,
	fleet.KindCarNotAvailable:     http.StatusConflict,
	fleet.KindOwnerNotFound:       http.StatusNotFound,
	fleet.KindUserNotFound:        http.StatusNotFound,
	fleet.KindCarNotFound:         http.StatusNotFound,
	fleet.KindBookingNotFound:     http.StatusNotFound,
	fleet.KindInsufficientDeposit: http.StatusPaymentRequired,
	fleet.KindInsufficientPayment: http.StatusPaymentRequired,
	fleet.KindUnauthorized:        http.StatusForbidden,
	fleet.KindInvalidDriver:       http.StatusForbidden,
	fleet.KindInvalidRate:         http.StatusBadRequest,
	fleet.KindInvalidInterval:     http.StatusBadRequest,
	fleet.KindInvalidIdentity:     http.StatusBadRequest,
}

type errorDetail struct {
	Kind fleet.ErrorKind `json:"kind"`
}

// abortWithLedgerError answers ledger rejections with their kind; anything
// else is a host failure and stays opaque.
func abortWithLedgerError(c *gin.Context, err error) {
	if kind, ok := fleet.KindOf(err); ok {
		status, found := statusByKind[kind]
		if !found {
			status = http.StatusBadRequest
		}
		httperr.AbortWithError(c, status, err, err.Error(), errorDetail{Kind: kind})
		return
	}
	if errs.Is(err, errs.ErrPersistenceFailed) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Ledger temporarily unavailable", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
}

// callerFrom collects what the host knows about this call.
func callerFrom(c *gin.Context) (commands.Caller, bool) {
	id, ok := middleware.GetCaller(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(errNoCaller, errs.ErrMissingCaller), "Unauthorized", nil)
		return commands.Caller{}, false
	}
	return commands.Caller{Identity: id, Attached: middleware.GetAttachedPayment(c)}, true
}
