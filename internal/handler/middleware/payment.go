package middleware

import (
	"net/http"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/handler/httperr"
	"fleet-ledger/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"lukechampine.com/uint128"
)

const (
	AttachedPaymentHeader = "X-Attached-Payment"
	ctxAttachedKey        = "attached_payment"
)

// AttachedPayment reads the value transferred with the call, in smallest
// currency units. An absent header means nothing was attached.
func AttachedPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		amount, err := fleet.ParseAmount(c.GetHeader(AttachedPaymentHeader))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidPayment),
				"Invalid "+AttachedPaymentHeader+" header", nil)
			return
		}
		c.Set(ctxAttachedKey, amount)
		c.Next()
	}
}

func GetAttachedPayment(c *gin.Context) fleet.Amount {
	if v, exists := c.Get(ctxAttachedKey); exists {
		if amount, ok := v.(fleet.Amount); ok {
			return amount
		}
	}
	return uint128.Zero
}
