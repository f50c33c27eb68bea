package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/handler/httperr"
	"fleet-ledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errMissingToken = errors.New("bearer token missing")

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxCallerKey = "caller"
	ctxClaimsKey = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the calling identity from a bearer token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		caller, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxCallerKey, caller)
		c.Set(ctxClaimsKey, map[string]any{"sub": caller.String()})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetCaller(c *gin.Context) (fleet.Identity, bool) {
	v, exists := c.Get(ctxCallerKey)
	if !exists {
		return "", false
	}

	id, ok := v.(fleet.Identity)
	return id, ok
}
