//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/pkg/config"
	"fleet-ledger/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, id fleet.Identity) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration)
	token, err := service.GenerateToken(id)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, id fleet.Identity) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(id)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
