//go:build unit || e2e

package authtest

import (
	"encoding/hex"
	"strings"

	"fleet-ledger/internal/domain/fleet"

	"github.com/google/uuid"
)

// NewIdentity returns a fresh, well-formed identity so tests sharing one
// ledger never collide.
func NewIdentity() fleet.Identity {
	id := uuid.New()
	return fleet.Identity("0x" + strings.Repeat("0", 8) + hex.EncodeToString(id[:]))
}
