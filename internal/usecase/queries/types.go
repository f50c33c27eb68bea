package queries

import "fleet-ledger/internal/domain/fleet"

// IdentityView reports an identity's roles. Both may be true.
type IdentityView struct {
	ID      fleet.Identity
	IsOwner bool
	IsUser  bool
}
