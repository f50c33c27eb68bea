package shared

import (
	"context"
	"sync"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/pkg/errs"
)

// LedgerState is the host's one live ledger. Mutations are serialized;
// readers share a lock and never see a half-applied operation.
type LedgerState struct {
	mu     sync.RWMutex
	ledger *fleet.Ledger
}

func NewLedgerState(l *fleet.Ledger) *LedgerState {
	return &LedgerState{ledger: l}
}

// LoadLedgerState rebuilds the ledger from everything the store holds.
func LoadLedgerState(ctx context.Context, store LedgerStore, opts fleet.Options) (*LedgerState, error) {
	snap, err := store.Load(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load ledger snapshot"), errs.ErrStateLoadFailed)
	}
	return NewLedgerState(fleet.Restore(opts, snap.Owners, snap.Users, snap.Cars, snap.Bookings)), nil
}

func (s *LedgerState) Read(fn func(l *fleet.Ledger)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.ledger)
}

// Mutate runs op against a draft copy. commit receives what op changed and
// the draft replaces the live ledger only if commit succeeds.
func (s *LedgerState) Mutate(op func(draft *fleet.Ledger) error, commit func(changes fleet.ChangeSet) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.ledger.Clone()
	if err := op(draft); err != nil {
		return err
	}
	if err := commit(fleet.Diff(s.ledger, draft)); err != nil {
		return err
	}
	s.ledger = draft
	return nil
}
