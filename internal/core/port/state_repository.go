package port

import (
	"context"

	"mesa-ledger/internal/core/domain"
)

// StateRepository persists the ledger state. Save must be atomic: a failed
// Save leaves the previously saved state intact. Implementations must
// preserve campaign and provider order so indices survive a round trip.
type StateRepository interface {
	// Load returns the stored state, or found=false when nothing was saved
	// yet.
	Load(ctx context.Context) (state *domain.State, found bool, err error)
	Save(ctx context.Context, state *domain.State) error
}
