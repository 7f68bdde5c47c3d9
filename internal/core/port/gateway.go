package port

import (
	"context"
	"time"

	"mesa-ledger/internal/core/domain"
)

// ValueGateway moves fungible value. Transfer pays out of the ledger's own
// treasury account; TransferFrom moves value between arbitrary accounts. A
// returned error means the transfer did not happen.
type ValueGateway interface {
	Treasury() domain.Address
	BalanceOf(ctx context.Context, addr domain.Address) (domain.Amount, error)
	Transfer(ctx context.Context, to domain.Address, amount domain.Amount) error
	TransferFrom(ctx context.Context, from, to domain.Address, amount domain.Amount) error
}

// ValueBook is a ValueGateway whose balances live in process. The engine
// saves Balances with every committed state and hands the stored snapshot
// back to Restore on start, so the book survives restarts together with
// the ledger it backs.
type ValueBook interface {
	ValueGateway
	Balances() map[domain.Address]domain.Amount
	Restore(balances map[domain.Address]domain.Amount)
}

// CredentialGateway reports how many qualifying credentials an identity
// holds. The ledger only checks for at least one.
type CredentialGateway interface {
	BalanceOf(ctx context.Context, addr domain.Address) (uint64, error)
}

// AccessControl answers role membership questions.
type AccessControl interface {
	HasRole(ctx context.Context, role domain.Role, addr domain.Address) (bool, error)
}

// EventPublisher ships committed events to external observers. Publishing
// failures never roll back state.
type EventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}
