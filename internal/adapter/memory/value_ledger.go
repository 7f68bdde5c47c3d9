package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"mesa-ledger/internal/core/domain"
)

// ErrInsufficientFunds is returned when the source account cannot cover a
// transfer.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ValueLedger is an in-process fungible token book implementing
// port.ValueBook. Transfer pays out of the treasury account. The book is
// volatile on its own; the engine persists it through Balances and Restore.
type ValueLedger struct {
	mu       sync.Mutex
	treasury domain.Address
	balances map[domain.Address]domain.Amount
}

// NewValueLedger returns an empty book whose own account is treasury.
func NewValueLedger(treasury domain.Address) *ValueLedger {
	return &ValueLedger{treasury: treasury, balances: make(map[domain.Address]domain.Amount)}
}

// Mint credits amount to addr out of thin air. Used for genesis balances.
func (l *ValueLedger) Mint(addr domain.Address, amount domain.Amount) {
	l.mu.Lock()
	defer l.mu.Unlock()
	bal := l.balances[addr]
	bal.Add(&bal, &amount)
	l.balances[addr] = bal
}

// Balances returns a copy of every account in the book.
func (l *ValueLedger) Balances() map[domain.Address]domain.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[domain.Address]domain.Amount, len(l.balances))
	for addr, bal := range l.balances {
		if !bal.IsZero() {
			out[addr] = bal
		}
	}
	return out
}

// Restore replaces the whole book with balances, discarding anything minted
// before.
func (l *ValueLedger) Restore(balances map[domain.Address]domain.Amount) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances = make(map[domain.Address]domain.Amount, len(balances))
	for addr, bal := range balances {
		l.balances[addr] = bal
	}
}

// Treasury returns the book's own account.
func (l *ValueLedger) Treasury() domain.Address { return l.treasury }

// BalanceOf reports addr's balance. Unknown accounts hold zero.
func (l *ValueLedger) BalanceOf(_ context.Context, addr domain.Address) (domain.Amount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[addr], nil
}

// Transfer pays amount out of the treasury.
func (l *ValueLedger) Transfer(ctx context.Context, to domain.Address, amount domain.Amount) error {
	return l.TransferFrom(ctx, l.treasury, to, amount)
}

// TransferFrom moves amount between two accounts. It fails without moving
// anything when from cannot cover it.
func (l *ValueLedger) TransferFrom(_ context.Context, from, to domain.Address, amount domain.Amount) error {
	if to == domain.ZeroAddress {
		return fmt.Errorf("transfer to zero address")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	src := l.balances[from]
	if src.Lt(&amount) {
		return fmt.Errorf("%w: %s holds %s, needs %s", ErrInsufficientFunds, from.Hex(), src.Dec(), amount.Dec())
	}
	src.Sub(&src, &amount)
	l.balances[from] = src
	dst := l.balances[to]
	dst.Add(&dst, &amount)
	l.balances[to] = dst
	return nil
}
