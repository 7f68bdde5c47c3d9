package domain

// ClaimLedger tracks accrued but unclaimed value per identity, across
// campaigns.
type ClaimLedger struct {
	entries map[Address]Amount
}

// NewClaimLedger returns an empty ledger.
func NewClaimLedger() ClaimLedger {
	return ClaimLedger{entries: make(map[Address]Amount)}
}

// Credit accrues amount to addr.
func (l *ClaimLedger) Credit(addr Address, amount Amount) {
	if amount.IsZero() {
		return
	}
	if l.entries == nil {
		l.entries = make(map[Address]Amount)
	}
	l.entries[addr] = add(l.entries[addr], amount)
}

// Balance returns what addr can claim.
func (l *ClaimLedger) Balance(addr Address) Amount {
	return l.entries[addr]
}

// Take zeroes addr's entry and returns the previous amount. It fails with
// ErrZeroClaim, leaving the ledger unchanged, when nothing is accrued.
func (l *ClaimLedger) Take(addr Address) (Amount, error) {
	amount := l.entries[addr]
	if amount.IsZero() {
		return Amount{}, ErrZeroClaim
	}
	delete(l.entries, addr)
	return amount, nil
}

// Entries returns a copy of every non-zero entry.
func (l *ClaimLedger) Entries() map[Address]Amount {
	out := make(map[Address]Amount, len(l.entries))
	for k, v := range l.entries {
		out[k] = v
	}
	return out
}

// Clone deep-copies the ledger.
func (l *ClaimLedger) Clone() ClaimLedger {
	return ClaimLedger{entries: l.Entries()}
}
