package domain

// State is the aggregate the engine mutates: every campaign with its
// providers, the claim ledger and the global settings. Owner is the single
// privileged identity fixed at initialisation.
//
// Balances mirrors the token book when value lives in process, so the book
// is saved in the same snapshot as the ledger. It is nil when value is held
// by an external gateway.
type State struct {
	Owner     Address
	Settings  Settings
	Campaigns *CampaignRegistry
	Claims    ClaimLedger
	Balances  map[Address]Amount
}

// NewState returns an empty state.
func NewState(owner Address, settings Settings) *State {
	return &State{
		Owner:     owner,
		Settings:  settings,
		Campaigns: NewCampaignRegistry(),
		Claims:    NewClaimLedger(),
	}
}

// Clone deep-copies the state so a transaction can mutate it freely and be
// discarded on failure.
func (s *State) Clone() *State {
	return &State{
		Owner:     s.Owner,
		Settings:  s.Settings,
		Campaigns: s.Campaigns.Clone(),
		Claims:    s.Claims.Clone(),
		Balances:  CopyBalances(s.Balances),
	}
}

// CopyBalances copies a balance map, keeping nil as nil.
func CopyBalances(in map[Address]Amount) map[Address]Amount {
	if in == nil {
		return nil
	}
	out := make(map[Address]Amount, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// TotalValue is the sum of campaign balances plus provider rewards. Only
// deposits, withdrawals and removals change it.
func (s *State) TotalValue() Amount {
	var total Amount
	for _, c := range s.Campaigns.All() {
		total = add(total, c.Balance)
		for _, p := range c.Providers.All() {
			total = add(total, p.Rewards)
		}
	}
	return total
}
