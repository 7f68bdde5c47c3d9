package configs

import (
	"fmt"

	"mesa-ledger/internal/core/domain"
)

// Ledger holds the bootstrap identities and launch settings. Amounts are
// decimal token strings.
type Ledger struct {
	Owner       string `env:"OWNER,required"`
	Treasury    string `env:"TREASURY,required"`
	// FeeReceiver collects deposit fees and funds vote rewards. It must be
	// an account other than the treasury.
	FeeReceiver string `env:"FEE_RECEIVER,required"`

	Admins            []string `env:"ADMINS" envSeparator:","`
	Creators          []string `env:"CREATORS" envSeparator:","`
	CredentialHolders []string `env:"CREDENTIAL_HOLDERS" envSeparator:","`
	// Genesis funds accounts of the in-process value ledger,
	// e.g. "0xabc...:1000,0xdef...:250.5".
	Genesis map[string]string `env:"GENESIS" envSeparator:"," envKeyValSeparator:":"`

	CostPerClick      string `env:"COST_PER_CLICK" envDefault:"0.05"`
	CostPerImpression string `env:"COST_PER_IMPRESSION" envDefault:"0.005"`
	AddBalanceFee     uint64 `env:"ADD_BALANCE_FEE" envDefault:"20"`
	VoteRewardPercent uint64 `env:"VOTE_REWARD_PERCENT" envDefault:"1"`
	VoteThreshold     uint64 `env:"VOTE_THRESHOLD" envDefault:"10"`

	// ApprovalRequired puts new campaigns behind the voting gate.
	ApprovalRequired bool `env:"APPROVAL_REQUIRED" envDefault:"true"`
}

// Identities resolves the bootstrap addresses.
type Identities struct {
	Owner             domain.Address
	Treasury          domain.Address
	Admins            []domain.Address
	Creators          []domain.Address
	CredentialHolders []domain.Address
}

// Identities parses every configured address.
func (c Ledger) Identities() (Identities, error) {
	var (
		ids Identities
		err error
	)
	if ids.Owner, err = domain.ParseAddress(c.Owner); err != nil {
		return ids, fmt.Errorf("LEDGER_OWNER: %w", err)
	}
	if ids.Treasury, err = domain.ParseAddress(c.Treasury); err != nil {
		return ids, fmt.Errorf("LEDGER_TREASURY: %w", err)
	}
	if ids.Admins, err = parseAddresses(c.Admins); err != nil {
		return ids, fmt.Errorf("LEDGER_ADMINS: %w", err)
	}
	if ids.Creators, err = parseAddresses(c.Creators); err != nil {
		return ids, fmt.Errorf("LEDGER_CREATORS: %w", err)
	}
	if ids.CredentialHolders, err = parseAddresses(c.CredentialHolders); err != nil {
		return ids, fmt.Errorf("LEDGER_CREDENTIAL_HOLDERS: %w", err)
	}
	return ids, nil
}

// Settings builds the launch settings.
func (c Ledger) Settings() (domain.Settings, error) {
	addr, err := domain.ParseAddress(c.FeeReceiver)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("LEDGER_FEE_RECEIVER: %w", err)
	}
	if treasury, err := domain.ParseAddress(c.Treasury); err == nil && treasury == addr {
		return domain.Settings{}, fmt.Errorf("LEDGER_FEE_RECEIVER: %w: must differ from LEDGER_TREASURY", domain.ErrInvalidParameter)
	}
	s := domain.DefaultSettings(addr)
	cpc, err := domain.ParseTokens(c.CostPerClick)
	if err != nil {
		return s, fmt.Errorf("LEDGER_COST_PER_CLICK: %w", err)
	}
	cpi, err := domain.ParseTokens(c.CostPerImpression)
	if err != nil {
		return s, fmt.Errorf("LEDGER_COST_PER_IMPRESSION: %w", err)
	}
	for _, err = range []error{
		s.SetCostPerClick(cpc),
		s.SetCostPerImpression(cpi),
		s.SetAddBalanceFee(c.AddBalanceFee),
		s.SetVoteRewardPercent(c.VoteRewardPercent),
		s.SetVoteThreshold(c.VoteThreshold),
	} {
		if err != nil {
			return s, err
		}
	}
	return s, nil
}

// GenesisBalances parses the genesis allocations.
func (c Ledger) GenesisBalances() (map[domain.Address]domain.Amount, error) {
	out := make(map[domain.Address]domain.Amount, len(c.Genesis))
	for raw, amount := range c.Genesis {
		addr, err := domain.ParseAddress(raw)
		if err != nil {
			return nil, fmt.Errorf("LEDGER_GENESIS: %w", err)
		}
		a, err := domain.ParseTokens(amount)
		if err != nil {
			return nil, fmt.Errorf("LEDGER_GENESIS %s: %w", raw, err)
		}
		out[addr] = a
	}
	return out, nil
}

func parseAddresses(raw []string) ([]domain.Address, error) {
	out := make([]domain.Address, 0, len(raw))
	for _, s := range raw {
		a, err := domain.ParseAddress(s)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
