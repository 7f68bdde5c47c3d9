package port

import (
	"context"
	"time"

	"mesa-ledger/internal/core/domain"
)

// LedgerUseCase is the inbound port of the incentive ledger. Every mutating
// operation takes the acting identity explicitly and runs as one all or
// nothing transaction: either every state change and value transfer takes
// effect, or none does.
type LedgerUseCase interface {
	// CreateCampaign registers a new campaign owned by caller. Requires the
	// campaign creator role.
	CreateCampaign(ctx context.Context, caller domain.Address, req CreateCampaignReq) (*domain.Campaign, error)
	// RemoveCampaign deletes a campaign and its providers, refunding any
	// remaining balance to the owner. Requires the campaign creator role.
	RemoveCampaign(ctx context.Context, caller domain.Address, id string) error
	// SetLive toggles the live flag. Owner or administrator.
	SetLive(ctx context.Context, caller domain.Address, id string, live bool) error
	// SetEndDate moves the end date. Owner or administrator.
	SetEndDate(ctx context.Context, caller domain.Address, id string, end time.Time) error
	// SetApproval overrides the voting outcome. Administrator.
	SetApproval(ctx context.Context, caller domain.Address, id string, approved bool) error
	// ResetVotes clears counters and voters to reopen voting. Administrator.
	ResetVotes(ctx context.Context, caller domain.Address, id string) error

	// Vote casts a ballot. Caller must hold a credential or be the owner
	// identity, and may vote once per round.
	Vote(ctx context.Context, caller domain.Address, id string, ballot domain.Ballot) (VoteResult, error)
	// FinalizeVoting applies the time based approval rule without a ballot.
	FinalizeVoting(ctx context.Context, caller domain.Address, id string) (domain.VotingStatus, error)

	// RegisterProvider self-registers caller on a running campaign.
	RegisterProvider(ctx context.Context, caller domain.Address, id string) (*domain.Provider, error)
	// RemoveProvider removes caller's own provider record.
	RemoveProvider(ctx context.Context, caller domain.Address, id string) error
	// RecordActivity sets a provider's activity counters. Administrator;
	// counters never decrease.
	RecordActivity(ctx context.Context, caller domain.Address, req ActivityReq) error
	// ResetProviderRewards zeroes a provider's rewards. Administrator.
	ResetProviderRewards(ctx context.Context, caller domain.Address, id string, provider domain.Address) error

	// AddBalance pulls amount from caller, skims the fee to the fee
	// receiver and credits the rest to the campaign. Owner only.
	AddBalance(ctx context.Context, caller domain.Address, id string, amount domain.Amount) (DepositResult, error)
	// Withdraw pays the entire campaign balance to caller. Owner only.
	Withdraw(ctx context.Context, caller domain.Address, id string) (domain.Amount, error)
	// ReturnAllBalances pays every campaign's balance to its owner.
	// Administrator.
	ReturnAllBalances(ctx context.Context, caller domain.Address) (domain.Amount, error)
	// Distribute runs one reward distribution pass. Administrator.
	Distribute(ctx context.Context, caller domain.Address) (domain.Distribution, error)
	// Claim pays out caller's accrued claimable balance.
	Claim(ctx context.Context, caller domain.Address) (domain.Amount, error)
	// UpdateSettings applies the non-nil fields. Owner or administrator.
	UpdateSettings(ctx context.Context, caller domain.Address, upd SettingsUpdate) (domain.Settings, error)

	Campaign(ctx context.Context, id string) (*domain.Campaign, error)
	Campaigns(ctx context.Context) ([]*domain.Campaign, error)
	Provider(ctx context.Context, id string, addr domain.Address) (*domain.Provider, error)
	Claimable(ctx context.Context, addr domain.Address) (domain.Amount, error)
	Settings(ctx context.Context) (domain.Settings, error)
	// Quote prices the given activity at current settings.
	Quote(ctx context.Context, clicks, impressions uint64) (domain.Amount, error)
}

// CreateCampaignReq carries campaign creation parameters. StartDate is the
// time based approval threshold.
type CreateCampaignReq struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
}

// ActivityReq sets absolute activity counters for one provider.
type ActivityReq struct {
	CampaignID  string
	Provider    domain.Address
	Clicks      uint64
	Impressions uint64
}

// VoteResult reports the effect of a ballot.
type VoteResult struct {
	domain.VoteOutcome
	// Reward is what the voter accrued in the claim ledger.
	Reward domain.Amount
}

// DepositResult splits a deposit.
type DepositResult struct {
	Fee domain.Amount
	Net domain.Amount
}

// SettingsUpdate lists optional changes; nil fields are left alone.
type SettingsUpdate struct {
	CostPerClick      *domain.Amount
	CostPerImpression *domain.Amount
	AddBalanceFee     *uint64
	VoteRewardPercent *uint64
	VoteThreshold     *uint64
	FeeReceiver       *domain.Address
}
