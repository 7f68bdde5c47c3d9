package domain

import "fmt"

// Configuration ceilings.
const (
	MaxAddBalanceFee     = 50
	MaxVoteRewardPercent = 10
	MaxVoteThreshold     = 1000

	DefaultAddBalanceFee     = 20
	DefaultVoteRewardPercent = 1
	DefaultVoteThreshold     = 10
)

// Settings holds the global pricing and governance scalars. Percentages are
// whole percents. Writes go through the Set* methods, which reject values
// above the fixed ceilings and leave the receiver untouched on error.
type Settings struct {
	CostPerClick      Amount
	CostPerImpression Amount
	AddBalanceFee     uint64
	VoteRewardPercent uint64
	VoteThreshold     uint64
	FeeReceiver       Address
}

// DefaultSettings returns the launch configuration.
func DefaultSettings(feeReceiver Address) Settings {
	return Settings{
		CostPerClick:      DefaultCostPerClick,
		CostPerImpression: DefaultCostPerImpression,
		AddBalanceFee:     DefaultAddBalanceFee,
		VoteRewardPercent: DefaultVoteRewardPercent,
		VoteThreshold:     DefaultVoteThreshold,
		FeeReceiver:       feeReceiver,
	}
}

// SetCostPerClick sets the base price of one click. It must be positive and
// at most MaxCostPerClick.
func (s *Settings) SetCostPerClick(v Amount) error {
	if v.IsZero() || v.Cmp(&MaxCostPerClick) > 0 {
		return fmt.Errorf("%w: cost per click %s outside (0, %s]", ErrInvalidParameter, v.Dec(), MaxCostPerClick.Dec())
	}
	s.CostPerClick = v
	return nil
}

// SetCostPerImpression sets the base price of one impression. It must be
// positive and at most MaxCostPerImpression.
func (s *Settings) SetCostPerImpression(v Amount) error {
	if v.IsZero() || v.Cmp(&MaxCostPerImpression) > 0 {
		return fmt.Errorf("%w: cost per impression %s outside (0, %s]", ErrInvalidParameter, v.Dec(), MaxCostPerImpression.Dec())
	}
	s.CostPerImpression = v
	return nil
}

// SetAddBalanceFee sets the percentage skimmed from every deposit.
func (s *Settings) SetAddBalanceFee(percent uint64) error {
	if percent > MaxAddBalanceFee {
		return fmt.Errorf("%w: add balance fee %d%% above %d%%", ErrInvalidParameter, percent, MaxAddBalanceFee)
	}
	s.AddBalanceFee = percent
	return nil
}

// SetVoteRewardPercent sets the percentage of the fee receiver's balance
// shared out per ballot. Zero disables vote rewards.
func (s *Settings) SetVoteRewardPercent(percent uint64) error {
	if percent > MaxVoteRewardPercent {
		return fmt.Errorf("%w: vote reward %d%% above %d%%", ErrInvalidParameter, percent, MaxVoteRewardPercent)
	}
	s.VoteRewardPercent = percent
	return nil
}

// SetVoteThreshold sets how many ballots on one side settle a campaign's
// approval.
func (s *Settings) SetVoteThreshold(n uint64) error {
	if n == 0 || n > MaxVoteThreshold {
		return fmt.Errorf("%w: vote threshold %d outside [1, %d]", ErrInvalidParameter, n, MaxVoteThreshold)
	}
	s.VoteThreshold = n
	return nil
}

// SetFeeReceiver sets the account that collects deposit fees and funds
// vote rewards.
func (s *Settings) SetFeeReceiver(addr Address) error {
	if addr == ZeroAddress {
		return fmt.Errorf("%w: zero fee receiver", ErrInvalidParameter)
	}
	s.FeeReceiver = addr
	return nil
}

// Validate checks a full configuration, e.g. one loaded from storage or
// the environment.
func (s Settings) Validate() error {
	check := Settings{}
	for _, err := range []error{
		check.SetCostPerClick(s.CostPerClick),
		check.SetCostPerImpression(s.CostPerImpression),
		check.SetAddBalanceFee(s.AddBalanceFee),
		check.SetVoteRewardPercent(s.VoteRewardPercent),
		check.SetVoteThreshold(s.VoteThreshold),
		check.SetFeeReceiver(s.FeeReceiver),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// SplitDeposit returns the fee skimmed from a deposit and the remainder that
// reaches the campaign.
func (s Settings) SplitDeposit(amount Amount) (fee, net Amount) {
	fee = divU(mulU(amount, s.AddBalanceFee), 100)
	return fee, sub(amount, fee)
}

// VoteReward computes the ballot reward out of the fee receiver's balance.
// The percentage is divided by the vote count before it is applied, and
// that division floors, so the reward drops to zero once totalVotes exceeds
// VoteRewardPercent.
func (s Settings) VoteReward(feeReceiverBalance Amount, totalVotes uint64) Amount {
	if s.VoteRewardPercent == 0 || totalVotes == 0 {
		return Amount{}
	}
	share := s.VoteRewardPercent / totalVotes
	reward := divU(mulU(feeReceiverBalance, share), 100)
	if reward.Cmp(&feeReceiverBalance) > 0 {
		return Amount{}
	}
	return reward
}
