package usecase

import (
	"context"
	"fmt"
	"strconv"

	"mesa-ledger/internal/core/domain"
	"mesa-ledger/internal/core/port"
)

// Vote casts caller's ballot. The voter accrues a share of the fee
// receiver's balance in the claim ledger, and the same amount moves from
// the fee receiver into the treasury so the claim is funded.
func (u *LedgerUseCase) Vote(ctx context.Context, caller domain.Address, id string, ballot domain.Ballot) (port.VoteResult, error) {
	var res port.VoteResult
	err := u.run(ctx, "vote", caller, func(t *tx) error {
		c, err := t.state.Campaigns.Get(id)
		if err != nil {
			return err
		}
		if err = u.requireEligibleVoter(ctx, t.state, caller); err != nil {
			return err
		}
		before := c.Status
		outcome, err := c.CastVote(caller, ballot, t.state.Settings.VoteThreshold, t.now)
		if err != nil {
			return err
		}
		res.VoteOutcome = outcome

		t.record(t.event(domain.EventVoteCast).
			ForCampaign(id).
			With("ballot", strconv.Itoa(int(ballot))).
			With("votes_for", strconv.FormatUint(c.VotesFor, 10)).
			With("votes_against", strconv.FormatUint(c.VotesAgainst, 10)))
		if outcome.ProviderRegistered {
			t.record(t.event(domain.EventProviderRegistered).ForCampaign(id).About(caller))
		}
		if c.Status != before {
			t.record(statusEvent(t, c))
		}

		feeReceiver := t.state.Settings.FeeReceiver
		feeBalance, err := u.value.BalanceOf(ctx, feeReceiver)
		if err != nil {
			return fmt.Errorf("fee receiver balance: %w", err)
		}
		res.Reward = t.state.Settings.VoteReward(feeBalance, outcome.TotalVotes)
		if !res.Reward.IsZero() {
			t.pull(feeReceiver, u.value.Treasury(), res.Reward)
			t.state.Claims.Credit(caller, res.Reward)
			t.record(t.event(domain.EventVoteRewardCredited).ForCampaign(id).About(caller).WithAmount(res.Reward))
		}
		return nil
	})
	if err != nil {
		return port.VoteResult{}, err
	}
	return res, nil
}

// FinalizeVoting lets anyone apply the time based approval rule.
func (u *LedgerUseCase) FinalizeVoting(ctx context.Context, caller domain.Address, id string) (domain.VotingStatus, error) {
	var status domain.VotingStatus
	err := u.run(ctx, "finalize_voting", caller, func(t *tx) error {
		c, err := t.state.Campaigns.Get(id)
		if err != nil {
			return err
		}
		before := c.Status
		if status, err = c.FinalizeVoting(t.state.Settings.VoteThreshold, t.now); err != nil {
			return err
		}
		if status != before {
			t.record(statusEvent(t, c))
		}
		return nil
	})
	return status, err
}

// requireEligibleVoter admits the owner identity or any holder of a
// qualifying credential.
func (u *LedgerUseCase) requireEligibleVoter(ctx context.Context, s *domain.State, addr domain.Address) error {
	if addr == s.Owner {
		return nil
	}
	n, err := u.creds.BalanceOf(ctx, addr)
	if err != nil {
		return fmt.Errorf("credential lookup: %w", err)
	}
	if n == 0 {
		return domain.ErrNotEligible
	}
	return nil
}

func statusEvent(t *tx, c *domain.Campaign) domain.Event {
	name := domain.EventCampaignApproved
	if c.Status == domain.VotingRejected {
		name = domain.EventCampaignRejected
	}
	return t.event(name).ForCampaign(c.ID).With("status", string(c.Status))
}
