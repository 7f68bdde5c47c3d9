package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"mesa-ledger/internal/core/domain"
	"mesa-ledger/internal/core/port"
)

// CreateCampaign registers a campaign owned by caller, who must hold the
// campaign creator role. Without the approval gate the campaign starts out
// approved.
func (u *LedgerUseCase) CreateCampaign(ctx context.Context, caller domain.Address, req port.CreateCampaignReq) (*domain.Campaign, error) {
	var created *domain.Campaign
	err := u.run(ctx, "create_campaign", caller, func(t *tx) error {
		if err := u.requireRole(ctx, domain.RoleCampaignCreator, caller); err != nil {
			return err
		}
		c, err := domain.NewCampaign(req.ID, caller, req.StartDate, req.EndDate, t.now)
		if err != nil {
			return err
		}
		if !u.opts.ApprovalRequired {
			c.SetApproval(true)
		}
		if err = t.state.Campaigns.Add(c); err != nil {
			return err
		}
		created = c.Clone()
		t.record(t.event(domain.EventCampaignCreated).
			ForCampaign(c.ID).
			About(c.Owner).
			With("index", strconv.Itoa(c.Index)).
			With("status", string(c.Status)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RemoveCampaign refunds the remaining balance to the owner so removal never
// destroys value.
func (u *LedgerUseCase) RemoveCampaign(ctx context.Context, caller domain.Address, id string) error {
	return u.run(ctx, "remove_campaign", caller, func(t *tx) error {
		if err := u.requireRole(ctx, domain.RoleCampaignCreator, caller); err != nil {
			return err
		}
		c, err := t.state.Campaigns.Remove(id)
		if err != nil {
			return err
		}
		refund := c.Drain()
		t.pay(c.Owner, refund)
		t.record(t.event(domain.EventCampaignRemoved).ForCampaign(id).About(c.Owner).WithAmount(refund))
		return nil
	})
}

// SetLive toggles whether the campaign takes part in distributions.
func (u *LedgerUseCase) SetLive(ctx context.Context, caller domain.Address, id string, live bool) error {
	return u.run(ctx, "set_live", caller, func(t *tx) error {
		c, err := t.state.Campaigns.Get(id)
		if err != nil {
			return err
		}
		if err = u.requireOwnerOrAdmin(ctx, c, caller); err != nil {
			return err
		}
		c.Live = live
		t.record(t.event(domain.EventCampaignLive).ForCampaign(id).With("live", strconv.FormatBool(live)))
		return nil
	})
}

// SetEndDate moves the end of the campaign. The new date must still follow
// the start date.
func (u *LedgerUseCase) SetEndDate(ctx context.Context, caller domain.Address, id string, end time.Time) error {
	return u.run(ctx, "set_end_date", caller, func(t *tx) error {
		c, err := t.state.Campaigns.Get(id)
		if err != nil {
			return err
		}
		if err = u.requireOwnerOrAdmin(ctx, c, caller); err != nil {
			return err
		}
		if !end.After(c.StartDate) {
			return fmt.Errorf("%w: end date must be after start date", domain.ErrInvalidParameter)
		}
		c.EndDate = end.UTC()
		t.record(t.event(domain.EventCampaignEndDate).ForCampaign(id).With("end_date", c.EndDate.Format(time.RFC3339)))
		return nil
	})
}

// SetApproval lets an administrator settle the vote by decree.
func (u *LedgerUseCase) SetApproval(ctx context.Context, caller domain.Address, id string, approved bool) error {
	return u.run(ctx, "set_approval", caller, func(t *tx) error {
		if err := u.requireRole(ctx, domain.RoleAdmin, caller); err != nil {
			return err
		}
		c, err := t.state.Campaigns.Get(id)
		if err != nil {
			return err
		}
		c.SetApproval(approved)
		t.record(t.event(domain.EventCampaignApproval).ForCampaign(id).With("status", string(c.Status)))
		return nil
	})
}

// ResetVotes clears tallies and voters and puts the campaign back to
// pending.
func (u *LedgerUseCase) ResetVotes(ctx context.Context, caller domain.Address, id string) error {
	return u.run(ctx, "reset_votes", caller, func(t *tx) error {
		if err := u.requireRole(ctx, domain.RoleAdmin, caller); err != nil {
			return err
		}
		c, err := t.state.Campaigns.Get(id)
		if err != nil {
			return err
		}
		c.ResetVotes()
		t.record(t.event(domain.EventVotesReset).ForCampaign(id).With("status", string(c.Status)))
		return nil
	})
}

// RegisterProvider signs caller up to serve the campaign.
func (u *LedgerUseCase) RegisterProvider(ctx context.Context, caller domain.Address, id string) (*domain.Provider, error) {
	var registered domain.Provider
	err := u.run(ctx, "register_provider", caller, func(t *tx) error {
		c, err := t.state.Campaigns.Get(id)
		if err != nil {
			return err
		}
		p, err := c.RegisterProvider(caller, t.now)
		if err != nil {
			return err
		}
		registered = *p
		t.record(t.event(domain.EventProviderRegistered).ForCampaign(id).About(caller).With("index", strconv.Itoa(p.Index)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &registered, nil
}

// RemoveProvider withdraws caller from the campaign and drops its activity
// record. Later providers move up one index.
func (u *LedgerUseCase) RemoveProvider(ctx context.Context, caller domain.Address, id string) error {
	return u.run(ctx, "remove_provider", caller, func(t *tx) error {
		c, err := t.state.Campaigns.Get(id)
		if err != nil {
			return err
		}
		if _, err = c.Providers.Remove(caller); err != nil {
			return err
		}
		t.record(t.event(domain.EventProviderRemoved).ForCampaign(id).About(caller))
		return nil
	})
}

// RecordActivity stores cumulative click and impression counts reported by
// an administrator. Counts never go down.
func (u *LedgerUseCase) RecordActivity(ctx context.Context, caller domain.Address, req port.ActivityReq) error {
	return u.run(ctx, "record_activity", caller, func(t *tx) error {
		if err := u.requireRole(ctx, domain.RoleAdmin, caller); err != nil {
			return err
		}
		c, err := t.state.Campaigns.Get(req.CampaignID)
		if err != nil {
			return err
		}
		p, err := c.Providers.Get(req.Provider)
		if err != nil {
			return err
		}
		if req.Clicks < p.Clicks || req.Impressions < p.Impressions {
			return fmt.Errorf("%w: activity counters cannot decrease (clicks %d->%d, impressions %d->%d)",
				domain.ErrInvalidParameter, p.Clicks, req.Clicks, p.Impressions, req.Impressions)
		}
		p.Clicks = req.Clicks
		p.Impressions = req.Impressions
		t.record(t.event(domain.EventProviderActivity).
			ForCampaign(req.CampaignID).
			About(req.Provider).
			With("clicks", strconv.FormatUint(req.Clicks, 10)).
			With("impressions", strconv.FormatUint(req.Impressions, 10)))
		return nil
	})
}

// ResetProviderRewards zeroes the accumulated reward of one provider so
// the next distribution pays it afresh.
func (u *LedgerUseCase) ResetProviderRewards(ctx context.Context, caller domain.Address, id string, provider domain.Address) error {
	return u.run(ctx, "reset_provider_rewards", caller, func(t *tx) error {
		if err := u.requireRole(ctx, domain.RoleAdmin, caller); err != nil {
			return err
		}
		c, err := t.state.Campaigns.Get(id)
		if err != nil {
			return err
		}
		p, err := c.Providers.Get(provider)
		if err != nil {
			return err
		}
		previous := p.Rewards
		p.Rewards = domain.Amount{}
		t.record(t.event(domain.EventProviderReset).ForCampaign(id).About(provider).WithAmount(previous))
		return nil
	})
}
