package usecase

import (
	"context"
	"fmt"
	"strconv"

	"mesa-ledger/internal/core/domain"
	"mesa-ledger/internal/core/port"
)

// AddBalance pulls the full amount from the owner. The fee goes to the fee
// receiver and the rest to the treasury, where it backs the campaign
// balance.
func (u *LedgerUseCase) AddBalance(ctx context.Context, caller domain.Address, id string, amount domain.Amount) (port.DepositResult, error) {
	var res port.DepositResult
	err := u.run(ctx, "add_balance", caller, func(t *tx) error {
		if amount.IsZero() {
			return fmt.Errorf("%w: deposit must be positive", domain.ErrInvalidParameter)
		}
		c, err := t.state.Campaigns.Get(id)
		if err != nil {
			return err
		}
		if err = requireCampaignOwner(c, caller); err != nil {
			return err
		}
		res.Fee, res.Net = t.state.Settings.SplitDeposit(amount)
		t.pull(caller, t.state.Settings.FeeReceiver, res.Fee)
		t.pull(caller, u.value.Treasury(), res.Net)
		c.Credit(res.Net)
		t.record(t.event(domain.EventBalanceAdded).
			ForCampaign(id).
			WithAmount(amount).
			With("fee", res.Fee.Dec()).
			With("net", res.Net.Dec()).
			With("balance", c.Balance.Dec()))
		return nil
	})
	if err != nil {
		return port.DepositResult{}, err
	}
	return res, nil
}

// Withdraw pays the owner the whole balance. An empty balance is a no-op.
func (u *LedgerUseCase) Withdraw(ctx context.Context, caller domain.Address, id string) (domain.Amount, error) {
	var paid domain.Amount
	err := u.run(ctx, "withdraw", caller, func(t *tx) error {
		c, err := t.state.Campaigns.Get(id)
		if err != nil {
			return err
		}
		if err = requireCampaignOwner(c, caller); err != nil {
			return err
		}
		paid = c.Drain()
		t.pay(caller, paid)
		t.record(t.event(domain.EventBalanceWithdrawn).ForCampaign(id).WithAmount(paid))
		return nil
	})
	if err != nil {
		return domain.Amount{}, err
	}
	return paid, nil
}

// ReturnAllBalances drains every campaign back to its owner.
func (u *LedgerUseCase) ReturnAllBalances(ctx context.Context, caller domain.Address) (domain.Amount, error) {
	var total domain.Amount
	err := u.run(ctx, "return_all_balances", caller, func(t *tx) error {
		if err := u.requireRole(ctx, domain.RoleAdmin, caller); err != nil {
			return err
		}
		for _, c := range t.state.Campaigns.All() {
			if c.Balance.IsZero() {
				continue
			}
			amount := c.Drain()
			total = domain.Sum(total, amount)
			t.pay(c.Owner, amount)
			t.record(t.event(domain.EventBalancesReturned).ForCampaign(c.ID).About(c.Owner).WithAmount(amount))
		}
		return nil
	})
	if err != nil {
		return domain.Amount{}, err
	}
	return total, nil
}

// Distribute runs one distribution pass. Every increment is credited to the
// claim ledger entry of the caller that ran the pass, not to the provider
// that earned it.
func (u *LedgerUseCase) Distribute(ctx context.Context, caller domain.Address) (domain.Distribution, error) {
	var d domain.Distribution
	err := u.run(ctx, "distribute", caller, func(t *tx) error {
		if err := u.requireRole(ctx, domain.RoleAdmin, caller); err != nil {
			return err
		}
		d = domain.Distribute(t.state.Campaigns, t.state.Settings, t.now)
		for _, p := range d.Payouts {
			t.state.Claims.Credit(caller, p.Amount)
			t.record(t.event(domain.EventRewardsDistributed).
				ForCampaign(p.CampaignID).
				About(p.Provider).
				WithAmount(p.Amount).
				With("exhausted", strconv.FormatBool(p.Exhausted)))
		}
		return nil
	})
	if err != nil {
		return domain.Distribution{}, err
	}
	return d, nil
}

// Claim pays out caller's accrued balance from the treasury.
func (u *LedgerUseCase) Claim(ctx context.Context, caller domain.Address) (domain.Amount, error) {
	var amount domain.Amount
	err := u.run(ctx, "claim", caller, func(t *tx) error {
		var err error
		if amount, err = t.state.Claims.Take(caller); err != nil {
			return err
		}
		t.pay(caller, amount)
		t.record(t.event(domain.EventRewardsClaimed).About(caller).WithAmount(amount))
		return nil
	})
	if err != nil {
		return domain.Amount{}, err
	}
	return amount, nil
}
