package usecase

import (
	"context"
	"strconv"

	"mesa-ledger/internal/core/domain"
	"mesa-ledger/internal/core/port"
)

// UpdateSettings applies every requested change or none of them.
func (u *LedgerUseCase) UpdateSettings(ctx context.Context, caller domain.Address, upd port.SettingsUpdate) (domain.Settings, error) {
	var out domain.Settings
	err := u.run(ctx, "update_settings", caller, func(t *tx) error {
		if err := u.requireConfigurer(ctx, t.state, caller); err != nil {
			return err
		}
		s := t.state.Settings
		e := t.event(domain.EventSettingsChanged)
		if upd.CostPerClick != nil {
			if err := s.SetCostPerClick(*upd.CostPerClick); err != nil {
				return err
			}
			e = e.With("cost_per_click", s.CostPerClick.Dec())
		}
		if upd.CostPerImpression != nil {
			if err := s.SetCostPerImpression(*upd.CostPerImpression); err != nil {
				return err
			}
			e = e.With("cost_per_impression", s.CostPerImpression.Dec())
		}
		if upd.AddBalanceFee != nil {
			if err := s.SetAddBalanceFee(*upd.AddBalanceFee); err != nil {
				return err
			}
			e = e.With("add_balance_fee", strconv.FormatUint(s.AddBalanceFee, 10))
		}
		if upd.VoteRewardPercent != nil {
			if err := s.SetVoteRewardPercent(*upd.VoteRewardPercent); err != nil {
				return err
			}
			e = e.With("vote_reward_percent", strconv.FormatUint(s.VoteRewardPercent, 10))
		}
		if upd.VoteThreshold != nil {
			if err := s.SetVoteThreshold(*upd.VoteThreshold); err != nil {
				return err
			}
			e = e.With("vote_threshold", strconv.FormatUint(s.VoteThreshold, 10))
		}
		if upd.FeeReceiver != nil {
			if err := requireSeparateFeeReceiver(*upd.FeeReceiver, u.value.Treasury()); err != nil {
				return err
			}
			if err := s.SetFeeReceiver(*upd.FeeReceiver); err != nil {
				return err
			}
			e = e.With("fee_receiver", s.FeeReceiver.Hex())
		}
		t.state.Settings = s
		out = s
		t.record(e)
		return nil
	})
	if err != nil {
		return domain.Settings{}, err
	}
	return out, nil
}
