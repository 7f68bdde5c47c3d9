package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/gorm"

	"mesa-ledger/internal/core/domain"
)

// StateStore implements port.StateRepository on an embedded SQLite file
// through gorm. It suits single node deployments and local development.
type StateStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewStateStore migrates the schema and returns a store.
func NewStateStore(db *gorm.DB, logger *slog.Logger) (*StateStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	err := db.AutoMigrate(
		&settingsRow{},
		&campaignRow{},
		&providerRow{},
		&voterRow{},
		&claimRow{},
		&tokenBalanceRow{},
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite automigrate: %w", err)
	}
	return &StateStore{db: db, logger: logger}, nil
}

// Load reads the snapshot back in index order. found is false until the
// first Save.
func (s *StateStore) Load(ctx context.Context) (*domain.State, bool, error) {
	db := s.db.WithContext(ctx)

	var meta settingsRow
	err := db.Where("id = ?", 1).First(&meta).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	settings := domain.Settings{
		AddBalanceFee:     meta.AddBalanceFee,
		VoteRewardPercent: meta.VoteRewardPercent,
		VoteThreshold:     meta.VoteThreshold,
		FeeReceiver:       common.HexToAddress(meta.FeeReceiver),
	}
	if settings.CostPerClick, err = domain.ParseAmount(meta.CostPerClick); err != nil {
		return nil, false, fmt.Errorf("cost_per_click: %w", err)
	}
	if settings.CostPerImpression, err = domain.ParseAmount(meta.CostPerImpression); err != nil {
		return nil, false, fmt.Errorf("cost_per_impression: %w", err)
	}
	state := domain.NewState(common.HexToAddress(meta.Owner), settings)

	var campaigns []campaignRow
	if err = db.Order("idx").Find(&campaigns).Error; err != nil {
		return nil, false, err
	}
	for _, row := range campaigns {
		balance, err := domain.ParseAmount(row.Balance)
		if err != nil {
			return nil, false, fmt.Errorf("campaign %q balance: %w", row.ID, err)
		}
		c := &domain.Campaign{
			ID:           row.ID,
			Owner:        common.HexToAddress(row.Owner),
			Live:         row.Live,
			Status:       domain.VotingStatus(row.Status),
			VotesFor:     row.VotesFor,
			VotesAgainst: row.VotesAgainst,
			Balance:      balance,
			StartDate:    row.StartDate.UTC(),
			EndDate:      row.EndDate.UTC(),
			Providers:    domain.NewProviderSet(),
			CreatedAt:    row.CreatedAt.UTC(),
		}
		if err = state.Campaigns.Add(c); err != nil {
			return nil, false, err
		}
	}

	var providers []providerRow
	if err = db.Order("campaign_id, idx").Find(&providers).Error; err != nil {
		return nil, false, err
	}
	for _, row := range providers {
		c, err := state.Campaigns.Get(row.CampaignID)
		if err != nil {
			return nil, false, err
		}
		p, err := c.Providers.Add(common.HexToAddress(row.Address))
		if err != nil {
			return nil, false, err
		}
		p.Clicks, p.Impressions = row.Clicks, row.Impressions
		if p.Rewards, err = domain.ParseAmount(row.Rewards); err != nil {
			return nil, false, fmt.Errorf("provider %s rewards: %w", row.Address, err)
		}
	}

	var voters []voterRow
	if err = db.Order("campaign_id, position").Find(&voters).Error; err != nil {
		return nil, false, err
	}
	for _, row := range voters {
		c, err := state.Campaigns.Get(row.CampaignID)
		if err != nil {
			return nil, false, err
		}
		c.Voters = append(c.Voters, common.HexToAddress(row.Address))
	}

	var claims []claimRow
	if err = db.Find(&claims).Error; err != nil {
		return nil, false, err
	}
	for _, row := range claims {
		amount, err := domain.ParseAmount(row.Amount)
		if err != nil {
			return nil, false, fmt.Errorf("claimable %s: %w", row.Address, err)
		}
		state.Claims.Credit(common.HexToAddress(row.Address), amount)
	}

	var balances []tokenBalanceRow
	if err = db.Find(&balances).Error; err != nil {
		return nil, false, err
	}
	state.Balances = make(map[domain.Address]domain.Amount, len(balances))
	for _, row := range balances {
		amount, err := domain.ParseAmount(row.Amount)
		if err != nil {
			return nil, false, fmt.Errorf("token balance %s: %w", row.Address, err)
		}
		state.Balances[common.HexToAddress(row.Address)] = amount
	}
	return state, true, nil
}

// Save replaces every table's contents with state inside one transaction.
func (s *StateStore) Save(ctx context.Context, state *domain.State) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{&tokenBalanceRow{}, &claimRow{}, &voterRow{}, &providerRow{}, &campaignRow{}} {
			if err := all.Delete(model).Error; err != nil {
				return err
			}
		}

		cfg := state.Settings
		meta := settingsRow{
			ID:                1,
			Owner:             state.Owner.Hex(),
			CostPerClick:      cfg.CostPerClick.Dec(),
			CostPerImpression: cfg.CostPerImpression.Dec(),
			AddBalanceFee:     cfg.AddBalanceFee,
			VoteRewardPercent: cfg.VoteRewardPercent,
			VoteThreshold:     cfg.VoteThreshold,
			FeeReceiver:       cfg.FeeReceiver.Hex(),
			UpdatedAt:         time.Now().UTC(),
		}
		if err := tx.Save(&meta).Error; err != nil {
			return err
		}

		var (
			campaigns []campaignRow
			providers []providerRow
			voters    []voterRow
			claims    []claimRow
		)
		for _, c := range state.Campaigns.All() {
			campaigns = append(campaigns, campaignRow{
				ID:           c.ID,
				Idx:          c.Index,
				Owner:        c.Owner.Hex(),
				Live:         c.Live,
				Status:       string(c.Status),
				VotesFor:     c.VotesFor,
				VotesAgainst: c.VotesAgainst,
				Balance:      c.Balance.Dec(),
				StartDate:    c.StartDate,
				EndDate:      c.EndDate,
				CreatedAt:    c.CreatedAt,
			})
			for _, p := range c.Providers.All() {
				providers = append(providers, providerRow{
					CampaignID:  c.ID,
					Address:     p.Address.Hex(),
					Idx:         p.Index,
					Clicks:      p.Clicks,
					Impressions: p.Impressions,
					Rewards:     p.Rewards.Dec(),
				})
			}
			for i, v := range c.Voters {
				voters = append(voters, voterRow{CampaignID: c.ID, Address: v.Hex(), Position: i + 1})
			}
		}
		for addr, amount := range state.Claims.Entries() {
			claims = append(claims, claimRow{Address: addr.Hex(), Amount: amount.Dec()})
		}
		var balances []tokenBalanceRow
		for addr, amount := range state.Balances {
			if amount.IsZero() {
				continue
			}
			balances = append(balances, tokenBalanceRow{Address: addr.Hex(), Amount: amount.Dec()})
		}

		if len(campaigns) > 0 {
			if err := tx.CreateInBatches(campaigns, 100).Error; err != nil {
				return err
			}
		}
		if len(providers) > 0 {
			if err := tx.CreateInBatches(providers, 100).Error; err != nil {
				return err
			}
		}
		if len(voters) > 0 {
			if err := tx.CreateInBatches(voters, 100).Error; err != nil {
				return err
			}
		}
		if len(claims) > 0 {
			if err := tx.CreateInBatches(claims, 100).Error; err != nil {
				return err
			}
		}
		if len(balances) > 0 {
			if err := tx.CreateInBatches(balances, 100).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("sqlite state save failed", slog.Any("error", err))
	}
	return err
}
