package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mesa-ledger/internal/core/domain"
	"mesa-ledger/internal/core/port"
)

// SeedCampaigns is the number of demo campaigns Seed creates.
const SeedCampaigns = 3

// Seed creates demo campaigns owned by creator on an empty ledger and funds
// each with deposit when it is non-zero. A ledger that already holds
// campaigns is left untouched.
func Seed(ctx context.Context, svc port.LedgerUseCase, creator domain.Address, deposit domain.Amount, logger *slog.Logger) error {
	existing, err := svc.Campaigns(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("seed skipped", slog.Int("campaigns", len(existing)))
		return nil
	}

	now := time.Now().UTC()
	for i := 1; i <= SeedCampaigns; i++ {
		id := fmt.Sprintf("demo-%d", i)
		_, err = svc.CreateCampaign(ctx, creator, port.CreateCampaignReq{
			ID:        id,
			StartDate: now.AddDate(0, 0, i),
			EndDate:   now.AddDate(0, 1, 0),
		})
		if err != nil {
			return fmt.Errorf("seed campaign %s: %w", id, err)
		}
		if deposit.IsZero() {
			continue
		}
		if _, err = svc.AddBalance(ctx, creator, id, deposit); err != nil {
			return fmt.Errorf("fund campaign %s: %w", id, err)
		}
	}
	logger.Info("demo campaigns seeded", slog.Int("campaigns", SeedCampaigns))
	return nil
}
