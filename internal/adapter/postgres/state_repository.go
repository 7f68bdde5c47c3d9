package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-ledger/internal/core/domain"
)

// StateRepository implements port.StateRepository on PostgreSQL. Every Save
// rewrites the whole snapshot inside one serializable transaction.
type StateRepository struct {
	pool *pgxpool.Pool
}

// NewStateRepository returns a new repository instance.
func NewStateRepository(pool *pgxpool.Pool) *StateRepository {
	return &StateRepository{pool: pool}
}

// Load reads the snapshot. Campaigns and providers are restored in index
// order so the registry reproduces the stored indices.
func (r *StateRepository) Load(ctx context.Context) (*domain.State, bool, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		owner, feeReceiver string
		cpc, cpi           string
		settings           domain.Settings
	)
	err = tx.QueryRow(ctx, `
        SELECT owner, cost_per_click::text, cost_per_impression::text,
               add_balance_fee, vote_reward_percent, vote_threshold, fee_receiver
        FROM ledger_settings WHERE id = 1`).
		Scan(&owner, &cpc, &cpi, &settings.AddBalanceFee, &settings.VoteRewardPercent, &settings.VoteThreshold, &feeReceiver)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if settings.CostPerClick, err = domain.ParseAmount(cpc); err != nil {
		return nil, false, fmt.Errorf("cost_per_click: %w", err)
	}
	if settings.CostPerImpression, err = domain.ParseAmount(cpi); err != nil {
		return nil, false, fmt.Errorf("cost_per_impression: %w", err)
	}
	settings.FeeReceiver = hexAddress(feeReceiver)
	state := domain.NewState(hexAddress(owner), settings)

	if err = loadCampaigns(ctx, tx, state); err != nil {
		return nil, false, err
	}
	if err = loadProviders(ctx, tx, state); err != nil {
		return nil, false, err
	}
	if err = loadVoters(ctx, tx, state); err != nil {
		return nil, false, err
	}
	if err = loadClaims(ctx, tx, state); err != nil {
		return nil, false, err
	}
	if state.Balances, err = loadBalances(ctx, tx); err != nil {
		return nil, false, err
	}
	return state, true, nil
}

func loadCampaigns(ctx context.Context, tx pgx.Tx, state *domain.State) error {
	rows, err := tx.Query(ctx, `
        SELECT id, owner, live, status, votes_for, votes_against, balance::text,
               start_date, end_date, created_at
        FROM campaigns ORDER BY idx`)
	if err != nil {
		return err
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Campaign, error) {
		var (
			c              = &domain.Campaign{Providers: domain.NewProviderSet()}
			owner, balance string
			status         string
		)
		if err := row.Scan(&c.ID, &owner, &c.Live, &status, &c.VotesFor, &c.VotesAgainst, &balance,
			&c.StartDate, &c.EndDate, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Owner = hexAddress(owner)
		c.Status = domain.VotingStatus(status)
		bal, err := domain.ParseAmount(balance)
		if err != nil {
			return nil, fmt.Errorf("campaign %q balance: %w", c.ID, err)
		}
		c.Balance = bal
		c.StartDate, c.EndDate, c.CreatedAt = c.StartDate.UTC(), c.EndDate.UTC(), c.CreatedAt.UTC()
		return c, nil
	})
	if err != nil {
		return err
	}
	for _, c := range campaigns {
		if err = state.Campaigns.Add(c); err != nil {
			return err
		}
	}
	return nil
}

func loadProviders(ctx context.Context, tx pgx.Tx, state *domain.State) error {
	rows, err := tx.Query(ctx, `
        SELECT campaign_id, address, clicks, impressions, rewards::text
        FROM campaign_providers ORDER BY campaign_id, idx`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			campaignID, address, rewards string
			clicks, impressions          uint64
		)
		if err = rows.Scan(&campaignID, &address, &clicks, &impressions, &rewards); err != nil {
			return err
		}
		c, err := state.Campaigns.Get(campaignID)
		if err != nil {
			return err
		}
		p, err := c.Providers.Add(hexAddress(address))
		if err != nil {
			return err
		}
		p.Clicks, p.Impressions = clicks, impressions
		if p.Rewards, err = domain.ParseAmount(rewards); err != nil {
			return fmt.Errorf("provider %s rewards: %w", address, err)
		}
	}
	return rows.Err()
}

func loadVoters(ctx context.Context, tx pgx.Tx, state *domain.State) error {
	rows, err := tx.Query(ctx, `SELECT campaign_id, address FROM campaign_voters ORDER BY campaign_id, position`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var campaignID, address string
		if err = rows.Scan(&campaignID, &address); err != nil {
			return err
		}
		c, err := state.Campaigns.Get(campaignID)
		if err != nil {
			return err
		}
		c.Voters = append(c.Voters, hexAddress(address))
	}
	return rows.Err()
}

func loadClaims(ctx context.Context, tx pgx.Tx, state *domain.State) error {
	rows, err := tx.Query(ctx, `SELECT address, amount::text FROM claimable_rewards`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var address, amount string
		if err = rows.Scan(&address, &amount); err != nil {
			return err
		}
		a, err := domain.ParseAmount(amount)
		if err != nil {
			return fmt.Errorf("claimable %s: %w", address, err)
		}
		state.Claims.Credit(hexAddress(address), a)
	}
	return rows.Err()
}

func loadBalances(ctx context.Context, tx pgx.Tx) (map[domain.Address]domain.Amount, error) {
	rows, err := tx.Query(ctx, `SELECT address, amount::text FROM token_balances`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[domain.Address]domain.Amount)
	for rows.Next() {
		var address, amount string
		if err = rows.Scan(&address, &amount); err != nil {
			return nil, err
		}
		a, err := domain.ParseAmount(amount)
		if err != nil {
			return nil, fmt.Errorf("token balance %s: %w", address, err)
		}
		out[hexAddress(address)] = a
	}
	return out, rows.Err()
}

// Save replaces the stored snapshot with state.
func (r *StateRepository) Save(ctx context.Context, state *domain.State) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM token_balances`)
	batch.Queue(`DELETE FROM claimable_rewards`)
	batch.Queue(`DELETE FROM campaign_voters`)
	batch.Queue(`DELETE FROM campaign_providers`)
	batch.Queue(`DELETE FROM campaigns`)

	s := state.Settings
	batch.Queue(`
        INSERT INTO ledger_settings (id, owner, cost_per_click, cost_per_impression, add_balance_fee,
                                     vote_reward_percent, vote_threshold, fee_receiver, updated_at)
        VALUES (1, $1, $2::text::numeric, $3::text::numeric, $4, $5, $6, $7, $8)
        ON CONFLICT (id) DO UPDATE SET
            owner = EXCLUDED.owner,
            cost_per_click = EXCLUDED.cost_per_click,
            cost_per_impression = EXCLUDED.cost_per_impression,
            add_balance_fee = EXCLUDED.add_balance_fee,
            vote_reward_percent = EXCLUDED.vote_reward_percent,
            vote_threshold = EXCLUDED.vote_threshold,
            fee_receiver = EXCLUDED.fee_receiver,
            updated_at = EXCLUDED.updated_at`,
		state.Owner.Hex(), s.CostPerClick.Dec(), s.CostPerImpression.Dec(),
		s.AddBalanceFee, s.VoteRewardPercent, s.VoteThreshold, s.FeeReceiver.Hex(), time.Now().UTC())

	for _, c := range state.Campaigns.All() {
		batch.Queue(`
            INSERT INTO campaigns (id, idx, owner, live, status, votes_for, votes_against, balance,
                                   start_date, end_date, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8::text::numeric, $9, $10, $11)`,
			c.ID, c.Index, c.Owner.Hex(), c.Live, string(c.Status), c.VotesFor, c.VotesAgainst, c.Balance.Dec(),
			c.StartDate, c.EndDate, c.CreatedAt)
		for _, p := range c.Providers.All() {
			batch.Queue(`
                INSERT INTO campaign_providers (campaign_id, address, idx, clicks, impressions, rewards)
                VALUES ($1, $2, $3, $4, $5, $6::text::numeric)`,
				c.ID, p.Address.Hex(), p.Index, p.Clicks, p.Impressions, p.Rewards.Dec())
		}
		for i, v := range c.Voters {
			batch.Queue(`INSERT INTO campaign_voters (campaign_id, address, position) VALUES ($1, $2, $3)`,
				c.ID, v.Hex(), i+1)
		}
	}
	for addr, amount := range state.Claims.Entries() {
		batch.Queue(`INSERT INTO claimable_rewards (address, amount) VALUES ($1, $2::text::numeric)`,
			addr.Hex(), amount.Dec())
	}

	for addr, amount := range state.Balances {
		if amount.IsZero() {
			continue
		}
		batch.Queue(`INSERT INTO token_balances (address, amount) VALUES ($1, $2::text::numeric)`,
			addr.Hex(), amount.Dec())
	}

	err = tx.SendBatch(ctx, batch).Close()
	return err
}

func hexAddress(s string) domain.Address {
	return common.HexToAddress(s)
}
