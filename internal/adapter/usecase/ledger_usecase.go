package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"mesa-ledger/internal/core/domain"
	"mesa-ledger/internal/core/port"
)

// Deps lists the collaborators of LedgerUseCase. Repo, Events, Clock and
// Logger are optional.
type Deps struct {
	Repo        port.StateRepository
	Value       port.ValueGateway
	Credentials port.CredentialGateway
	Access      port.AccessControl
	Events      port.EventPublisher
	Clock       port.Clock
	Logger      *slog.Logger
}

// Options tunes engine behaviour.
type Options struct {
	// ApprovalRequired gates new campaigns behind voting. When false every
	// campaign is created approved and the voting gate is bypassed.
	ApprovalRequired bool
}

// LedgerUseCase implements port.LedgerUseCase. Entry points are
// serialised by a single mutex. Each one works on a deep copy of the
// committed state, executes the value transfers it implies, persists the
// copy and only then swaps it in, so a failure at any step leaves the
// committed state as it was. When the value gateway is an in-process
// port.ValueBook its balances are persisted with every snapshot.
type LedgerUseCase struct {
	mu    sync.Mutex
	state *domain.State

	repo   port.StateRepository
	value  port.ValueGateway
	book   port.ValueBook
	creds  port.CredentialGateway
	access port.AccessControl
	events port.EventPublisher
	clock  port.Clock
	logger *slog.Logger
	opts   Options
}

var _ port.LedgerUseCase = (*LedgerUseCase)(nil)

// NewLedgerUseCase restores the persisted state, or starts from genesis and
// saves it when the repository is empty.
func NewLedgerUseCase(ctx context.Context, genesis *domain.State, deps Deps, opts Options) (*LedgerUseCase, error) {
	if deps.Value == nil || deps.Credentials == nil || deps.Access == nil {
		return nil, errors.New("value, credential and access gateways are required")
	}
	if genesis == nil {
		return nil, errors.New("genesis state is required")
	}
	if err := genesis.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("genesis settings: %w", err)
	}
	if err := requireSeparateFeeReceiver(genesis.Settings.FeeReceiver, deps.Value.Treasury()); err != nil {
		return nil, fmt.Errorf("genesis settings: %w", err)
	}
	u := &LedgerUseCase{
		state:  genesis.Clone(),
		repo:   deps.Repo,
		value:  deps.Value,
		creds:  deps.Credentials,
		access: deps.Access,
		events: deps.Events,
		clock:  deps.Clock,
		logger: deps.Logger,
		opts:   opts,
	}
	if u.logger == nil {
		u.logger = slog.Default()
	}
	if book, ok := u.value.(port.ValueBook); ok {
		u.book = book
	}
	if u.repo == nil {
		return u, nil
	}
	stored, found, err := u.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if found {
		u.state = stored
		if u.book != nil {
			// the stored book supersedes whatever was minted at boot
			u.book.Restore(stored.Balances)
		}
		u.logger.Info("ledger state restored",
			slog.Int("campaigns", stored.Campaigns.Len()),
			slog.Int("accounts", len(stored.Balances)),
		)
		return u, nil
	}
	if u.book != nil {
		u.state.Balances = u.book.Balances()
	}
	if err = u.repo.Save(ctx, u.state); err != nil {
		return nil, fmt.Errorf("save genesis state: %w", err)
	}
	return u, nil
}

// transfer is a value movement staged by a transaction. fromTreasury marks
// a Transfer out of the ledger's own account.
type transfer struct {
	from         domain.Address
	to           domain.Address
	amount       domain.Amount
	fromTreasury bool
}

// tx is one entry point's working set.
type tx struct {
	state     *domain.State
	caller    domain.Address
	now       time.Time
	transfers []transfer
	events    []domain.Event
}

func (t *tx) pay(to domain.Address, amount domain.Amount) {
	if amount.IsZero() {
		return
	}
	t.transfers = append(t.transfers, transfer{to: to, amount: amount, fromTreasury: true})
}

func (t *tx) pull(from, to domain.Address, amount domain.Amount) {
	if amount.IsZero() {
		return
	}
	t.transfers = append(t.transfers, transfer{from: from, to: to, amount: amount})
}

func (t *tx) event(name string) domain.Event {
	return domain.NewEvent(name, t.caller, t.now)
}

func (t *tx) record(events ...domain.Event) {
	t.events = append(t.events, events...)
}

// run executes fn against a copy of the state and commits it.
func (u *LedgerUseCase) run(ctx context.Context, op string, caller domain.Address, fn func(t *tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	t := &tx{state: u.state.Clone(), caller: caller, now: u.now()}
	if err := fn(t); err != nil {
		u.logger.Warn("operation rejected",
			slog.String("op", op),
			slog.String("caller", caller.Hex()),
			slog.Any("error", err),
		)
		return err
	}

	done, err := u.settle(ctx, t.transfers)
	if err != nil {
		u.compensate(ctx, op, done)
		u.logger.Warn("operation aborted by transfer failure",
			slog.String("op", op),
			slog.String("caller", caller.Hex()),
			slog.Any("error", err),
		)
		return err
	}

	if u.repo != nil {
		if u.book != nil {
			t.state.Balances = u.book.Balances()
		}
		if err = u.repo.Save(ctx, t.state); err != nil {
			u.compensate(ctx, op, done)
			u.logger.Error("state persistence failed",
				slog.String("op", op),
				slog.Any("error", err),
			)
			return fmt.Errorf("persist state: %w", err)
		}
	}
	u.state = t.state

	if u.events != nil && len(t.events) > 0 {
		if err = u.events.Publish(ctx, t.events...); err != nil {
			u.logger.Error("event publish failed", slog.String("op", op), slog.Any("error", err))
		}
	}
	u.logger.Info("operation committed",
		slog.String("op", op),
		slog.String("caller", caller.Hex()),
		slog.Int("transfers", len(t.transfers)),
		slog.Int("events", len(t.events)),
	)
	return nil
}

// settle executes staged transfers in order and returns the ones that went
// through.
func (u *LedgerUseCase) settle(ctx context.Context, transfers []transfer) ([]transfer, error) {
	for i, tr := range transfers {
		var err error
		if tr.fromTreasury {
			err = u.value.Transfer(ctx, tr.to, tr.amount)
		} else {
			err = u.value.TransferFrom(ctx, tr.from, tr.to, tr.amount)
		}
		if err != nil {
			return transfers[:i], fmt.Errorf("%w: %s to %s: %v", domain.ErrTransferFailure, tr.amount.Dec(), tr.to.Hex(), err)
		}
	}
	return transfers, nil
}

// compensate reverses executed transfers, newest first.
func (u *LedgerUseCase) compensate(ctx context.Context, op string, done []transfer) {
	for i := len(done) - 1; i >= 0; i-- {
		tr := done[i]
		from := tr.from
		if tr.fromTreasury {
			from = u.value.Treasury()
		}
		if err := u.value.TransferFrom(ctx, tr.to, from, tr.amount); err != nil {
			u.logger.Error("transfer compensation failed",
				slog.String("op", op),
				slog.String("from", tr.to.Hex()),
				slog.String("to", from.Hex()),
				slog.String("amount", tr.amount.Dec()),
				slog.Any("error", err),
			)
		}
	}
}

func (u *LedgerUseCase) now() time.Time {
	if u.clock == nil {
		return time.Now().UTC()
	}
	return u.clock.Now().UTC()
}

func (u *LedgerUseCase) requireRole(ctx context.Context, role domain.Role, addr domain.Address) error {
	ok, err := u.access.HasRole(ctx, role, addr)
	if err != nil {
		return fmt.Errorf("role lookup: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s lacks role %s", domain.ErrUnauthorized, addr.Hex(), role)
	}
	return nil
}

// requireOwnerOrAdmin admits the campaign owner or any administrator.
func (u *LedgerUseCase) requireOwnerOrAdmin(ctx context.Context, c *domain.Campaign, addr domain.Address) error {
	if c.Owner == addr {
		return nil
	}
	return u.requireRole(ctx, domain.RoleAdmin, addr)
}

// requireConfigurer admits the owner identity or any administrator.
func (u *LedgerUseCase) requireConfigurer(ctx context.Context, s *domain.State, addr domain.Address) error {
	if s.Owner == addr {
		return nil
	}
	return u.requireRole(ctx, domain.RoleAdmin, addr)
}

// requireSeparateFeeReceiver keeps fees out of the treasury, which holds
// only campaign escrow and funded claims.
func requireSeparateFeeReceiver(feeReceiver, treasury domain.Address) error {
	if feeReceiver == treasury {
		return fmt.Errorf("%w: fee receiver %s is the treasury", domain.ErrInvalidParameter, feeReceiver.Hex())
	}
	return nil
}

func requireCampaignOwner(c *domain.Campaign, addr domain.Address) error {
	if c.Owner != addr {
		return fmt.Errorf("%w: %s does not own campaign %q", domain.ErrUnauthorized, addr.Hex(), c.ID)
	}
	return nil
}

// Campaign returns a copy of the campaign.
func (u *LedgerUseCase) Campaign(_ context.Context, id string) (*domain.Campaign, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c, err := u.state.Campaigns.Get(id)
	if err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

// Campaigns returns copies of every campaign in index order.
func (u *LedgerUseCase) Campaigns(_ context.Context) ([]*domain.Campaign, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	all := u.state.Campaigns.All()
	out := make([]*domain.Campaign, 0, len(all))
	for _, c := range all {
		out = append(out, c.Clone())
	}
	return out, nil
}

// Provider returns a copy of one provider record.
func (u *LedgerUseCase) Provider(_ context.Context, id string, addr domain.Address) (*domain.Provider, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c, err := u.state.Campaigns.Get(id)
	if err != nil {
		return nil, err
	}
	p, err := c.Providers.Get(addr)
	if err != nil {
		return nil, err
	}
	cp := *p
	return &cp, nil
}

// Claimable returns what addr has accrued and not yet claimed.
func (u *LedgerUseCase) Claimable(_ context.Context, addr domain.Address) (domain.Amount, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.Claims.Balance(addr), nil
}

// Settings returns the current configuration.
func (u *LedgerUseCase) Settings(_ context.Context) (domain.Settings, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.Settings, nil
}

// Quote prices the given activity at the current settings without touching
// any provider.
func (u *LedgerUseCase) Quote(_ context.Context, clicks, impressions uint64) (domain.Amount, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return domain.Owed(u.state.Settings, clicks, impressions), nil
}
