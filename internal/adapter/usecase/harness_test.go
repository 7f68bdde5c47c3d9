package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"mesa-ledger/internal/adapter/memory"
	"mesa-ledger/internal/core/domain"
	"mesa-ledger/internal/core/port"
)

var (
	systemOwner = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	treasury    = common.HexToAddress("0x00000000000000000000000000000000000000a2")
	feeAddr     = common.HexToAddress("0x00000000000000000000000000000000000000a3")
	admin       = common.HexToAddress("0x00000000000000000000000000000000000000a4")
	creator     = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	provider    = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	holder      = common.HexToAddress("0x00000000000000000000000000000000000000b3")
	holder2     = common.HexToAddress("0x00000000000000000000000000000000000000b4")
	stranger    = common.HexToAddress("0x00000000000000000000000000000000000000c1")

	start = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

type harness struct {
	uc     *LedgerUseCase
	value  *memory.ValueLedger
	roles  *memory.Roles
	creds  *memory.Credentials
	events *memory.EventLog
	store  *memory.StateStore
	clock  *testClock
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	h := &harness{
		value:  memory.NewValueLedger(treasury),
		roles:  memory.NewRoles(),
		creds:  memory.NewCredentials(),
		events: memory.NewEventLog(nil),
		store:  memory.NewStateStore(),
		clock:  &testClock{now: start},
	}
	h.value.Mint(creator, domain.Tokens(10_000))
	h.roles.Grant(domain.RoleAdmin, admin)
	h.roles.Grant(domain.RoleCampaignCreator, creator)
	h.creds.Issue(holder, holder2)
	h.uc = h.build(t, h.value, h.store, opts)
	return h
}

func (h *harness) build(t *testing.T, value port.ValueGateway, repo port.StateRepository, opts Options) *LedgerUseCase {
	t.Helper()
	uc, err := NewLedgerUseCase(context.Background(),
		domain.NewState(systemOwner, domain.DefaultSettings(feeAddr)),
		Deps{
			Repo:        repo,
			Value:       value,
			Credentials: h.creds,
			Access:      h.roles,
			Events:      h.events,
			Clock:       h.clock,
			Logger:      discardLogger(),
		}, opts)
	require.NoError(t, err)
	return uc
}

// createCampaign registers id for creator, voting opens now and the
// campaign runs for thirty days.
func (h *harness) createCampaign(t *testing.T, id string) *domain.Campaign {
	t.Helper()
	c, err := h.uc.CreateCampaign(context.Background(), creator, port.CreateCampaignReq{
		ID:        id,
		StartDate: h.clock.now.Add(24 * time.Hour),
		EndDate:   h.clock.now.Add(30 * 24 * time.Hour),
	})
	require.NoError(t, err)
	return c
}

// launch funds, approves and starts a campaign.
func (h *harness) launch(t *testing.T, id string, deposit domain.Amount) {
	t.Helper()
	ctx := context.Background()
	h.createCampaign(t, id)
	_, err := h.uc.AddBalance(ctx, creator, id, deposit)
	require.NoError(t, err)
	require.NoError(t, h.uc.SetApproval(ctx, admin, id, true))
	require.NoError(t, h.uc.SetLive(ctx, creator, id, true))
}

func (h *harness) balance(t *testing.T, addr domain.Address) domain.Amount {
	t.Helper()
	a, err := h.value.BalanceOf(context.Background(), addr)
	require.NoError(t, err)
	return a
}
