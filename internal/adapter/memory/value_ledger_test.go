package memory

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-ledger/internal/core/domain"
)

var (
	treasury = common.HexToAddress("0x00000000000000000000000000000000000000a2")
	alice    = common.HexToAddress("0x0000000000000000000000000000000000000a11")
	bob      = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
)

func TestValueLedgerTransfers(t *testing.T) {
	ctx := context.Background()
	l := NewValueLedger(treasury)
	l.Mint(alice, domain.Tokens(10))

	require.NoError(t, l.TransferFrom(ctx, alice, treasury, domain.Tokens(4)))
	require.NoError(t, l.Transfer(ctx, bob, domain.Tokens(1)))

	for addr, want := range map[domain.Address]domain.Amount{
		alice:    domain.Tokens(6),
		treasury: domain.Tokens(3),
		bob:      domain.Tokens(1),
	} {
		got, err := l.BalanceOf(ctx, addr)
		require.NoError(t, err)
		assert.Equal(t, want, got, addr.Hex())
	}

	err := l.Transfer(ctx, bob, domain.Tokens(5))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Error(t, l.TransferFrom(ctx, alice, domain.ZeroAddress, domain.Tokens(1)))
}

func TestValueLedgerBalancesAndRestore(t *testing.T) {
	ctx := context.Background()
	l := NewValueLedger(treasury)
	l.Mint(alice, domain.Tokens(10))
	require.NoError(t, l.TransferFrom(ctx, alice, treasury, domain.Tokens(10)))

	snap := l.Balances()
	// emptied accounts are not part of the snapshot
	assert.Equal(t, map[domain.Address]domain.Amount{treasury: domain.Tokens(10)}, snap)
	snap[bob] = domain.Tokens(99)
	got, err := l.BalanceOf(ctx, bob)
	require.NoError(t, err)
	assert.Zero(t, got)

	fresh := NewValueLedger(treasury)
	fresh.Mint(alice, domain.Tokens(10))
	fresh.Restore(map[domain.Address]domain.Amount{treasury: domain.Tokens(10)})
	got, err = fresh.BalanceOf(ctx, alice)
	require.NoError(t, err)
	assert.Zero(t, got)
	got, err = fresh.BalanceOf(ctx, treasury)
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(10), got)
}

func TestRolesAndCredentials(t *testing.T) {
	ctx := context.Background()
	r := NewRoles()
	r.Grant(domain.RoleAdmin, alice, bob)
	r.Revoke(domain.RoleAdmin, bob)

	ok, err := r.HasRole(ctx, domain.RoleAdmin, alice)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = r.HasRole(ctx, domain.RoleAdmin, bob)
	assert.False(t, ok)
	ok, _ = r.HasRole(ctx, domain.RoleCampaignCreator, alice)
	assert.False(t, ok)

	c := NewCredentials()
	c.Issue(alice, alice)
	c.Burn(alice)
	c.Burn(bob)
	n, err := c.BalanceOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
	n, _ = c.BalanceOf(ctx, bob)
	assert.Zero(t, n)
}

func TestStateStoreIsolatesCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStateStore()
	_, found, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	st := domain.NewState(alice, domain.DefaultSettings(alice))
	require.NoError(t, s.Save(ctx, st))
	st.Claims.Credit(bob, domain.Tokens(1))

	loaded, found, err := s.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Zero(t, loaded.Claims.Balance(bob))
	assert.Nil(t, loaded.Balances)

	st.Balances = map[domain.Address]domain.Amount{alice: domain.Tokens(5)}
	require.NoError(t, s.Save(ctx, st))
	st.Balances[alice] = domain.Tokens(6)
	loaded, _, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Tokens(5), loaded.Balances[alice])
}

func TestEventLogRecordsNames(t *testing.T) {
	l := NewEventLog(nil)
	e := domain.NewEvent(domain.EventVoteCast, alice, t0())
	require.NoError(t, l.Publish(context.Background(), e, domain.NewEvent(domain.EventRewardsClaimed, bob, t0())))
	assert.Equal(t, []string{domain.EventVoteCast, domain.EventRewardsClaimed}, l.Names())
	assert.Equal(t, e.ID, l.Events()[0].ID)
}

func t0() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
