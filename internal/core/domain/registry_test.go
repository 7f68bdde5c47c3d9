package domain

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0    = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	alice = common.HexToAddress("0x0000000000000000000000000000000000000a11")
	bob   = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	carol = common.HexToAddress("0x0000000000000000000000000000000000000ca1")
	dave  = common.HexToAddress("0x0000000000000000000000000000000000000da7")
)

func newTestCampaign(t *testing.T, id string) *Campaign {
	t.Helper()
	c, err := NewCampaign(id, alice, t0.Add(24*time.Hour), t0.Add(30*24*time.Hour), t0)
	require.NoError(t, err)
	return c
}

// assertIndexed checks every stored index is 1 + its position.
func assertIndexed(t *testing.T, r *CampaignRegistry) {
	t.Helper()
	for i, c := range r.All() {
		assert.Equal(t, i+1, c.Index, "campaign %s", c.ID)
	}
	assert.Len(t, r.IDs(), r.Len())
}

func TestRegistryRandomAddRemoveKeepsIndices(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := NewCampaignRegistry()
	var live []string
	next := 0
	for step := 0; step < 500; step++ {
		if len(live) == 0 || rng.Intn(3) > 0 {
			id := fmt.Sprintf("c%d", next)
			next++
			require.NoError(t, r.Add(newTestCampaign(t, id)))
			live = append(live, id)
		} else {
			i := rng.Intn(len(live))
			_, err := r.Remove(live[i])
			require.NoError(t, err)
			live = append(live[:i], live[i+1:]...)
		}
		assertIndexed(t, r)
		require.Equal(t, live, r.IDs(), "step %d", step)
	}
}

func TestNewCampaignValidation(t *testing.T) {
	_, err := NewCampaign("", alice, t0, t0.Add(time.Hour), t0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewCampaign("x", alice, t0, t0, t0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewCampaign("x", ZeroAddress, t0, t0.Add(time.Hour), t0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	c, err := NewCampaign("x", alice, t0, t0.Add(time.Hour), t0)
	require.NoError(t, err)
	assert.Equal(t, VotingPending, c.Status)
	assert.False(t, c.Live)
	assert.True(t, c.Balance.IsZero())
}

func TestRegistryAddRemoveRenumbers(t *testing.T) {
	r := NewCampaignRegistry()
	for i := 1; i <= 5; i++ {
		require.NoError(t, r.Add(newTestCampaign(t, fmt.Sprintf("c%d", i))))
	}
	assertIndexed(t, r)

	err := r.Add(newTestCampaign(t, "c3"))
	assert.ErrorIs(t, err, ErrDuplicateEntry)

	removed, err := r.Remove("c2")
	require.NoError(t, err)
	assert.Equal(t, 0, removed.Index)
	assert.Equal(t, []string{"c1", "c3", "c4", "c5"}, r.IDs())
	assertIndexed(t, r)

	_, err = r.Remove("c5")
	require.NoError(t, err)
	_, err = r.Remove("c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c3", "c4"}, r.IDs())
	assertIndexed(t, r)

	_, err = r.Remove("c1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.Get("c1")
	assert.ErrorIs(t, err, ErrCampaignNotFound)

	require.NoError(t, r.Add(newTestCampaign(t, "c1")))
	c, err := r.Get("c1")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Index)
}

func TestRemoveMiddleProviderShiftsLast(t *testing.T) {
	c := newTestCampaign(t, "a")
	for _, addr := range []Address{alice, bob, carol} {
		_, err := c.RegisterProvider(addr, t0)
		require.NoError(t, err)
	}

	removed, err := c.Providers.Remove(bob)
	require.NoError(t, err)
	assert.Equal(t, 0, removed.Index)

	p, err := c.Providers.Get(carol)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Index)
	assert.Equal(t, []Address{alice, carol}, c.Providers.Addresses())
	assert.False(t, c.Providers.Has(bob))

	_, err = c.Providers.Remove(bob)
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestRegisterProvider(t *testing.T) {
	c := newTestCampaign(t, "a")
	p, err := c.RegisterProvider(bob, t0)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Index)
	assert.Equal(t, bob, p.Owner)

	_, err = c.RegisterProvider(bob, t0)
	assert.ErrorIs(t, err, ErrProviderExists)

	_, err = c.RegisterProvider(carol, c.EndDate)
	assert.ErrorIs(t, err, ErrCampaignEnded)
}

func TestCloneIsDeep(t *testing.T) {
	r := NewCampaignRegistry()
	c := newTestCampaign(t, "a")
	_, err := c.RegisterProvider(bob, t0)
	require.NoError(t, err)
	c.Voters = []Address{carol}
	require.NoError(t, r.Add(c))

	cp := r.Clone()
	cc, err := cp.Get("a")
	require.NoError(t, err)
	cc.Credit(Tokens(5))
	p, err := cc.Providers.Get(bob)
	require.NoError(t, err)
	p.Clicks = 99
	cc.Voters[0] = dave
	_, err = cp.Remove("a")
	require.NoError(t, err)

	orig, err := r.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1, orig.Index)
	assert.True(t, orig.Balance.IsZero())
	op, err := orig.Providers.Get(bob)
	require.NoError(t, err)
	assert.Zero(t, op.Clicks)
	assert.Equal(t, carol, orig.Voters[0])
}
