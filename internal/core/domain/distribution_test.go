package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liveCampaign(t *testing.T, id string, balance Amount) *Campaign {
	t.Helper()
	c := newTestCampaign(t, id)
	c.Live = true
	c.SetApproval(true)
	c.Credit(balance)
	return c
}

func TestDistributeScenario(t *testing.T) {
	s := DefaultSettings(alice)
	r := NewCampaignRegistry()
	c := liveCampaign(t, "a", Tokens(800))
	require.NoError(t, r.Add(c))
	p, err := c.RegisterProvider(bob, t0)
	require.NoError(t, err)
	p.Clicks = 10

	d := Distribute(r, s, t0)
	want := mulU(Price(s.CostPerClick, MinCostPerClick, 10, CPCCoefficient), 10)
	require.Len(t, d.Payouts, 1)
	assert.Equal(t, want, d.Payouts[0].Amount)
	assert.Equal(t, want, p.Rewards)
	assert.Equal(t, sub(Tokens(800), want), c.Balance)

	again := Distribute(r, s, t0)
	assert.Empty(t, again.Payouts)
	assert.True(t, again.Total.IsZero())
	assert.Equal(t, want, p.Rewards)
}

func TestDistributeConservesValue(t *testing.T) {
	s := DefaultSettings(alice)
	r := NewCampaignRegistry()
	c := liveCampaign(t, "a", Milli(700))
	require.NoError(t, r.Add(c))
	for i, addr := range []Address{bob, carol, dave} {
		p, err := c.RegisterProvider(addr, t0)
		require.NoError(t, err)
		p.Clicks = uint64(5 * (i + 1))
		p.Impressions = uint64(100 * (i + 1))
	}
	before := c.Balance

	d := Distribute(r, s, t0)

	var rewards Amount
	for _, p := range c.Providers.All() {
		rewards = add(rewards, p.Rewards)
	}
	assert.Equal(t, before, add(c.Balance, rewards))
	assert.Equal(t, rewards, d.Total)
	assert.True(t, c.Balance.IsZero())
	assert.True(t, d.Payouts[len(d.Payouts)-1].Exhausted)
}

func TestDistributeSkipsIneligible(t *testing.T) {
	s := DefaultSettings(alice)
	r := NewCampaignRegistry()

	notLive := liveCampaign(t, "not-live", Tokens(10))
	notLive.Live = false
	pending := liveCampaign(t, "pending", Tokens(10))
	pending.SetApproval(false)
	ended := liveCampaign(t, "ended", Tokens(10))
	ended.EndDate = t0.Add(-time.Second)
	empty := liveCampaign(t, "empty", Amount{})

	for _, c := range []*Campaign{notLive, pending, ended, empty} {
		p, err := c.Providers.Add(bob)
		require.NoError(t, err)
		p.Clicks = 100
		require.NoError(t, r.Add(c))
	}

	d := Distribute(r, s, t0)
	assert.Empty(t, d.Payouts)
	for _, c := range r.All() {
		p, err := c.Providers.Get(bob)
		require.NoError(t, err)
		assert.True(t, p.Rewards.IsZero(), c.ID)
	}
}

func TestDistributeNeverLowersRewards(t *testing.T) {
	s := DefaultSettings(alice)
	r := NewCampaignRegistry()
	c := liveCampaign(t, "a", Tokens(100))
	require.NoError(t, r.Add(c))
	p, err := c.RegisterProvider(bob, t0)
	require.NoError(t, err)
	p.Clicks = 10
	Distribute(r, s, t0)
	paid := p.Rewards

	// a cheaper price makes the provider owed less than already paid
	require.NoError(t, s.SetCostPerClick(MinCostPerClick))
	d := Distribute(r, s, t0)
	assert.Empty(t, d.Payouts)
	assert.Equal(t, paid, p.Rewards)
}

func TestStateTotalValue(t *testing.T) {
	st := NewState(alice, DefaultSettings(alice))
	a := liveCampaign(t, "a", Tokens(3))
	p, err := a.RegisterProvider(bob, t0)
	require.NoError(t, err)
	p.Rewards = Tokens(2)
	require.NoError(t, st.Campaigns.Add(a))
	require.NoError(t, st.Campaigns.Add(liveCampaign(t, "b", Tokens(4))))
	st.Claims.Credit(carol, Tokens(1))

	cp := st.Clone()
	b, err := cp.Campaigns.Get("b")
	require.NoError(t, err)
	b.Drain()

	assert.Equal(t, Tokens(9), st.TotalValue())
	assert.Equal(t, Tokens(5), cp.TotalValue())
}
