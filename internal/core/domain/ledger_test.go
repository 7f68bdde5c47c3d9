package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimLedgerTake(t *testing.T) {
	var l ClaimLedger
	_, err := l.Take(bob)
	assert.ErrorIs(t, err, ErrZeroClaim)

	l.Credit(bob, Tokens(2))
	l.Credit(bob, Milli(500))
	l.Credit(carol, Amount{})
	assert.Equal(t, Milli(2500), l.Balance(bob))
	assert.Len(t, l.Entries(), 1)

	got, err := l.Take(bob)
	require.NoError(t, err)
	assert.Equal(t, Milli(2500), got)
	assert.Zero(t, l.Balance(bob))

	_, err = l.Take(bob)
	assert.ErrorIs(t, err, ErrZeroClaim)
}

func TestSplitDeposit(t *testing.T) {
	s := DefaultSettings(alice)
	fee, net := s.SplitDeposit(Tokens(1000))
	assert.Equal(t, Tokens(200), fee)
	assert.Equal(t, Tokens(800), net)

	require.NoError(t, s.SetAddBalanceFee(0))
	fee, net = s.SplitDeposit(Tokens(7))
	assert.True(t, fee.IsZero())
	assert.Equal(t, Tokens(7), net)
}

func TestVoteRewardFloorsShare(t *testing.T) {
	s := DefaultSettings(alice)
	require.NoError(t, s.SetVoteRewardPercent(5))

	assert.Equal(t, Tokens(50), s.VoteReward(Tokens(1000), 1))
	// 5/2 floors to 2
	assert.Equal(t, Tokens(20), s.VoteReward(Tokens(1000), 2))
	assert.Zero(t, s.VoteReward(Tokens(1000), 6))
	assert.Zero(t, s.VoteReward(Amount{}, 1))
}

func TestSettingsBounds(t *testing.T) {
	s := DefaultSettings(alice)
	assert.ErrorIs(t, s.SetAddBalanceFee(MaxAddBalanceFee+1), ErrInvalidParameter)
	assert.ErrorIs(t, s.SetVoteRewardPercent(MaxVoteRewardPercent+1), ErrInvalidParameter)
	assert.ErrorIs(t, s.SetVoteThreshold(MaxVoteThreshold+1), ErrInvalidParameter)
	assert.ErrorIs(t, s.SetCostPerClick(Amount{}), ErrInvalidParameter)
	assert.ErrorIs(t, s.SetCostPerImpression(Tokens(1)), ErrInvalidParameter)
	assert.ErrorIs(t, s.SetFeeReceiver(ZeroAddress), ErrInvalidParameter)
	assert.NoError(t, s.Validate())
	assert.Equal(t, DefaultSettings(alice), s)
}

func TestParseTokens(t *testing.T) {
	a, err := ParseTokens("12.5")
	require.NoError(t, err)
	assert.Equal(t, Milli(12_500), a)
	assert.Equal(t, "12.5", FormatTokens(a))
	assert.Equal(t, "0", FormatTokens(Amount{}))

	for _, bad := range []string{"", "-1", "abc", "0.0000000000000000001"} {
		_, err = ParseTokens(bad)
		assert.ErrorIs(t, err, ErrInvalidParameter, bad)
	}
}
