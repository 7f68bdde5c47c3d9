package domain

import (
	"fmt"
	"slices"
	"time"
)

// VotingStatus is the campaign's position in the approval gate.
type VotingStatus string

const (
	VotingPending  VotingStatus = "pending"
	VotingApproved VotingStatus = "approved"
	VotingRejected VotingStatus = "rejected"
)

// Ballot is a single vote value.
type Ballot uint8

const (
	BallotAgainst Ballot = 0
	BallotFor     Ballot = 1
)

// ParseBallot accepts the wire values 0 and 1.
func ParseBallot(v int) (Ballot, error) {
	switch v {
	case 0:
		return BallotAgainst, nil
	case 1:
		return BallotFor, nil
	default:
		return 0, fmt.Errorf("%w: ballot must be 0 or 1", ErrInvalidParameter)
	}
}

// VoteOutcome describes what a single ballot changed.
type VoteOutcome struct {
	// Transition is the status after evaluation; equal to VotingPending when
	// the ballot did not close the round.
	Transition VotingStatus
	// ProviderRegistered is set when a supporting ballot enrolled the voter.
	ProviderRegistered bool
	// TotalVotes is votesFor + votesAgainst after the ballot.
	TotalVotes uint64
}

// AcceptsVotes reports whether a round is open: not approved, not live and
// not yet ended. A rejection sets the end date, which closes the round.
func (c *Campaign) AcceptsVotes(now time.Time) bool {
	return !c.Approved() && !c.Live && now.Before(c.EndDate)
}

// HasVoted scans the current round's voter set.
func (c *Campaign) HasVoted(voter Address) bool {
	return slices.Contains(c.Voters, voter)
}

// CastVote records a ballot and evaluates the transition rules in fixed
// order: time based approval, threshold approval, threshold rejection. Each
// rule overwrites the same fields, so the last one that matches wins.
func (c *Campaign) CastVote(voter Address, ballot Ballot, threshold uint64, now time.Time) (VoteOutcome, error) {
	if !c.AcceptsVotes(now) {
		return VoteOutcome{}, ErrVotingClosed
	}
	if ballot != BallotAgainst && ballot != BallotFor {
		return VoteOutcome{}, fmt.Errorf("%w: ballot %d", ErrInvalidParameter, ballot)
	}
	if c.HasVoted(voter) {
		return VoteOutcome{}, ErrAlreadyVoted
	}
	c.Voters = append(c.Voters, voter)

	var out VoteOutcome
	if ballot == BallotAgainst {
		c.VotesAgainst++
	} else {
		c.VotesFor++
		if !c.Providers.Has(voter) {
			if _, err := c.RegisterProvider(voter, now); err != nil {
				return VoteOutcome{}, err
			}
			out.ProviderRegistered = true
		}
	}
	out.TotalVotes = c.VotesFor + c.VotesAgainst

	c.applyStartRule(threshold, now)
	if c.VotesFor >= threshold && c.VotesAgainst < threshold {
		c.approve(now)
	}
	if c.VotesAgainst >= threshold && c.VotesFor < threshold {
		c.reject(now)
	}
	out.Transition = c.Status
	return out, nil
}

// FinalizeVoting applies only the time based rule. It lets a round whose
// start threshold passed without further ballots close.
func (c *Campaign) FinalizeVoting(threshold uint64, now time.Time) (VotingStatus, error) {
	if !c.AcceptsVotes(now) {
		return c.Status, ErrVotingClosed
	}
	c.applyStartRule(threshold, now)
	return c.Status, nil
}

// ResetVotes reopens voting: counters and voter set are cleared and a
// rejected campaign returns to pending. Reopening a rejected campaign also
// needs a later end date.
func (c *Campaign) ResetVotes() {
	c.VotesFor = 0
	c.VotesAgainst = 0
	c.Voters = nil
	if c.Status == VotingRejected {
		c.Status = VotingPending
	}
}

// SetApproval is the administrator override.
func (c *Campaign) SetApproval(approved bool) {
	if approved {
		c.Status = VotingApproved
		return
	}
	c.Status = VotingPending
}

func (c *Campaign) applyStartRule(threshold uint64, now time.Time) {
	if !now.Before(c.StartDate) && c.VotesAgainst < threshold {
		c.approve(now)
	}
}

func (c *Campaign) approve(now time.Time) {
	c.Status = VotingApproved
	c.StartDate = now.UTC()
	c.Voters = nil
}

func (c *Campaign) reject(now time.Time) {
	c.Status = VotingRejected
	c.EndDate = now.UTC()
	c.Voters = nil
}
