package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event names emitted for external observability.
const (
	EventCampaignCreated    = "campaign.created"
	EventCampaignRemoved    = "campaign.removed"
	EventCampaignLive       = "campaign.live_changed"
	EventCampaignEndDate    = "campaign.end_date_changed"
	EventCampaignApproval   = "campaign.approval_changed"
	EventVotesReset         = "campaign.votes_reset"
	EventVoteCast           = "vote.cast"
	EventCampaignApproved   = "campaign.approved"
	EventCampaignRejected   = "campaign.rejected"
	EventProviderRegistered = "provider.registered"
	EventProviderRemoved    = "provider.removed"
	EventProviderActivity   = "provider.activity_recorded"
	EventProviderReset      = "provider.rewards_reset"
	EventBalanceAdded       = "balance.added"
	EventBalanceWithdrawn   = "balance.withdrawn"
	EventBalancesReturned   = "balance.returned"
	EventRewardsDistributed = "rewards.distributed"
	EventRewardsClaimed     = "rewards.claimed"
	EventVoteRewardCredited = "rewards.vote_credited"
	EventSettingsChanged    = "settings.changed"
)

// Event is a structured notification of a committed state change. Nothing
// inside the ledger reads events back.
type Event struct {
	ID         string
	Name       string
	CampaignID string
	Actor      Address
	Subject    Address
	Amount     Amount
	Attrs      map[string]string
	At         time.Time
}

// NewEvent stamps a fresh event.
func NewEvent(name string, actor Address, at time.Time) Event {
	return Event{ID: uuid.NewString(), Name: name, Actor: actor, At: at.UTC()}
}

// ForCampaign sets the campaign id.
func (e Event) ForCampaign(id string) Event {
	e.CampaignID = id
	return e
}

// About sets the subject address.
func (e Event) About(addr Address) Event {
	e.Subject = addr
	return e
}

// WithAmount sets the amount.
func (e Event) WithAmount(a Amount) Event {
	e.Amount = a
	return e
}

// With adds a free form attribute.
func (e Event) With(key, value string) Event {
	attrs := make(map[string]string, len(e.Attrs)+1)
	for k, v := range e.Attrs {
		attrs[k] = v
	}
	attrs[key] = value
	e.Attrs = attrs
	return e
}
