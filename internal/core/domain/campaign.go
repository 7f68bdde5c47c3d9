package domain

import (
	"fmt"
	"strings"
	"time"
)

// MaxCampaignIDLength bounds externally chosen campaign identifiers.
const MaxCampaignIDLength = 128

// Campaign is a funded advertising unit. Index is 1 + its position in the
// registry's ordered id sequence and is 0 once the campaign is removed.
type Campaign struct {
	ID           string
	Index        int
	Owner        Address
	Live         bool
	Status       VotingStatus
	VotesFor     uint64
	VotesAgainst uint64
	Balance      Amount
	StartDate    time.Time
	EndDate      time.Time
	Providers    ProviderSet
	// Voters is the current round's voter set, in ballot order.
	Voters    []Address
	CreatedAt time.Time
}

func (c *Campaign) position() int      { return c.Index }
func (c *Campaign) setPosition(i int) { c.Index = i }

// NewCampaign validates creation parameters and returns a pending campaign.
func NewCampaign(id string, owner Address, start, end time.Time, now time.Time) (*Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > MaxCampaignIDLength {
		return nil, fmt.Errorf("%w: campaign id must be 1..%d characters", ErrInvalidParameter, MaxCampaignIDLength)
	}
	if owner == ZeroAddress {
		return nil, fmt.Errorf("%w: zero owner", ErrInvalidParameter)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end date must be after start date", ErrInvalidParameter)
	}
	return &Campaign{
		ID:        id,
		Owner:     owner,
		Status:    VotingPending,
		StartDate: start.UTC(),
		EndDate:   end.UTC(),
		Providers: NewProviderSet(),
		CreatedAt: now.UTC(),
	}, nil
}

// Approved reports whether the campaign passed the voting gate.
func (c *Campaign) Approved() bool { return c.Status == VotingApproved }

// Ended reports whether now is past the end date.
func (c *Campaign) Ended(now time.Time) bool { return now.After(c.EndDate) }

// Distributable reports whether distribution should pay out of this
// campaign at now.
func (c *Campaign) Distributable(now time.Time) bool {
	return c.Live && c.Approved() && !c.Ended(now) && !c.Balance.IsZero()
}

// RegisterProvider self-registers addr while the campaign has not ended.
func (c *Campaign) RegisterProvider(addr Address, now time.Time) (*Provider, error) {
	if !now.Before(c.EndDate) {
		return nil, ErrCampaignEnded
	}
	return c.Providers.Add(addr)
}

// Credit adds to the campaign balance.
func (c *Campaign) Credit(amount Amount) {
	c.Balance = add(c.Balance, amount)
}

// Drain zeroes the balance and returns what it held.
func (c *Campaign) Drain() Amount {
	out := c.Balance
	c.Balance = Amount{}
	return out
}

// Clone deep-copies the campaign including its providers and voters.
func (c *Campaign) Clone() *Campaign {
	out := *c
	out.Providers = c.Providers.Clone()
	if c.Voters != nil {
		out.Voters = append([]Address(nil), c.Voters...)
	}
	return &out
}

// CampaignRegistry owns every campaign. Its ordered id sequence is the single
// source of ordering and existence.
type CampaignRegistry struct {
	set indexed[string, *Campaign]
}

// NewCampaignRegistry returns an empty registry.
func NewCampaignRegistry() *CampaignRegistry {
	return &CampaignRegistry{set: newIndexed[string, *Campaign]()}
}

// Add appends c and assigns the next index.
func (r *CampaignRegistry) Add(c *Campaign) error {
	if !r.set.add(c.ID, c) {
		return fmt.Errorf("%w: %q", ErrCampaignExists, c.ID)
	}
	return nil
}

// Remove deletes the campaign with its providers, shifting every later
// campaign one slot left.
func (r *CampaignRegistry) Remove(id string) (*Campaign, error) {
	c, ok := r.set.remove(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCampaignNotFound, id)
	}
	return c, nil
}

// Get returns the campaign stored under id.
func (r *CampaignRegistry) Get(id string) (*Campaign, error) {
	c, ok := r.set.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCampaignNotFound, id)
	}
	return c, nil
}

// Len returns the number of campaigns.
func (r *CampaignRegistry) Len() int { return r.set.len() }

// IDs returns campaign ids in index order.
func (r *CampaignRegistry) IDs() []string { return r.set.orderedKeys() }

// All returns campaigns in index order.
func (r *CampaignRegistry) All() []*Campaign { return r.set.values() }

// Clone deep-copies the registry.
func (r *CampaignRegistry) Clone() *CampaignRegistry {
	return &CampaignRegistry{set: r.set.clone((*Campaign).Clone)}
}
