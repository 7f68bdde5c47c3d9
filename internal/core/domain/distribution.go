package domain

import "time"

// Payout is one provider's increment from one distribution pass.
type Payout struct {
	CampaignID string
	Provider   Address
	Amount     Amount
	// Exhausted is set when the payout consumed the campaign's remaining
	// balance.
	Exhausted bool
}

// Distribution summarises a pass over every campaign.
type Distribution struct {
	Payouts []Payout
	Total   Amount
}

// Distribute moves value from campaign balances into provider rewards.
// Campaigns are visited in index order and skipped unless distributable.
// A provider is owed its full activity priced at the current settings;
// only the part above its recorded rewards is paid, capped at what the
// campaign still holds. Rewards never decrease and no value is created:
// every unit added to a provider is removed from its campaign.
func Distribute(reg *CampaignRegistry, s Settings, now time.Time) Distribution {
	var d Distribution
	for _, c := range reg.All() {
		if !c.Distributable(now) {
			continue
		}
		for _, p := range c.Providers.All() {
			if c.Balance.IsZero() {
				break
			}
			owed := Owed(s, p.Clicks, p.Impressions)
			if owed.Cmp(&p.Rewards) <= 0 {
				continue
			}
			delta := sub(owed, p.Rewards)
			payout := Payout{CampaignID: c.ID, Provider: p.Address, Amount: delta}
			if delta.Cmp(&c.Balance) >= 0 {
				payout.Amount = c.Drain()
				payout.Exhausted = true
			} else {
				c.Balance = sub(c.Balance, delta)
			}
			p.Rewards = add(p.Rewards, payout.Amount)
			d.Total = add(d.Total, payout.Amount)
			d.Payouts = append(d.Payouts, payout)
		}
	}
	return d
}
