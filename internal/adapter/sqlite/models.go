package sqlite

import "time"

type settingsRow struct {
	ID                uint8  `gorm:"primaryKey"`
	Owner             string `gorm:"not null"`
	CostPerClick      string `gorm:"not null"`
	CostPerImpression string `gorm:"not null"`
	AddBalanceFee     uint64 `gorm:"not null"`
	VoteRewardPercent uint64 `gorm:"not null"`
	VoteThreshold     uint64 `gorm:"not null"`
	FeeReceiver       string `gorm:"not null"`
	UpdatedAt         time.Time
}

func (settingsRow) TableName() string { return "ledger_settings" }

type campaignRow struct {
	ID           string `gorm:"primaryKey"`
	Idx          int    `gorm:"uniqueIndex;not null"`
	Owner        string `gorm:"not null"`
	Live         bool   `gorm:"default:false"`
	Status       string `gorm:"not null"`
	VotesFor     uint64 `gorm:"default:0"`
	VotesAgainst uint64 `gorm:"default:0"`
	Balance      string `gorm:"not null"`
	StartDate    time.Time
	EndDate      time.Time
	CreatedAt    time.Time
}

func (campaignRow) TableName() string { return "campaigns" }

type providerRow struct {
	CampaignID  string `gorm:"primaryKey"`
	Address     string `gorm:"primaryKey"`
	Idx         int    `gorm:"not null"`
	Clicks      uint64 `gorm:"default:0"`
	Impressions uint64 `gorm:"default:0"`
	Rewards     string `gorm:"not null"`
}

func (providerRow) TableName() string { return "campaign_providers" }

type voterRow struct {
	CampaignID string `gorm:"primaryKey"`
	Address    string `gorm:"primaryKey"`
	Position   int    `gorm:"not null"`
}

func (voterRow) TableName() string { return "campaign_voters" }

type claimRow struct {
	Address string `gorm:"primaryKey"`
	Amount  string `gorm:"not null"`
}

func (claimRow) TableName() string { return "claimable_rewards" }

type tokenBalanceRow struct {
	Address string `gorm:"primaryKey"`
	Amount  string `gorm:"not null"`
}

func (tokenBalanceRow) TableName() string { return "token_balances" }
