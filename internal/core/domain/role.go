package domain

// Role names checked through the external access control collaborator.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleCampaignCreator Role = "campaign_creator"
)
