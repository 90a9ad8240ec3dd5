package domain

type ContributionRepository interface {
	CreateContribution(contribution *Contribution) error
	GetContributionsByCampaignID(campaignID string) ([]*Contribution, error)
}
