package domain

type CampaignRepository interface {
	// CreateWithUniqueSlug persists the campaign, assigning a slug derived
	// from its title. Slug collisions are resolved by the repository.
	CreateWithUniqueSlug(campaign *Campaign) error
	GetCampaignByID(campaignID string) (*Campaign, error)
	GetCampaignsByRequestID(requestID string) ([]*Campaign, error)
}
