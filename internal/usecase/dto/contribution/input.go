package contributiondto

import "github.com/infofreiheit/crowdfunding-service/internal/forms"

type ContributeInput struct {
	CampaignID string
	// UserID is empty for guest contributions.
	UserID string
	Values forms.ContributionValues
}
