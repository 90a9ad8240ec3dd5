package campaigndto

import "github.com/infofreiheit/crowdfunding-service/internal/forms"

type StartCampaignInput struct {
	RequestID string
	UserID    string
	Values    forms.CampaignStartValues
}
