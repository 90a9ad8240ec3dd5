package mappers

import (
	"github.com/infofreiheit/crowdfunding-service/internal/domain"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/postgres/models"
)

// nullableUserID maps the domain's empty-string guest marker to NULL; the
// user_id columns are uuid-typed and reject ''.
func nullableUserID(userID string) *string {
	if userID == "" {
		return nil
	}
	return &userID
}

func userIDValue(userID *string) string {
	if userID == nil {
		return ""
	}
	return *userID
}

func ToDomainCampaign(model *models.CampaignModel) *domain.Campaign {
	return &domain.Campaign{
		ID:              model.ID,
		Slug:            model.Slug,
		Title:           model.Title,
		Kind:            model.Kind,
		Description:     model.Description,
		PublicInterest:  model.PublicInterest,
		AmountRequested: model.AmountRequested,
		AmountNeeded:    model.AmountNeeded,
		Status:          model.Status,
		UserID:          userIDValue(model.UserID),
		RequestID:       model.RequestID,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMCampaign(campaign *domain.Campaign) *models.CampaignModel {
	return &models.CampaignModel{
		ID:              campaign.ID,
		Slug:            campaign.Slug,
		Title:           campaign.Title,
		Kind:            campaign.Kind,
		Description:     campaign.Description,
		PublicInterest:  campaign.PublicInterest,
		AmountRequested: campaign.AmountRequested,
		AmountNeeded:    campaign.AmountNeeded,
		Status:          campaign.Status,
		UserID:          nullableUserID(campaign.UserID),
		RequestID:       campaign.RequestID,
		CreatedAt:       campaign.CreatedAt,
		UpdatedAt:       campaign.UpdatedAt,
	}
}
