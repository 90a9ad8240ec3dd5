package mappers

import (
	"github.com/infofreiheit/crowdfunding-service/internal/domain"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/postgres/models"
)

func ToDomainContribution(model *models.ContributionModel) *domain.Contribution {
	return &domain.Contribution{
		ID:         model.ID,
		CampaignID: model.CampaignID,
		UserID:     userIDValue(model.UserID),
		Amount:     model.Amount,
		Note:       model.Note,
		Public:     model.Public,
		OrderID:    model.OrderID,
		CreatedAt:  model.CreatedAt,
	}
}

func ToGORMContribution(contribution *domain.Contribution) *models.ContributionModel {
	return &models.ContributionModel{
		ID:         contribution.ID,
		CampaignID: contribution.CampaignID,
		UserID:     nullableUserID(contribution.UserID),
		Amount:     contribution.Amount,
		Note:       contribution.Note,
		Public:     contribution.Public,
		OrderID:    contribution.OrderID,
		CreatedAt:  contribution.CreatedAt,
	}
}
