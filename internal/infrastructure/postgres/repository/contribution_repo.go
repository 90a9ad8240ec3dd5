package repository

import (
	"github.com/infofreiheit/crowdfunding-service/internal/domain"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/postgres/mappers"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultContributionRepository struct {
	DB *gorm.DB
}

func NewDefaultContributionRepository(db *gorm.DB) *DefaultContributionRepository {
	return &DefaultContributionRepository{DB: db}
}

func (r *DefaultContributionRepository) CreateContribution(contribution *domain.Contribution) error {
	model := mappers.ToGORMContribution(contribution)
	if err := r.DB.Create(model).Error; err != nil {
		return err
	}
	contribution.CreatedAt = model.CreatedAt
	return nil
}

func (r *DefaultContributionRepository) GetContributionsByCampaignID(campaignID string) ([]*domain.Contribution, error) {
	var contributionModels []models.ContributionModel
	if err := r.DB.Where("campaign_id = ?", campaignID).Order("created_at").Find(&contributionModels).Error; err != nil {
		return nil, err
	}
	contributions := make([]*domain.Contribution, len(contributionModels))
	for i := range contributionModels {
		contributions[i] = mappers.ToDomainContribution(&contributionModels[i])
	}
	return contributions, nil
}
