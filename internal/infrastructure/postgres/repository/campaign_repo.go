package repository

import (
	"errors"
	"fmt"

	"github.com/infofreiheit/crowdfunding-service/internal/domain"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/postgres/mappers"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/postgres/models"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jaevor/go-nanoid"
	"gorm.io/gorm"
)

// maxSlugAttempts bounds the collision retries; with nanoid suffixes a
// second collision is already vanishingly unlikely.
const maxSlugAttempts = 5

// uniqueOngoingConstraint is the partial unique index guarding the
// one-ongoing-campaign-per-request rule (see migrations/0001_init.up.sql).
const uniqueOngoingConstraint = "uniq_campaigns_request_ongoing"

type DefaultCampaignRepository struct {
	DB *gorm.DB
}

func NewDefaultCampaignRepository(db *gorm.DB) *DefaultCampaignRepository {
	return &DefaultCampaignRepository{DB: db}
}

// CreateWithUniqueSlug persists the campaign under a slug derived from its
// title. The plain slug is tried first; on a slug collision a nanoid suffix
// is appended and the insert retried. Losing the ongoing-campaign race to a
// concurrent submission surfaces as ErrOngoingCampaign.
func (r *DefaultCampaignRepository) CreateWithUniqueSlug(campaign *domain.Campaign) error {
	base := slug.Make(campaign.Title)
	suffix, err := nanoid.Standard(8)
	if err != nil {
		return fmt.Errorf("init slug suffix generator: %w", err)
	}

	candidate := base
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		campaign.Slug = candidate
		model := mappers.ToGORMCampaign(campaign)
		err := r.DB.Create(model).Error
		if err == nil {
			campaign.CreatedAt = model.CreatedAt
			campaign.UpdatedAt = model.UpdatedAt
			return nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == uniqueOngoingConstraint {
				return domain.ErrOngoingCampaign
			}
			candidate = fmt.Sprintf("%s-%s", base, suffix())
			continue
		}
		return err
	}
	return domain.ErrSlugExhausted
}

func (r *DefaultCampaignRepository) GetCampaignByID(campaignID string) (*domain.Campaign, error) {
	var model models.CampaignModel
	if err := r.DB.First(&model, "id = ?", campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCampaign(&model), nil
}

func (r *DefaultCampaignRepository) GetCampaignsByRequestID(requestID string) ([]*domain.Campaign, error) {
	var campaignModels []models.CampaignModel
	if err := r.DB.Where("request_id = ?", requestID).Order("created_at").Find(&campaignModels).Error; err != nil {
		return nil, err
	}
	campaigns := make([]*domain.Campaign, len(campaignModels))
	for i := range campaignModels {
		campaigns[i] = mappers.ToDomainCampaign(&campaignModels[i])
	}
	return campaigns, nil
}
