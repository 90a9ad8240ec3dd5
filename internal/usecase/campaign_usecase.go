package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/infofreiheit/crowdfunding-service/internal/domain"
	"github.com/infofreiheit/crowdfunding-service/internal/forms"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/kafka"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/metrics"
	"github.com/infofreiheit/crowdfunding-service/internal/policy"
	campaigndto "github.com/infofreiheit/crowdfunding-service/internal/usecase/dto/campaign"
	"github.com/google/uuid"
)

type CampaignUsecase interface {
	StartCampaign(input *campaigndto.StartCampaignInput) (*domain.Campaign, error)
	GetStartDefaults(requestID string) (*forms.CampaignStartDefaults, error)
}

type DefaultCampaignUsecase struct {
	CampaignRepo domain.CampaignRepository
	Portal       domain.PortalProvider
	Publisher    domain.PublisherPort
	Metrics      *metrics.CrowdfundingMetrics
}

func NewDefaultCampaignUsecase(
	campaignRepo domain.CampaignRepository,
	portal domain.PortalProvider,
	publisher domain.PublisherPort,
	crowdfundingMetrics *metrics.CrowdfundingMetrics) *DefaultCampaignUsecase {

	return &DefaultCampaignUsecase{
		CampaignRepo: campaignRepo,
		Portal:       portal,
		Publisher:    publisher,
		Metrics:      crowdfundingMetrics,
	}
}

// StartCampaign validates a campaign-start submission against the FOI
// request's existing campaigns and persists the campaign. Either all checks
// pass and exactly one campaign is created, or nothing is persisted and the
// validation error is returned.
func (uc *DefaultCampaignUsecase) StartCampaign(input *campaigndto.StartCampaignInput) (*domain.Campaign, error) {
	foirequest, err := uc.Portal.GetFoiRequest(input.RequestID)
	if err != nil {
		return nil, fmt.Errorf("get foi request: %w", err)
	}
	existing, err := uc.CampaignRepo.GetCampaignsByRequestID(input.RequestID)
	if err != nil {
		return nil, fmt.Errorf("get existing campaigns: %w", err)
	}

	form := forms.NewCampaignStartForm(foirequest, existing)
	data, ve := form.Validate(input.Values)
	if ve != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordValidationError("campaign_start")
		}
		return nil, ve
	}

	campaign := &domain.Campaign{
		ID:              uuid.NewString(),
		Title:           data.Title,
		Kind:            data.Kind,
		Description:     data.Description,
		PublicInterest:  data.PublicInterest,
		AmountRequested: data.AmountRequested,
		AmountNeeded:    policy.FundingTarget(data.AmountRequested),
		Status:          domain.StatusRunning,
		UserID:          input.UserID,
		RequestID:       input.RequestID,
	}
	if err := uc.CampaignRepo.CreateWithUniqueSlug(campaign); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	if uc.Metrics != nil {
		amountNeeded, _ := campaign.AmountNeeded.Float64()
		uc.Metrics.RecordCampaignStarted(string(campaign.Kind), amountNeeded)
	}
	if uc.Publisher != nil {
		event := kafka.CampaignStartedEvent{
			CampaignID:      campaign.ID,
			RequestID:       campaign.RequestID,
			UserID:          campaign.UserID,
			Kind:            string(campaign.Kind),
			AmountRequested: campaign.AmountRequested.String(),
			AmountNeeded:    campaign.AmountNeeded.String(),
			Timestamp:       time.Now(),
		}
		if err := kafka.PublishCampaignStarted(uc.Publisher, event); err != nil {
			slog.Error("failed to publish campaign started event", "campaign_id", campaign.ID, "error", err.Error())
		}
	}

	return campaign, nil
}

// GetStartDefaults returns the prefilled form values for a request: title,
// cost estimate and the kinds still open for a new campaign.
func (uc *DefaultCampaignUsecase) GetStartDefaults(requestID string) (*forms.CampaignStartDefaults, error) {
	foirequest, err := uc.Portal.GetFoiRequest(requestID)
	if err != nil {
		return nil, fmt.Errorf("get foi request: %w", err)
	}
	existing, err := uc.CampaignRepo.GetCampaignsByRequestID(requestID)
	if err != nil {
		return nil, fmt.Errorf("get existing campaigns: %w", err)
	}
	defaults := forms.NewCampaignStartForm(foirequest, existing).Initial()
	return &defaults, nil
}
