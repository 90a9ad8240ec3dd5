package usecase

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/infofreiheit/crowdfunding-service/internal/domain"
	"github.com/infofreiheit/crowdfunding-service/internal/forms"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/kafka"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/metrics"
	contributiondto "github.com/infofreiheit/crowdfunding-service/internal/usecase/dto/contribution"
	"github.com/google/uuid"
)

type ContributionUsecase interface {
	Contribute(input *contributiondto.ContributeInput) (*domain.Contribution, error)
	GetContributionDefaults(campaignID, userID string) (*forms.ContributionDefaults, error)
}

type DefaultContributionUsecase struct {
	ContributionRepo domain.ContributionRepository
	CampaignRepo     domain.CampaignRepository
	Payments         domain.PaymentProvider
	Portal           domain.PortalProvider
	Publisher        domain.PublisherPort
	Metrics          *metrics.CrowdfundingMetrics
}

func NewDefaultContributionUsecase(
	contributionRepo domain.ContributionRepository,
	campaignRepo domain.CampaignRepository,
	payments domain.PaymentProvider,
	portal domain.PortalProvider,
	publisher domain.PublisherPort,
	crowdfundingMetrics *metrics.CrowdfundingMetrics) *DefaultContributionUsecase {

	return &DefaultContributionUsecase{
		ContributionRepo: contributionRepo,
		CampaignRepo:     campaignRepo,
		Payments:         payments,
		Portal:           portal,
		Publisher:        publisher,
		Metrics:          crowdfundingMetrics,
	}
}

// Contribute validates a contribution submission, creates the backing order
// at the payment service and only then persists the contribution. A failed
// order creation leaves no contribution behind.
func (uc *DefaultContributionUsecase) Contribute(input *contributiondto.ContributeInput) (*domain.Contribution, error) {
	campaign, err := uc.CampaignRepo.GetCampaignByID(input.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	methods, err := uc.Payments.GetPaymentMethods()
	if err != nil {
		return nil, fmt.Errorf("get payment methods: %w", err)
	}

	form := forms.NewContributionForm(nil, methods)
	data, ve := form.Validate(input.Values)
	if ve != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordValidationError("contribution")
		}
		return nil, ve
	}

	addressLines := splitLines(data.Address)
	order := &domain.Order{
		UserID:         input.UserID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		StreetAddress1: addressLines[0],
		StreetAddress2: strings.Join(addressLines[1:], "\n"),
		City:           data.City,
		Postcode:       data.Postcode,
		Country:        data.Country,
		UserEmail:      data.Email,
		TotalNet:       data.Amount,
		TotalGross:     data.Amount,
		IsDonation:     true,
		Kind:           domain.OrderKindContribution,
		Description:    fmt.Sprintf("Contribution to Crowdfunding “%s”", campaign.Title),
		PaymentMethod:  data.Method,
	}
	orderID, err := uc.Payments.CreateOrder(order)
	if err != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordCollaboratorError("payment")
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrOrderCreationFailed, err)
	}

	contribution := &domain.Contribution{
		ID:         uuid.NewString(),
		CampaignID: campaign.ID,
		UserID:     input.UserID,
		Amount:     data.Amount,
		Note:       data.Note,
		Public:     data.Public,
		OrderID:    orderID,
	}
	if err := uc.ContributionRepo.CreateContribution(contribution); err != nil {
		return nil, fmt.Errorf("create contribution: %w", err)
	}

	if uc.Metrics != nil {
		amount, _ := contribution.Amount.Float64()
		uc.Metrics.RecordContribution(data.Method, amount)
	}
	if uc.Publisher != nil {
		event := kafka.ContributionReceivedEvent{
			ContributionID: contribution.ID,
			CampaignID:     contribution.CampaignID,
			OrderID:        contribution.OrderID,
			Amount:         contribution.Amount.String(),
			Public:         contribution.Public,
			Timestamp:      time.Now(),
		}
		if err := kafka.PublishContributionReceived(uc.Publisher, event); err != nil {
			slog.Error("failed to publish contribution event", "contribution_id", contribution.ID, "error", err.Error())
		}
	}

	return contribution, nil
}

// GetContributionDefaults returns the prefilled form values for a campaign,
// including profile fields and the parsed stored address of a known user.
func (uc *DefaultContributionUsecase) GetContributionDefaults(campaignID, userID string) (*forms.ContributionDefaults, error) {
	if _, err := uc.CampaignRepo.GetCampaignByID(campaignID); err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	methods, err := uc.Payments.GetPaymentMethods()
	if err != nil {
		return nil, fmt.Errorf("get payment methods: %w", err)
	}
	var user *domain.User
	if userID != "" {
		user, err = uc.Portal.GetUser(userID)
		if err != nil {
			return nil, fmt.Errorf("get user: %w", err)
		}
	}
	defaults := forms.NewContributionForm(user, methods).Initial()
	return &defaults, nil
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
