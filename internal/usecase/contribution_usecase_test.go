package usecase

import (
	"errors"
	"testing"

	"github.com/infofreiheit/crowdfunding-service/internal/domain"
	"github.com/infofreiheit/crowdfunding-service/internal/forms"
	contributiondto "github.com/infofreiheit/crowdfunding-service/internal/usecase/dto/contribution"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContributionRepo struct {
	contributions []*domain.Contribution
}

func (r *fakeContributionRepo) CreateContribution(contribution *domain.Contribution) error {
	r.contributions = append(r.contributions, contribution)
	return nil
}

func (r *fakeContributionRepo) GetContributionsByCampaignID(campaignID string) ([]*domain.Contribution, error) {
	return r.contributions, nil
}

type fakePaymentProvider struct {
	orders    []*domain.Order
	createErr error
}

func (p *fakePaymentProvider) CreateOrder(order *domain.Order) (string, error) {
	if p.createErr != nil {
		return "", p.createErr
	}
	p.orders = append(p.orders, order)
	return "order-42", nil
}

func (p *fakePaymentProvider) GetPaymentMethods() ([]string, error) {
	return []string{"creditcard", "sepa"}, nil
}

const testCampaignID = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"

func validContributeInput() *contributiondto.ContributeInput {
	return &contributiondto.ContributeInput{
		CampaignID: testCampaignID,
		UserID:     "user-1",
		Values: forms.ContributionValues{
			Amount:    "25",
			Note:      "Good luck!",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Public:    "on",
			Address:   "Main Street 1",
			Postcode:  "12345",
			City:      "Springfield",
			Country:   "DE",
			Email:     "ada@example.org",
			Method:    "sepa",
			Terms:     "on",
		},
	}
}

func newContributionTestUsecase(contributions *fakeContributionRepo, payments *fakePaymentProvider, pub *fakePublisher) *DefaultContributionUsecase {
	campaigns := &fakeCampaignRepo{campaigns: []*domain.Campaign{
		{ID: testCampaignID, Title: "Fees for environmental data request", Status: domain.StatusRunning},
	}}
	portal := &fakePortal{user: &domain.User{
		ID:        "user-1",
		Email:     "ada@example.org",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address:   "Main Street 1\n12345 Springfield",
	}}
	return NewDefaultContributionUsecase(contributions, campaigns, payments, portal, pub, nil)
}

func TestContribute(t *testing.T) {
	contributions := &fakeContributionRepo{}
	payments := &fakePaymentProvider{}
	pub := &fakePublisher{}
	uc := newContributionTestUsecase(contributions, payments, pub)

	contribution, err := uc.Contribute(validContributeInput())

	require.NoError(t, err)
	require.Len(t, payments.orders, 1)
	require.Len(t, contributions.contributions, 1)

	order := payments.orders[0]
	assert.Equal(t, "Main Street 1", order.StreetAddress1)
	assert.Empty(t, order.StreetAddress2)
	assert.True(t, order.TotalNet.Equal(decimal.NewFromInt(25)))
	assert.True(t, order.TotalGross.Equal(order.TotalNet))
	assert.True(t, order.IsDonation)
	assert.Equal(t, domain.OrderKindContribution, order.Kind)
	assert.Contains(t, order.Description, "Fees for environmental data request")

	assert.Equal(t, "order-42", contribution.OrderID)
	assert.Equal(t, testCampaignID, contribution.CampaignID)
	assert.Equal(t, "user-1", contribution.UserID)
	assert.Len(t, pub.published, 1)
}

func TestContributeMultilineAddress(t *testing.T) {
	payments := &fakePaymentProvider{}
	uc := newContributionTestUsecase(&fakeContributionRepo{}, payments, &fakePublisher{})

	input := validContributeInput()
	input.Values.Address = "Main Street 1\nBackyard\n2nd floor"

	_, err := uc.Contribute(input)

	require.NoError(t, err)
	require.Len(t, payments.orders, 1)
	assert.Equal(t, "Main Street 1", payments.orders[0].StreetAddress1)
	assert.Equal(t, "Backyard\n2nd floor", payments.orders[0].StreetAddress2)
}

func TestContributeAmountBelowMinimum(t *testing.T) {
	contributions := &fakeContributionRepo{}
	payments := &fakePaymentProvider{}
	uc := newContributionTestUsecase(contributions, payments, &fakePublisher{})

	input := validContributeInput()
	input.Values.Amount = "0.50"

	contribution, err := uc.Contribute(input)

	assert.Nil(t, contribution)
	var ve *forms.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.FieldErrors, 1)
	assert.Equal(t, "amount", ve.FieldErrors[0].Field)
	assert.Empty(t, payments.orders)
	assert.Empty(t, contributions.contributions)
}

func TestContributeOrderFailureCreatesNoContribution(t *testing.T) {
	contributions := &fakeContributionRepo{}
	payments := &fakePaymentProvider{createErr: errors.New("payment service unavailable")}
	uc := newContributionTestUsecase(contributions, payments, &fakePublisher{})

	contribution, err := uc.Contribute(validContributeInput())

	assert.Nil(t, contribution)
	assert.True(t, errors.Is(err, domain.ErrOrderCreationFailed))
	assert.Empty(t, contributions.contributions)
}

func TestContributeGuest(t *testing.T) {
	payments := &fakePaymentProvider{}
	uc := newContributionTestUsecase(&fakeContributionRepo{}, payments, &fakePublisher{})

	input := validContributeInput()
	input.UserID = ""

	contribution, err := uc.Contribute(input)

	require.NoError(t, err)
	assert.Empty(t, contribution.UserID)
	assert.Empty(t, payments.orders[0].UserID)
}

func TestGetContributionDefaults(t *testing.T) {
	uc := newContributionTestUsecase(&fakeContributionRepo{}, &fakePaymentProvider{}, &fakePublisher{})

	defaults, err := uc.GetContributionDefaults(testCampaignID, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "ada@example.org", defaults.Email)
	assert.Equal(t, "Main Street 1", defaults.Address)
	assert.Equal(t, "12345", defaults.Postcode)
	assert.Equal(t, "Springfield", defaults.City)
	assert.Equal(t, "creditcard", defaults.Method)
}

func TestGetContributionDefaultsGuest(t *testing.T) {
	uc := newContributionTestUsecase(&fakeContributionRepo{}, &fakePaymentProvider{}, &fakePublisher{})

	defaults, err := uc.GetContributionDefaults(testCampaignID, "")

	require.NoError(t, err)
	assert.Empty(t, defaults.Email)
	assert.Equal(t, []string{"creditcard", "sepa"}, defaults.Methods)
}

func TestGetContributionDefaultsUnknownCampaign(t *testing.T) {
	uc := newContributionTestUsecase(&fakeContributionRepo{}, &fakePaymentProvider{}, &fakePublisher{})

	_, err := uc.GetContributionDefaults("unknown", "")
	assert.True(t, errors.Is(err, domain.ErrCampaignNotFound))
}
