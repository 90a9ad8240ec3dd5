package forms

import (
	"strings"
	"testing"

	"github.com/infofreiheit/crowdfunding-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCampaignStartValues() CampaignStartValues {
	return CampaignStartValues{
		Title:           "Fees for environmental data request",
		Kind:            "fees",
		Description:     "I want to know what was measured.",
		PublicInterest:  "Everyone breathes this air.",
		AmountRequested: "150",
		Terms:           "on",
	}
}

func testFoiRequest() *domain.FoiRequest {
	return &domain.FoiRequest{
		ID:    "0b5f6a0e-8f3b-4f21-9f21-0c4f6f8b2a01",
		Title: "Environmental data request",
	}
}

func TestCampaignStartValidSubmission(t *testing.T) {
	form := NewCampaignStartForm(testFoiRequest(), nil)

	data, ve := form.Validate(validCampaignStartValues())

	require.Nil(t, ve)
	assert.Equal(t, "Fees for environmental data request", data.Title)
	assert.Equal(t, domain.KindFees, data.Kind)
	assert.True(t, data.AmountRequested.Equal(decimal.NewFromInt(150)))
}

func TestCampaignStartFieldErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*CampaignStartValues)
		field  string
		code   string
	}{
		{"missing title", func(v *CampaignStartValues) { v.Title = "" }, "title", CodeRequired},
		{"title too long", func(v *CampaignStartValues) { v.Title = strings.Repeat("x", 256) }, "title", CodeMaxLength},
		{"missing description", func(v *CampaignStartValues) { v.Description = " " }, "description", CodeRequired},
		{"missing public interest", func(v *CampaignStartValues) { v.PublicInterest = "" }, "public_interest", CodeRequired},
		{"amount below minimum", func(v *CampaignStartValues) { v.AmountRequested = "9.99" }, "amount_requested", CodeMinValue},
		{"amount not a number", func(v *CampaignStartValues) { v.AmountRequested = "lots" }, "amount_requested", CodeInvalid},
		{"too many decimal places", func(v *CampaignStartValues) { v.AmountRequested = "10.123" }, "amount_requested", CodeDecimalPlaces},
		{"too many digits", func(v *CampaignStartValues) { v.AmountRequested = "123456789.99" }, "amount_requested", CodeMaxDigits},
		{"unknown kind", func(v *CampaignStartValues) { v.Kind = "snacks" }, "kind", CodeInvalidChoice},
		{"terms not accepted", func(v *CampaignStartValues) { v.Terms = "" }, "terms", CodeRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			form := NewCampaignStartForm(testFoiRequest(), nil)
			values := validCampaignStartValues()
			tc.mutate(&values)

			data, ve := form.Validate(values)

			require.NotNil(t, ve)
			assert.Nil(t, data)
			require.Len(t, ve.FieldErrors, 1)
			assert.Equal(t, tc.field, ve.FieldErrors[0].Field)
			assert.Equal(t, tc.code, ve.FieldErrors[0].Code)
		})
	}
}

func TestCampaignStartOngoingCampaignGate(t *testing.T) {
	existing := []*domain.Campaign{
		{Kind: domain.KindResearch, Status: domain.StatusRunning},
	}
	form := NewCampaignStartForm(testFoiRequest(), existing)

	data, ve := form.Validate(validCampaignStartValues())

	require.NotNil(t, ve)
	assert.Nil(t, data)
	assert.Empty(t, ve.FieldErrors)
	assert.Equal(t, domain.ErrOngoingCampaign.Error(), ve.FormError)
}

func TestCampaignStartKindTakenByOngoingCampaign(t *testing.T) {
	// The kind filter narrows the offered choices independently of the
	// absolute ongoing-campaign gate; field errors are reported first.
	existing := []*domain.Campaign{
		{Kind: domain.KindFees, Status: domain.StatusRunning},
	}
	form := NewCampaignStartForm(testFoiRequest(), existing)

	_, ve := form.Validate(validCampaignStartValues())

	require.NotNil(t, ve)
	require.Len(t, ve.FieldErrors, 1)
	assert.Equal(t, "kind", ve.FieldErrors[0].Field)
}

func TestCampaignStartInitial(t *testing.T) {
	costs := decimal.RequireFromString("42.50")
	foirequest := testFoiRequest()
	foirequest.Costs = &costs
	existing := []*domain.Campaign{
		{Kind: domain.KindFees, Status: domain.StatusRunning},
	}

	defaults := NewCampaignStartForm(foirequest, existing).Initial()

	assert.Equal(t, "Environmental data request", defaults.Title)
	assert.True(t, defaults.AmountRequested.Equal(costs))
	assert.NotContains(t, defaults.Kinds, domain.KindFees)
}

func TestCampaignStartInitialWithoutCosts(t *testing.T) {
	defaults := NewCampaignStartForm(testFoiRequest(), nil).Initial()

	assert.True(t, defaults.AmountRequested.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, domain.CampaignKinds, defaults.Kinds)
}
