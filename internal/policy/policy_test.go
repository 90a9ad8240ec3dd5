package policy

import (
	"testing"

	"github.com/infofreiheit/crowdfunding-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFundingTarget(t *testing.T) {
	testCases := []struct {
		requested string
		expected  string
	}{
		{"10", "20"},
		{"100", "130"},
		{"80", "100"},
		{"79", "100"},
		{"0", "0"},
		{"15.50", "20"},
		{"987.65", "1240"},
	}

	for _, tc := range testCases {
		t.Run(tc.requested, func(t *testing.T) {
			requested := decimal.RequireFromString(tc.requested)
			needed := FundingTarget(requested)
			assert.True(t, needed.Equal(decimal.RequireFromString(tc.expected)),
				"FundingTarget(%s) = %s, expected %s", tc.requested, needed, tc.expected)
		})
	}
}

func TestFundingTargetProperties(t *testing.T) {
	for _, requested := range []string{"10", "11", "33.33", "250", "999.99", "1234567.89"} {
		amount := decimal.RequireFromString(requested)
		needed := FundingTarget(amount)

		assert.True(t, needed.Mod(decimal.NewFromInt(10)).IsZero(),
			"FundingTarget(%s) = %s is not a multiple of 10", requested, needed)
		assert.True(t, needed.GreaterThanOrEqual(amount.Mul(OverheadFactor)),
			"FundingTarget(%s) = %s is below the overhead-adjusted value", requested, needed)
	}
}

func TestParseAddress(t *testing.T) {
	parsed := ParseAddress("Main Street 1\n12345 Springfield")

	assert.Equal(t, "Main Street 1", parsed.StreetAddress)
	assert.Equal(t, "12345", parsed.Postcode)
	assert.Equal(t, "Springfield", parsed.City)
}

func TestParseAddressNoPostcode(t *testing.T) {
	parsed := ParseAddress("no postcode here")
	assert.True(t, parsed.IsZero())
}

func TestParseAddressShortPostcode(t *testing.T) {
	parsed := ParseAddress("1234 too short")
	assert.True(t, parsed.IsZero())
}

func TestParseAddressExtraLinesDiscarded(t *testing.T) {
	parsed := ParseAddress("Main Street 1\nBackyard, 2nd floor\n12345 Springfield")

	assert.Equal(t, "Main Street 1", parsed.StreetAddress)
	assert.Equal(t, "12345", parsed.Postcode)
	assert.Equal(t, "Springfield", parsed.City)
}

func TestParseAddressFirstMatchWins(t *testing.T) {
	parsed := ParseAddress("Main Street 1\n12345 Springfield\n67890 Shelbyville")

	assert.Equal(t, "12345", parsed.Postcode)
	assert.Equal(t, "Springfield", parsed.City)
}

func TestCanStartCampaign(t *testing.T) {
	assert.True(t, CanStartCampaign(nil))
	assert.True(t, CanStartCampaign([]*domain.Campaign{
		{Kind: domain.KindFees, Status: domain.StatusFinished},
		{Kind: domain.KindResearch, Status: domain.StatusFinished},
	}))
	assert.False(t, CanStartCampaign([]*domain.Campaign{
		{Kind: domain.KindFees, Status: domain.StatusFinished},
		{Kind: domain.KindResearch, Status: domain.StatusRunning},
	}))
	assert.False(t, CanStartCampaign([]*domain.Campaign{
		{Kind: domain.KindFees, Status: domain.StatusInactive},
	}))
}

func TestAvailableKinds(t *testing.T) {
	kinds := AvailableKinds(nil)
	require.Equal(t, domain.CampaignKinds, kinds)

	kinds = AvailableKinds([]*domain.Campaign{
		{Kind: domain.KindFees, Status: domain.StatusRunning},
	})
	assert.NotContains(t, kinds, domain.KindFees)
	assert.Contains(t, kinds, domain.KindLegalAction)

	// Finished campaigns release their kind again.
	kinds = AvailableKinds([]*domain.Campaign{
		{Kind: domain.KindFees, Status: domain.StatusFinished},
	})
	assert.Contains(t, kinds, domain.KindFees)
}
