package forms

import (
	"github.com/infofreiheit/crowdfunding-service/internal/domain"
	"github.com/infofreiheit/crowdfunding-service/internal/policy"
	"github.com/shopspring/decimal"
)

// CampaignStartValues are the raw field values of a campaign-start
// submission, as received from the web form.
type CampaignStartValues struct {
	Title           string
	Kind            string
	Description     string
	PublicInterest  string
	AmountRequested string
	Terms           string
}

// CampaignStartData is the cleaned result of a valid submission.
type CampaignStartData struct {
	Title           string
	Kind            domain.CampaignKind
	Description     string
	PublicInterest  string
	AmountRequested decimal.Decimal
}

// CampaignStartDefaults are the initial field values offered to the user.
type CampaignStartDefaults struct {
	Title           string                `json:"title"`
	AmountRequested decimal.Decimal       `json:"amount_requested"`
	Kinds           []domain.CampaignKind `json:"kinds"`
}

var minAmountRequested = decimal.NewFromInt(10)

// CampaignStartForm validates campaign-start submissions for one FOI
// request. The request and its existing campaigns are passed in explicitly;
// the form holds no hidden framework state.
type CampaignStartForm struct {
	Request   *domain.FoiRequest
	Campaigns []*domain.Campaign
}

func NewCampaignStartForm(request *domain.FoiRequest, campaigns []*domain.Campaign) *CampaignStartForm {
	return &CampaignStartForm{Request: request, Campaigns: campaigns}
}

// Initial returns the prefilled field values: the request title, the
// request's recorded costs when present, and the kinds not already taken by
// a non-finished campaign.
func (f *CampaignStartForm) Initial() CampaignStartDefaults {
	defaults := CampaignStartDefaults{
		Title:           f.Request.Title,
		AmountRequested: minAmountRequested,
		Kinds:           policy.AvailableKinds(f.Campaigns),
	}
	if f.Request.Costs != nil {
		defaults.AmountRequested = *f.Request.Costs
	}
	return defaults
}

// Validate runs field validation, then the request-level ongoing-campaign
// gate. It returns cleaned data or a ValidationError; never both.
func (f *CampaignStartForm) Validate(values CampaignStartValues) (*CampaignStartData, *ValidationError) {
	ve := &ValidationError{}

	data := &CampaignStartData{
		Title:          cleanString(ve, "title", values.Title, true, 255),
		Description:    cleanString(ve, "description", values.Description, true, 0),
		PublicInterest: cleanString(ve, "public_interest", values.PublicInterest, true, 0),
	}
	data.AmountRequested = cleanDecimal(ve, "amount_requested", values.AmountRequested, minAmountRequested, 10, 2)

	kind := domain.CampaignKind(cleanString(ve, "kind", values.Kind, true, 0))
	if kind != "" {
		if !kindOffered(kind, policy.AvailableKinds(f.Campaigns)) {
			ve.AddFieldError("kind", CodeInvalidChoice, "select a valid kind of costs")
		} else {
			data.Kind = kind
		}
	}

	if !cleanBool(values.Terms) {
		ve.AddFieldError("terms", CodeRequired, "you need to accept our crowdfunding terms")
	}

	if ve.HasErrors() {
		return nil, ve
	}

	if !policy.CanStartCampaign(f.Campaigns) {
		ve.FormError = domain.ErrOngoingCampaign.Error()
		return nil, ve
	}

	return data, nil
}

func kindOffered(kind domain.CampaignKind, offered []domain.CampaignKind) bool {
	for _, k := range offered {
		if k == kind {
			return true
		}
	}
	return false
}
