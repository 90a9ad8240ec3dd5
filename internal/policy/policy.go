// Package policy holds the pure business rules behind the crowdfunding
// forms: funding target computation, free-text address parsing and the
// queries over a request's existing campaigns.
package policy

import (
	"regexp"
	"strings"

	"github.com/infofreiheit/crowdfunding-service/internal/domain"
	"github.com/shopspring/decimal"
)

// OverheadFactor is the platform cost markup applied to every requested
// amount. Overridable from config at startup, before any form is served.
var OverheadFactor = decimal.RequireFromString("1.25")

var ten = decimal.NewFromInt(10)

// postcodeRe matches the "12345 City" line ending of DE/AT/CH-style
// addresses: exactly five digits, whitespace, rest of the line.
var postcodeRe = regexp.MustCompile(`(\d{5})\s+(.*)`)

// FundingTarget applies the overhead factor to the requested amount and
// rounds the result up to the next multiple of 10.
func FundingTarget(amountRequested decimal.Decimal) decimal.Decimal {
	needed := amountRequested.Mul(OverheadFactor)
	return needed.Div(ten).Ceil().Mul(ten)
}

// ParsedAddress is the structured result of parsing a free-text address.
// The zero value means the text could not be parsed.
type ParsedAddress struct {
	StreetAddress string
	Postcode      string
	City          string
}

func (p ParsedAddress) IsZero() bool {
	return p == ParsedAddress{}
}

// ParseAddress extracts street address, postcode and city from free text.
// Only the first postcode match is used. Failure to parse is a normal
// outcome and yields the zero value.
func ParseAddress(address string) ParsedAddress {
	match := postcodeRe.FindStringSubmatch(address)
	if match == nil {
		return ParsedAddress{}
	}
	refined := strings.TrimSpace(strings.Replace(address, match[0], "", 1))
	lines := strings.Split(refined, "\n")
	return ParsedAddress{
		StreetAddress: strings.TrimSpace(lines[0]),
		Postcode:      match[1],
		City:          match[2],
	}
}

// CanStartCampaign reports whether a new campaign may be started given the
// request's existing campaigns. Any campaign not yet finished blocks a new
// one, regardless of kind.
func CanStartCampaign(campaigns []*domain.Campaign) bool {
	for _, c := range campaigns {
		if c.Status != domain.StatusFinished {
			return false
		}
	}
	return true
}

// AvailableKinds filters the offered cost categories down to those not
// already used by a non-finished campaign on the same request.
func AvailableKinds(campaigns []*domain.Campaign) []domain.CampaignKind {
	used := make(map[domain.CampaignKind]bool)
	for _, c := range campaigns {
		if c.Status != domain.StatusFinished {
			used[c.Kind] = true
		}
	}
	kinds := make([]domain.CampaignKind, 0, len(domain.CampaignKinds))
	for _, kind := range domain.CampaignKinds {
		if !used[kind] {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}
