package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	StatusInactive  CampaignStatus = "inactive"
	StatusRunning   CampaignStatus = "running"
	StatusFinished  CampaignStatus = "finished"
	StatusCancelled CampaignStatus = "cancelled"
)

type CampaignKind string

const (
	KindFees        CampaignKind = "fees"
	KindLegalAction CampaignKind = "legal_action"
	KindResearch    CampaignKind = "research"
	KindOther       CampaignKind = "other"
)

// CampaignKinds is the full set of cost categories offered on a fresh
// request, in display order.
var CampaignKinds = []CampaignKind{
	KindFees,
	KindLegalAction,
	KindResearch,
	KindOther,
}

type Campaign struct {
	ID              string
	Slug            string
	Title           string
	Kind            CampaignKind
	Description     string
	PublicInterest  string
	AmountRequested decimal.Decimal
	AmountNeeded    decimal.Decimal
	Status          CampaignStatus
	UserID          string
	RequestID       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ValidCampaignKind(kind CampaignKind) bool {
	for _, k := range CampaignKinds {
		if k == kind {
			return true
		}
	}
	return false
}
