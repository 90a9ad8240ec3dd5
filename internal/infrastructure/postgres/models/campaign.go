package models

import (
	"time"

	"github.com/infofreiheit/crowdfunding-service/internal/domain"
	"github.com/shopspring/decimal"
)

type CampaignModel struct {
	ID              string                `gorm:"primaryKey;type:uuid"`
	Slug            string                `gorm:"uniqueIndex"`
	Title           string                `gorm:"size:255"`
	Kind            domain.CampaignKind   `gorm:"size:32"`
	Description     string                `gorm:"type:text"`
	PublicInterest  string                `gorm:"type:text"`
	AmountRequested decimal.Decimal       `gorm:"type:numeric(10,2)"`
	AmountNeeded    decimal.Decimal       `gorm:"type:numeric(10,2)"`
	Status          domain.CampaignStatus `gorm:"size:32;index:idx_request_status"`
	UserID          *string               `gorm:"type:uuid"`
	RequestID       string                `gorm:"type:uuid;index:idx_request_status"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (CampaignModel) TableName() string {
	return "campaigns"
}
