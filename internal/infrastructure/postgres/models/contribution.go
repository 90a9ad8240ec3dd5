package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContributionModel struct {
	ID         string          `gorm:"primaryKey;type:uuid"`
	CampaignID string          `gorm:"type:uuid;not null;index"`
	Campaign   CampaignModel   `gorm:"foreignKey:CampaignID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	UserID     *string         `gorm:"type:uuid"`
	Amount     decimal.Decimal `gorm:"type:numeric(10,2)"`
	Note       string          `gorm:"size:260"`
	Public     bool
	OrderID    string `gorm:"not null;uniqueIndex"`
	CreatedAt  time.Time
}

func (ContributionModel) TableName() string {
	return "contributions"
}
