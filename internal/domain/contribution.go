package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Contribution struct {
	ID         string
	CampaignID string
	// UserID is empty for anonymous/guest contributions.
	UserID    string
	Amount    decimal.Decimal
	Note      string
	Public    bool
	OrderID   string
	CreatedAt time.Time
}
