package kafka

import (
	"encoding/json"
	"time"

	"github.com/infofreiheit/crowdfunding-service/internal/domain"
)

const ContributionEventsTopic = "contribution-events"

type ContributionReceivedEvent struct {
	ContributionID string    `json:"contribution_id"`
	CampaignID     string    `json:"campaign_id"`
	OrderID        string    `json:"order_id"`
	Amount         string    `json:"amount"`
	Public         bool      `json:"public"`
	Timestamp      time.Time `json:"timestamp"`
}

func PublishContributionReceived(p domain.PublisherPort, event ContributionReceivedEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Publish(ContributionEventsTopic, domain.Message{Key: []byte(event.CampaignID), Value: v})
}
