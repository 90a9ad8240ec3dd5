package kafka

import (
	"encoding/json"
	"time"

	"github.com/infofreiheit/crowdfunding-service/internal/domain"
)

const CampaignEventsTopic = "campaign-events"

type CampaignStartedEvent struct {
	CampaignID      string    `json:"campaign_id"`
	RequestID       string    `json:"request_id"`
	UserID          string    `json:"user_id"`
	Kind            string    `json:"kind"`
	AmountRequested string    `json:"amount_requested"`
	AmountNeeded    string    `json:"amount_needed"`
	Timestamp       time.Time `json:"timestamp"`
}

func PublishCampaignStarted(p domain.PublisherPort, event CampaignStartedEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Publish(CampaignEventsTopic, domain.Message{Key: []byte(event.RequestID), Value: v})
}
