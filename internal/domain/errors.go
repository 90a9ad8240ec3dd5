package domain

import "errors"

var (
	ErrOngoingCampaign     = errors.New("an ongoing crowdfunding campaign already exists for this request")
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrRequestNotFound     = errors.New("request not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrOrderCreationFailed = errors.New("failed to create payment order")
	ErrSlugExhausted       = errors.New("failed to generate unique campaign slug")
)
