package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Confirmation is a pledge confirmation sent to a backer
type Confirmation struct {
	Email         string          `json:"email"`
	BackerName    string          `json:"backer_name"`
	CampaignID    string          `json:"campaign_id"`
	CampaignTitle string          `json:"campaign_title"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PledgeID      string          `json:"pledge_id"`
}

// PledgeEvent is published each time a pledge is created or changes status
type PledgeEvent struct {
	PledgeID   string          `json:"pledge_id"`
	CampaignID string          `json:"campaign_id"`
	Status     PledgeStatus    `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	PaymentRef string          `json:"payment_ref"`
	OccurredAt time.Time       `json:"occurred_at"`
}
