package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PledgeStatus is a lifecycle state of a pledge
type PledgeStatus string

const (
	PledgePending  = PledgeStatus("pending")
	PledgeCaptured = PledgeStatus("captured")
	PledgeFailed   = PledgeStatus("failed")
)

// Terminal reports whether no transition is defined out of the status.
func (s PledgeStatus) Terminal() bool {
	return s == PledgeCaptured || s == PledgeFailed
}

// CampaignStatus is a publishing state of a campaign
type CampaignStatus string

const (
	CampaignDraft     = CampaignStatus("draft")
	CampaignPublished = CampaignStatus("published")
	CampaignPaused    = CampaignStatus("paused")
	CampaignFunded    = CampaignStatus("funded")
)

// CanTransition reports whether a user may move a campaign from s to next.
// Funded is set by the sweeper only.
func (s CampaignStatus) CanTransition(next CampaignStatus) bool {
	switch s {
	case CampaignDraft:
		return next == CampaignPublished
	case CampaignPublished:
		return next == CampaignPaused
	case CampaignPaused:
		return next == CampaignPublished
	default:
		return false
	}
}

//noinspection SpellCheckingInspection
type Campaign struct {
	ID           string          `sql:",pk" json:"id"`
	Title        string          `json:"title"`
	Goal         decimal.Decimal `sql:",notnull" json:"goal"`
	RaisedAmount decimal.Decimal `sql:",notnull" json:"raised_amount"`
	Currency     string          `json:"currency"`
	Status       CampaignStatus  `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

type Backer struct {
	ID        string    `sql:",pk" json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Roles     []string  `sql:",array" json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

type Pledge struct {
	ID               string          `sql:",pk" json:"id"`
	CampaignID       string          `json:"campaign_id"`
	BackerID         string          `json:"backer_id"`
	PledgeTierID     string          `json:"pledge_tier_id,omitempty"` // Optional, stored as NULL when empty
	Amount           decimal.Decimal `sql:",notnull" json:"amount"`
	Currency         string          `json:"currency"`
	Status           PledgeStatus    `json:"status"`
	PaymentRef       string          `json:"payment_ref"` // Stripe payment intent ID
	GatewaySessionID string          `json:"gateway_session_id"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	// Populated by lookups that join backer and campaign
	Backer   *Backer   `sql:"-" json:"backer,omitempty"`
	Campaign *Campaign `sql:"-" json:"campaign,omitempty"`
}
