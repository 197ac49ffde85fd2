package api

import (
	"github.com/shopspring/decimal"

	"github.com/mxpv/pledgesync/pkg/model"
)

const (
	DefaultTopLimit = 10
	MaxTopLimit     = 100
)

type CreateCampaignRequest struct {
	Title    string          `json:"title" binding:"required,max=200"`
	Goal     decimal.Decimal `json:"goal"` // Must be positive, checked by handler
	Currency string          `json:"currency" binding:"omitempty,len=3,lowercase"`
}

type UpdateStatusRequest struct {
	Status model.CampaignStatus `json:"status" binding:"required,oneof=draft published paused funded"`
}

type CheckoutRequest struct {
	Email      string          `json:"email" binding:"required,email"`
	Name       string          `json:"name" binding:"max=200"`
	Amount     decimal.Decimal `json:"amount"`
	TierID     string          `json:"tier_id"`
	SuccessURL string          `json:"success_url" binding:"required,url"`
	CancelURL  string          `json:"cancel_url" binding:"required,url"`
}

type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// RefundRequest refunds part of a captured pledge, zero amount means full refund
type RefundRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type Refund struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Status   string          `json:"status"`
}
