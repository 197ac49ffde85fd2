package queue

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/mxpv/pledgesync/pkg/model"
)

// LogSender writes confirmations to the log instead of delivering them.
// Used when no queue is configured.
type LogSender struct{}

func (LogSender) Notify(_ context.Context, c *model.Confirmation) error {
	log.WithFields(log.Fields{
		"email":       c.Email,
		"campaign_id": c.CampaignID,
		"pledge_id":   c.PledgeID,
		"amount":      c.Amount.String(),
		"currency":    c.Currency,
	}).Infof("pledge confirmation for %q", c.CampaignTitle)

	return nil
}
