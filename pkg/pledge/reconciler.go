package pledge

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v81"

	"github.com/mxpv/pledgesync/pkg/metrics"
	"github.com/mxpv/pledgesync/pkg/model"
	"github.com/mxpv/pledgesync/pkg/webhook"
)

// ErrIncompleteMetadata is returned when a checkout session lacks campaign or backer ids.
// Such sessions are acknowledged without any writes.
var ErrIncompleteMetadata = errors.New("checkout session metadata is incomplete")

type store interface {
	RecordPledge(ctx context.Context, pledge *model.Pledge) (bool, error)
	TransitionPledges(ctx context.Context, paymentRef string, status model.PledgeStatus) (int, error)
	GetPledgeByPaymentRef(ctx context.Context, paymentRef string) (*model.Pledge, error)
}

type notifier interface {
	Notify(ctx context.Context, confirmation *model.Confirmation) error
}

type publisher interface {
	Publish(ctx context.Context, event *model.PledgeEvent) error
}

type counter interface {
	Inc(metric, campaignID string, amount decimal.Decimal) (int64, error)
}

type deduplicator interface {
	Seen(eventID string) (bool, error)
	Mark(eventID string, eventType string) error
}

type Option func(r *Reconciler)

// WithPublisher publishes a PledgeEvent after each pledge change
func WithPublisher(p publisher) Option {
	return func(r *Reconciler) {
		r.publisher = p
	}
}

// WithStats counts captured pledges per campaign
func WithStats(s counter) Option {
	return func(r *Reconciler) {
		r.stats = s
	}
}

// WithDeduplicator skips events that were already processed successfully
func WithDeduplicator(d deduplicator) Option {
	return func(r *Reconciler) {
		r.dedup = d
	}
}

// Reconciler applies verified payment events to pledges and campaigns.
type Reconciler struct {
	store     store
	notifier  notifier
	publisher publisher
	stats     counter
	dedup     deduplicator
	now       func() time.Time
	newID     func() string
}

func New(store store, notifier notifier, opts ...Option) *Reconciler {
	r := &Reconciler{
		store:    store,
		notifier: notifier,
		now:      time.Now,
		newID:    uuid.NewString,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Dispatch routes an event to its handler.
// A nil error means the event must not be redelivered.
func (r *Reconciler) Dispatch(ctx context.Context, event *webhook.Event) error {
	logger := log.WithFields(log.Fields{
		"event_id":   event.ID,
		"event_type": event.RawType,
	})

	if event.Type == webhook.EventIgnored {
		logger.Debug("ignoring event")
		metrics.ObserveWebhook(event.Type.String(), metrics.OutcomeIgnored)
		return nil
	}

	if r.seen(event) {
		logger.Info("event already processed")
		metrics.ObserveWebhook(event.Type.String(), metrics.OutcomeDuplicate)
		return nil
	}

	var err error
	switch event.Type {
	case webhook.EventCheckoutCompleted:
		err = r.Create(ctx, event.CheckoutSession)
	case webhook.EventPaymentSucceeded:
		err = r.Capture(ctx, event.PaymentIntent)
	case webhook.EventPaymentFailed:
		err = r.Fail(ctx, event.PaymentIntent)
	case webhook.EventIgnored:
	}

	outcome := metrics.OutcomeProcessed
	if errors.Is(err, ErrIncompleteMetadata) {
		logger.WithError(err).Warn("skipping checkout session")
		outcome = metrics.OutcomeIgnored
	} else if err != nil {
		metrics.ObserveWebhook(event.Type.String(), metrics.OutcomeFailed)
		return errors.Wrapf(err, "failed to process event %s", event.ID)
	}

	r.mark(event)
	metrics.ObserveWebhook(event.Type.String(), outcome)

	return nil
}

// Create records a pending pledge for a completed checkout session.
func (r *Reconciler) Create(ctx context.Context, session *stripe.CheckoutSession) error {
	if session == nil {
		return errors.New("checkout session is missing")
	}

	campaignID := session.Metadata[model.MetadataCampaignID]
	backerID := session.Metadata[model.MetadataBackerID]
	if campaignID == "" || backerID == "" {
		return errors.Wrapf(ErrIncompleteMetadata, "session %s", session.ID)
	}

	currency := string(session.Currency)
	if currency == "" {
		currency = model.DefaultCurrency
	}

	paymentRef := ""
	if session.PaymentIntent != nil {
		paymentRef = session.PaymentIntent.ID
	}

	pledge := &model.Pledge{
		ID:               r.newID(),
		CampaignID:       campaignID,
		BackerID:         backerID,
		PledgeTierID:     session.Metadata[model.MetadataPledgeTierID],
		Amount:           model.FromMinorUnits(session.AmountTotal, currency),
		Currency:         currency,
		Status:           model.PledgePending,
		PaymentRef:       paymentRef,
		GatewaySessionID: session.ID,
	}

	created, err := r.store.RecordPledge(ctx, pledge)
	if err != nil {
		return err
	}

	logger := log.WithFields(log.Fields{
		"session_id":  session.ID,
		"campaign_id": campaignID,
		"backer_id":   backerID,
	})

	if !created {
		logger.Info("pledge for checkout session already exists")
		return nil
	}

	logger.WithField("pledge_id", pledge.ID).Infof("created pledge of %s %s", pledge.Amount, currency)
	r.publish(ctx, pledge)

	return nil
}

// Capture marks pending pledges of a payment intent as captured and confirms them to the backer.
func (r *Reconciler) Capture(ctx context.Context, intent *stripe.PaymentIntent) error {
	pledge, err := r.transition(ctx, intent, model.PledgeCaptured)
	if err != nil || pledge == nil {
		return err
	}

	if r.stats != nil {
		if _, err := r.stats.Inc(model.DefaultStatsMetric, pledge.CampaignID, pledge.Amount); err != nil {
			log.WithError(err).Warnf("failed to update stats of campaign %s", pledge.CampaignID)
		}
	}

	r.notify(ctx, pledge)
	return nil
}

// Fail marks pending pledges of a payment intent as failed.
func (r *Reconciler) Fail(ctx context.Context, intent *stripe.PaymentIntent) error {
	_, err := r.transition(ctx, intent, model.PledgeFailed)
	return err
}

// transition moves pending pledges to status and loads the earliest of them.
// Returns nil pledge if nothing was changed or the pledge could not be loaded after commit.
func (r *Reconciler) transition(ctx context.Context, intent *stripe.PaymentIntent, status model.PledgeStatus) (*model.Pledge, error) {
	if intent == nil || intent.ID == "" {
		return nil, errors.New("payment intent is missing")
	}

	count, err := r.store.TransitionPledges(ctx, intent.ID, status)
	if err != nil {
		return nil, err
	}

	logger := log.WithFields(log.Fields{
		"payment_ref": intent.ID,
		"status":      status,
	})

	if count == 0 {
		logger.Info("no pending pledges for payment intent")
		return nil, nil
	}

	metrics.ObserveTransition(string(status), count)
	logger.Infof("moved %d pledge(s)", count)

	// The update is committed at this point, a failed lookup must not trigger redelivery
	pledge, err := r.store.GetPledgeByPaymentRef(ctx, intent.ID)
	if err != nil {
		logger.WithError(err).Error("failed to load pledge after transition")
		return nil, nil
	}

	r.publish(ctx, pledge)
	return pledge, nil
}

func (r *Reconciler) notify(ctx context.Context, pledge *model.Pledge) {
	if r.notifier == nil || pledge.Backer == nil || pledge.Campaign == nil {
		return
	}

	confirmation := &model.Confirmation{
		Email:         pledge.Backer.Email,
		BackerName:    pledge.Backer.Name,
		CampaignID:    pledge.CampaignID,
		CampaignTitle: pledge.Campaign.Title,
		Amount:        pledge.Amount,
		Currency:      pledge.Currency,
		PledgeID:      pledge.ID,
	}

	if err := r.notifier.Notify(ctx, confirmation); err != nil {
		metrics.ObserveNotificationFailure()
		log.WithError(err).WithField("pledge_id", pledge.ID).Error("failed to send pledge confirmation")
	}
}

func (r *Reconciler) publish(ctx context.Context, pledge *model.Pledge) {
	if r.publisher == nil {
		return
	}

	event := &model.PledgeEvent{
		PledgeID:   pledge.ID,
		CampaignID: pledge.CampaignID,
		Status:     pledge.Status,
		Amount:     pledge.Amount,
		Currency:   pledge.Currency,
		PaymentRef: pledge.PaymentRef,
		OccurredAt: r.now().UTC(),
	}

	if err := r.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("pledge_id", pledge.ID).Warn("failed to publish pledge event")
	}
}

func (r *Reconciler) seen(event *webhook.Event) bool {
	if r.dedup == nil || event.ID == "" {
		return false
	}

	seen, err := r.dedup.Seen(event.ID)
	if err != nil {
		log.WithError(err).Warnf("failed to check event %s, processing it anyway", event.ID)
		return false
	}

	return seen
}

func (r *Reconciler) mark(event *webhook.Event) {
	if r.dedup == nil || event.ID == "" {
		return
	}

	if err := r.dedup.Mark(event.ID, event.RawType); err != nil {
		log.WithError(err).Warnf("failed to mark event %s as processed", event.ID)
	}
}
