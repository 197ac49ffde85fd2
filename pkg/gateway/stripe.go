package gateway

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"github.com/mxpv/pledgesync/pkg/model"
)

// CheckoutRequest describes a hosted checkout for a single pledge
type CheckoutRequest struct {
	CampaignID    string
	CampaignTitle string
	BackerID      string
	BackerEmail   string
	PledgeTierID  string
	Amount        int64 // In minor currency units
	Currency      string
	SuccessURL    string
	CancelURL     string
}

// Stripe is a thin wrapper around Stripe API client
type Stripe struct {
	api *client.API
}

func NewStripe(key string) *Stripe {
	return newStripe(key, nil)
}

func newStripe(key string, backends *stripe.Backends) *Stripe {
	api := &client.API{}
	api.Init(key, backends)
	return &Stripe{api: api}
}

// CreateCheckoutSession creates a payment mode checkout session.
// Pledge identifiers are attached as metadata and come back with checkout.session.completed webhook.
func (s *Stripe) CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*stripe.CheckoutSession, error) {
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	metadata := map[string]string{
		model.MetadataCampaignID: req.CampaignID,
		model.MetadataBackerID:   req.BackerID,
	}
	if req.PledgeTierID != "" {
		metadata[model.MetadataPledgeTierID] = req.PledgeTierID
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(req.SuccessURL),
		CancelURL:     stripe.String(req.CancelURL),
		CustomerEmail: stripe.String(req.BackerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.CampaignTitle),
					},
				},
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: metadata,
		},
	}

	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create checkout session for campaign %s", req.CampaignID)
	}

	return session, nil
}

func (s *Stripe) CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}

	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment intent")
	}

	return intent, nil
}

func (s *Stripe) ConfirmPaymentIntent(ctx context.Context, intentID string, paymentMethodID string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentConfirmParams{}
	if paymentMethodID != "" {
		params.PaymentMethod = stripe.String(paymentMethodID)
	}
	params.Context = ctx

	intent, err := s.api.PaymentIntents.Confirm(intentID, params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to confirm payment intent %s", intentID)
	}

	return intent, nil
}

func (s *Stripe) CapturePaymentIntent(ctx context.Context, intentID string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentCaptureParams{}
	params.Context = ctx

	intent, err := s.api.PaymentIntents.Capture(intentID, params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to capture payment intent %s", intentID)
	}

	return intent, nil
}

func (s *Stripe) CancelPaymentIntent(ctx context.Context, intentID string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx

	intent, err := s.api.PaymentIntents.Cancel(intentID, params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to cancel payment intent %s", intentID)
	}

	return intent, nil
}

// CreateRefund refunds a payment intent, zero amount refunds the whole charge.
func (s *Stripe) CreateRefund(ctx context.Context, intentID string, amount int64) (*stripe.Refund, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(intentID),
	}
	if amount > 0 {
		params.Amount = stripe.Int64(amount)
	}
	params.Context = ctx

	refund, err := s.api.Refunds.New(params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to refund payment intent %s", intentID)
	}

	return refund, nil
}

func (s *Stripe) ListRefunds(ctx context.Context, intentID string) ([]*stripe.Refund, error) {
	params := &stripe.RefundListParams{
		PaymentIntent: stripe.String(intentID),
	}
	params.Context = ctx

	var list []*stripe.Refund

	iter := s.api.Refunds.List(params)
	for iter.Next() {
		list = append(list, iter.Refund())
	}

	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list refunds of payment intent %s", intentID)
	}

	return list, nil
}

func (s *Stripe) AttachPaymentMethod(ctx context.Context, methodID string, customerID string) (*stripe.PaymentMethod, error) {
	params := &stripe.PaymentMethodAttachParams{
		Customer: stripe.String(customerID),
	}
	params.Context = ctx

	method, err := s.api.PaymentMethods.Attach(methodID, params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to attach payment method %s", methodID)
	}

	return method, nil
}

func (s *Stripe) DetachPaymentMethod(ctx context.Context, methodID string) (*stripe.PaymentMethod, error) {
	params := &stripe.PaymentMethodDetachParams{}
	params.Context = ctx

	method, err := s.api.PaymentMethods.Detach(methodID, params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to detach payment method %s", methodID)
	}

	return method, nil
}
