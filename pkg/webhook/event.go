package webhook

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v81"
)

// EventType is a closed set of events the application acts on
type EventType int

const (
	// EventIgnored is any event type the application doesn't handle.
	// These are acknowledged so the sender does not retry them.
	EventIgnored EventType = iota
	EventCheckoutCompleted
	EventPaymentSucceeded
	EventPaymentFailed
)

func (t EventType) String() string {
	switch t {
	case EventCheckoutCompleted:
		return string(stripe.EventTypeCheckoutSessionCompleted)
	case EventPaymentSucceeded:
		return string(stripe.EventTypePaymentIntentSucceeded)
	case EventPaymentFailed:
		return string(stripe.EventTypePaymentIntentPaymentFailed)
	default:
		return "ignored"
	}
}

func typeOf(t stripe.EventType) EventType {
	switch t {
	case stripe.EventTypeCheckoutSessionCompleted:
		return EventCheckoutCompleted
	case stripe.EventTypePaymentIntentSucceeded:
		return EventPaymentSucceeded
	case stripe.EventTypePaymentIntentPaymentFailed:
		return EventPaymentFailed
	default:
		return EventIgnored
	}
}

// Event is a verified webhook event.
// Exactly one of CheckoutSession and PaymentIntent is set, depending on Type.
type Event struct {
	ID              string
	Type            EventType
	RawType         string
	CheckoutSession *stripe.CheckoutSession
	PaymentIntent   *stripe.PaymentIntent
}

// Parse decodes webhook body. Payloads of ignored event types are not decoded.
func Parse(body []byte) (*Event, error) {
	envelope := stripe.Event{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode event")
	}

	if envelope.Type == "" {
		return nil, errors.New("event type is empty")
	}

	event := &Event{
		ID:      envelope.ID,
		Type:    typeOf(envelope.Type),
		RawType: string(envelope.Type),
	}

	if event.Type == EventIgnored {
		return event, nil
	}

	if envelope.Data == nil || len(envelope.Data.Raw) == 0 {
		return nil, errors.Errorf("event %s has no data object", envelope.ID)
	}

	switch event.Type {
	case EventCheckoutCompleted:
		session := &stripe.CheckoutSession{}
		if err := json.Unmarshal(envelope.Data.Raw, session); err != nil {
			return nil, errors.Wrapf(err, "failed to decode checkout session of event %s", envelope.ID)
		}
		event.CheckoutSession = session
	case EventPaymentSucceeded, EventPaymentFailed:
		intent := &stripe.PaymentIntent{}
		if err := json.Unmarshal(envelope.Data.Raw, intent); err != nil {
			return nil, errors.Wrapf(err, "failed to decode payment intent of event %s", envelope.ID)
		}
		event.PaymentIntent = intent
	}

	return event, nil
}
