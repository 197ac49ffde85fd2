package webhook

import (
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v81/webhook"

	"github.com/mxpv/pledgesync/pkg/model"
)

// HeaderSignature is the header Stripe puts the signature envelope to
const HeaderSignature = "Stripe-Signature"

// SignatureError is returned when a payload can't be authenticated.
// The sender must not retry such deliveries.
type SignatureError struct {
	Reason string
	Err    error
}

func (e *SignatureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *SignatureError) Unwrap() error {
	return e.Err
}

// ConfigurationError means the server is not able to verify signatures at all.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

// Verifier authenticates webhook payloads signed with a shared secret
type Verifier struct {
	secret    string
	tolerance time.Duration
}

func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	if tolerance <= 0 {
		tolerance = model.DefaultSignatureTolerance
	}

	return &Verifier{secret: secret, tolerance: tolerance}
}

// Verify checks signature header against raw request body.
// The HMAC is computed over "{timestamp}.{body}", any of the provided v1 signatures may match.
func (v *Verifier) Verify(payload []byte, header string) error {
	if v == nil || v.secret == "" {
		return &ConfigurationError{Reason: "webhook secret not configured"}
	}

	if header == "" {
		return &SignatureError{Reason: "missing stripe-signature header"}
	}

	if err := webhook.ValidatePayloadWithTolerance(payload, header, v.secret, v.tolerance); err != nil {
		reason := "invalid signature"
		switch err {
		case webhook.ErrNotSigned, webhook.ErrInvalidHeader:
			reason = "malformed signature header"
		case webhook.ErrTooOld:
			reason = "signature timestamp is outside of tolerance"
		}

		return &SignatureError{Reason: reason, Err: err}
	}

	return nil
}
