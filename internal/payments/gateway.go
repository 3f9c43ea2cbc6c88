package payments

import (
	"context"
	"errors"
)

// PaymentStatusPaid is the gateway-reported status that counts as a
// completed payment during reconciliation.
const PaymentStatusPaid = "paid"

var (
	ErrSessionNotFound = errors.New("checkout session not found")
	ErrNoCheckoutURL   = errors.New("gateway returned no checkout url")
)

// CheckoutParams describes a single-line-item hosted checkout.
type CheckoutParams struct {
	Currency   string
	UnitAmount int64
	SuccessURL string
	CancelURL  string
}

// CheckoutSession is a gateway-hosted, time-bounded payment flow.
type CheckoutSession struct {
	ID  string
	URL string
}

// Gateway is the payment processor boundary. Implementations are constructed
// and injected; nothing in the service layer touches processor globals.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
	// RetrieveSession returns the payment status of a session by id.
	RetrieveSession(ctx context.Context, sessionID string) (string, error)
}
