package payments

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"
)

// StripeGateway implements Gateway using Stripe Checkout Sessions.
type StripeGateway struct {
	productID string
}

// NewStripeGateway configures the Stripe SDK and returns a gateway bound to
// one product. The apiKey is a secret key (sk_test_... / sk_live_...).
//
// Note: the SDK key is process-wide; per-tenant keys would need per-request
// configuration instead.
func NewStripeGateway(apiKey, productID string) (*StripeGateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("stripe api key is required")
	}
	if productID == "" {
		return nil, fmt.Errorf("stripe product id is required")
	}

	stripe.Key = apiKey

	return &StripeGateway{productID: productID}, nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(params.Currency)),
					Product:    stripe.String(g.productID),
					UnitAmount: stripe.Int64(params.UnitAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
	}
	sessionParams.Context = ctx

	s, err := session.New(sessionParams)
	if err != nil {
		return nil, wrapStripeError(err)
	}
	if s.URL == "" {
		return nil, ErrNoCheckoutURL
	}

	return &CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (string, error) {
	getParams := &stripe.CheckoutSessionParams{}
	getParams.Context = ctx

	s, err := session.Get(sessionID, getParams)
	if err != nil {
		stripeErr, ok := err.(*stripe.Error)
		if ok && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return "", ErrSessionNotFound
		}
		return "", wrapStripeError(err)
	}

	return string(s.PaymentStatus), nil
}

// wrapStripeError keeps processor detail out of user-facing errors while
// preserving it for logs.
func wrapStripeError(err error) error {
	if err == nil {
		return nil
	}
	stripeErr, ok := err.(*stripe.Error)
	if !ok {
		return err
	}
	return fmt.Errorf("stripe: %s (code=%s, request=%s)", stripeErr.Msg, stripeErr.Code, stripeErr.RequestID)
}
