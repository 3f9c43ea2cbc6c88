package notify

import (
	"context"
	"log"

	"github.com/aaronwittchen/Invoicipedia/internal/currency"
)

// InvoiceCreated is the notification payload sent to a customer when an
// invoice is created for them.
type InvoiceCreated struct {
	InvoiceID    string
	CustomerName string
	Email        string
	Amount       int64
	Currency     currency.Code
	Description  string
}

// Notifier delivers customer notifications. Delivery failure must never
// block the operation that triggered it; callers log and continue.
type Notifier interface {
	InvoiceCreated(ctx context.Context, n InvoiceCreated) error
}

// Noop discards notifications. This is the deployed default: email delivery
// is disabled.
type Noop struct{}

func (Noop) InvoiceCreated(ctx context.Context, n InvoiceCreated) error {
	return nil
}

// LogNotifier writes notifications to the process log, for development.
type LogNotifier struct{}

func (LogNotifier) InvoiceCreated(ctx context.Context, n InvoiceCreated) error {
	log.Printf("notify %s: new invoice %s for %s (%s)",
		n.Email, n.InvoiceID, n.CustomerName, currency.Format(n.Amount, n.Currency))
	return nil
}
