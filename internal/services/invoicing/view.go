package invoicing

import (
	"time"

	"github.com/aaronwittchen/Invoicipedia/internal/currency"
	"github.com/aaronwittchen/Invoicipedia/internal/models"
)

// InvoiceView is the presentation-facing shape of an invoice joined with
// its customer.
type InvoiceView struct {
	ID              string        `json:"id"`
	Value           int64         `json:"value"`
	Formatted       string        `json:"formatted"`
	Currency        currency.Code `json:"currency"`
	CurrencyDisplay string        `json:"currencyDisplay"`
	Description     string        `json:"description"`
	Status          models.Status `json:"status"`
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	CreatedAt       time.Time     `json:"createTs"`
}

func newInvoiceView(invoice *models.Invoice) InvoiceView {
	return InvoiceView{
		ID:              invoice.ID.String(),
		Value:           invoice.Value,
		Formatted:       currency.Format(invoice.Value, invoice.Currency),
		Currency:        invoice.Currency,
		CurrencyDisplay: currency.Display(invoice.Currency),
		Description:     invoice.Description,
		Status:          invoice.Status,
		CustomerName:    invoice.Customer.Name,
		CustomerEmail:   invoice.Customer.Email,
		CreatedAt:       invoice.CreatedAt,
	}
}

// DashboardPage is one page of the invoice dashboard.
type DashboardPage struct {
	Items []InvoiceView `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// Outcome is the reconciliation state after returning from hosted checkout.
type Outcome string

const (
	OutcomeIdle            Outcome = "idle"
	OutcomeError           Outcome = "error"
	OutcomeCanceled        Outcome = "canceled"
	OutcomeAwaitingConfirm Outcome = "awaiting-confirm"
	OutcomeAlreadyPaid     Outcome = "already-paid"
)

// PaymentView is the reconciliation result. CanConfirm signals that the
// caller must explicitly confirm to move the invoice to paid; the transition
// itself always goes through the status operation.
type PaymentView struct {
	Outcome    Outcome     `json:"outcome"`
	CanConfirm bool        `json:"canConfirm"`
	Invoice    InvoiceView `json:"invoice"`
}
