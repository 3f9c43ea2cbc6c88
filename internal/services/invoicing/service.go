package invoicing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aaronwittchen/Invoicipedia/internal/currency"
	"github.com/aaronwittchen/Invoicipedia/internal/identity"
	"github.com/aaronwittchen/Invoicipedia/internal/models"
	"github.com/aaronwittchen/Invoicipedia/internal/notify"
	"github.com/aaronwittchen/Invoicipedia/internal/payments"
	"github.com/aaronwittchen/Invoicipedia/internal/repository"
)

var (
	ErrNotFound      = errors.New("invoice not found")
	ErrInvalidStatus = errors.New("invalid status")
	ErrGateway       = errors.New("payment gateway failure")
)

// ErrInvalidAmount is returned for unparseable or negative amounts.
var ErrInvalidAmount = currency.ErrInvalidAmount

// Revalidator invalidates cached views after a status write so subsequent
// reads reflect the new state. The default does nothing.
type Revalidator interface {
	Revalidate(paths ...string)
}

type noopRevalidator struct{}

func (noopRevalidator) Revalidate(paths ...string) {}

// Options configures the optional collaborators of the lifecycle service.
type Options struct {
	// Origin is the externally visible base URL used to build the
	// checkout success/cancel callbacks.
	Origin      string
	Notifier    notify.Notifier
	Revalidator Revalidator
}

// Service is the invoice lifecycle core: creation, status transitions,
// deletion, payment-session creation and reconciliation. Every read and
// write is scoped to the caller identity.
type Service struct {
	invoices    *repository.InvoiceRepository
	customers   *repository.CustomerRepository
	attempts    *repository.CheckoutAttemptRepository
	db          *gorm.DB
	gateway     payments.Gateway
	notifier    notify.Notifier
	revalidator Revalidator
	origin      string
}

func NewService(
	invoices *repository.InvoiceRepository,
	customers *repository.CustomerRepository,
	attempts *repository.CheckoutAttemptRepository,
	gateway payments.Gateway,
	opts Options,
) *Service {
	if opts.Notifier == nil {
		opts.Notifier = notify.Noop{}
	}
	if opts.Revalidator == nil {
		opts.Revalidator = noopRevalidator{}
	}

	return &Service{
		invoices:    invoices,
		customers:   customers,
		attempts:    attempts,
		db:          invoices.DB(),
		gateway:     gateway,
		notifier:    opts.Notifier,
		revalidator: opts.Revalidator,
		origin:      strings.TrimRight(opts.Origin, "/"),
	}
}

// CreateInput is the raw form input for invoice creation.
type CreateInput struct {
	Name        string
	Email       string
	Value       string
	Currency    string
	Description string
}

// Create persists a new customer and an open invoice referencing it, both
// scoped to the caller, in a single transaction. Unknown currencies become
// usd silently; unparseable amounts are rejected.
func (s *Service) Create(ctx context.Context, ident identity.Identity, in CreateInput) (Result, error) {
	value, err := currency.ParseMinorUnits(in.Value)
	if err != nil {
		return Result{}, err
	}
	code := currency.ParseOrDefault(in.Currency)

	customer := &models.Customer{
		ID:             uuid.New(),
		Name:           in.Name,
		Email:          in.Email,
		UserID:         ident.UserID,
		OrganizationID: ident.OrganizationID,
	}
	invoice := &models.Invoice{
		ID:             uuid.New(),
		Value:          value,
		Currency:       code,
		Description:    in.Description,
		Status:         models.StatusOpen,
		UserID:         ident.UserID,
		OrganizationID: ident.OrganizationID,
		CustomerID:     customer.ID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.customers.Create(tx, customer); err != nil {
			return err
		}
		return tx.Create(invoice).Error
	})
	if err != nil {
		return Result{}, err
	}

	// Notification is best effort: a delivery failure never blocks the
	// redirect to the new invoice.
	if err := s.notifier.InvoiceCreated(ctx, notify.InvoiceCreated{
		InvoiceID:    invoice.ID.String(),
		CustomerName: customer.Name,
		Email:        customer.Email,
		Amount:       invoice.Value,
		Currency:     invoice.Currency,
		Description:  invoice.Description,
	}); err != nil {
		log.Printf("invoice %s: notification failed: %v", invoice.ID, err)
	}

	return Redirect("/invoices/" + invoice.ID.String()), nil
}

// UpdateStatus unconditionally overwrites the status of a caller-visible
// invoice. Transitions are unguarded: any status may move to any other.
// Cross-scope requests match no row and return ErrNotFound.
func (s *Service) UpdateStatus(ctx context.Context, ident identity.Identity, id uuid.UUID, status models.Status) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	rows, err := s.invoices.UpdateStatusScoped(ident, id, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.revalidator.Revalidate(
		"/invoices/"+id.String(),
		"/invoices/"+id.String()+"/payments",
		"/dashboard",
	)
	return nil
}

// Delete removes an invoice owned personally by the caller. Organization
// invoices have no deletion path. The caller is sent back to the dashboard
// whether or not a row was deleted.
func (s *Service) Delete(ctx context.Context, ident identity.Identity, id uuid.UUID) (Result, error) {
	if _, err := s.invoices.DeleteOwned(id, ident.UserID); err != nil {
		return Result{}, err
	}
	return Redirect("/dashboard"), nil
}

// Dashboard returns one scoped page of invoices joined with their customers.
func (s *Service) Dashboard(ctx context.Context, ident identity.Identity, page, limit int) (Result, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	invoices, total, err := s.invoices.ListScoped(ident, page, limit)
	if err != nil {
		return Result{}, err
	}

	items := make([]InvoiceView, 0, len(invoices))
	for i := range invoices {
		items = append(items, newInvoiceView(&invoices[i]))
	}

	return Rendered(DashboardPage{Items: items, Total: total, Page: page, Limit: limit}), nil
}

// Get returns a single caller-visible invoice joined with its customer.
func (s *Service) Get(ctx context.Context, ident identity.Identity, id uuid.UUID) (Result, error) {
	invoice, err := s.invoices.GetWithCustomerScoped(ident, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Result{}, ErrNotFound
		}
		return Result{}, err
	}
	return Rendered(newInvoiceView(invoice)), nil
}

// CreatePayment requests a hosted checkout session for an open invoice and
// redirects the caller to it. The lookup applies the same scope predicate as
// every other operation. A gateway response without a usable URL is fatal.
func (s *Service) CreatePayment(ctx context.Context, ident identity.Identity, id uuid.UUID) (Result, error) {
	invoice, err := s.invoices.GetScoped(ident, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Result{}, ErrNotFound
		}
		return Result{}, err
	}

	callbackBase := s.origin + "/invoices/" + id.String() + "/payments"
	session, err := s.gateway.CreateCheckoutSession(ctx, payments.CheckoutParams{
		Currency:   string(invoice.Currency),
		UnitAmount: invoice.Value,
		SuccessURL: callbackBase + "?status=success&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  callbackBase + "?status=canceled&session_id={CHECKOUT_SESSION_ID}",
	})
	if err != nil {
		log.Printf("invoice %s: checkout session creation failed: %v", id, err)
		return Result{}, ErrGateway
	}
	if session.URL == "" {
		return Result{}, ErrGateway
	}

	// The checkout session already exists at the gateway; a failed audit
	// write must not block the redirect.
	detail, _ := json.Marshal(map[string]any{
		"url":         session.URL,
		"currency":    invoice.Currency,
		"unit_amount": invoice.Value,
	})
	attempt := &models.CheckoutAttempt{
		ID:        uuid.New(),
		InvoiceID: invoice.ID,
		SessionID: session.ID,
		Status:    models.AttemptCreated,
		Detail:    detail,
	}
	if err := s.attempts.Create(attempt); err != nil {
		log.Printf("invoice %s: checkout attempt audit write failed: %v", id, err)
	}

	return Redirect(session.URL), nil
}

// ReconcileInput carries the query parameters of the checkout return URL.
type ReconcileInput struct {
	Status    string
	SessionID string
}

// Reconcile matches the gateway-reported payment status against the
// persisted invoice after the hosted-checkout redirect. It never mutates the
// invoice: a verified payment on an open invoice yields an explicit confirm
// action that goes through UpdateStatus, which keeps reloads and bookmarked
// return URLs from double-applying side effects.
func (s *Service) Reconcile(ctx context.Context, ident identity.Identity, id uuid.UUID, in ReconcileInput) (Result, error) {
	invoice, err := s.invoices.GetWithCustomerScoped(ident, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Result{}, ErrNotFound
		}
		return Result{}, err
	}

	outcome := OutcomeIdle

	switch {
	case in.Status == "canceled":
		outcome = OutcomeCanceled
		if in.SessionID != "" {
			s.markAttempt(in.SessionID, models.AttemptCanceled)
		}

	case in.Status == "success" && in.SessionID != "":
		paymentStatus, err := s.gateway.RetrieveSession(ctx, in.SessionID)
		switch {
		case err != nil:
			log.Printf("invoice %s: session %s lookup failed: %v", id, in.SessionID, err)
			outcome = OutcomeError
			s.markAttempt(in.SessionID, models.AttemptFailed)
		case paymentStatus != payments.PaymentStatusPaid:
			outcome = OutcomeError
			s.markAttempt(in.SessionID, models.AttemptFailed)
		default:
			s.markAttempt(in.SessionID, models.AttemptVerified)
			switch invoice.Status {
			case models.StatusOpen:
				outcome = OutcomeAwaitingConfirm
			case models.StatusPaid:
				outcome = OutcomeAlreadyPaid
			}
		}
	}

	return Rendered(PaymentView{
		Outcome:    outcome,
		CanConfirm: outcome == OutcomeAwaitingConfirm,
		Invoice:    newInvoiceView(invoice),
	}), nil
}

func (s *Service) markAttempt(sessionID, status string) {
	if err := s.attempts.UpdateStatus(sessionID, status); err != nil {
		log.Printf("session %s: attempt status update failed: %v", sessionID, err)
	}
}
