package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aaronwittchen/Invoicipedia/internal/identity"
	"github.com/aaronwittchen/Invoicipedia/internal/models"
	service "github.com/aaronwittchen/Invoicipedia/internal/services/invoicing"
)

type InvoiceHandler struct {
	service *service.Service
}

func NewInvoiceHandler(s *service.Service) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

// callerIdentity enforces the fail-closed authorization gate: without an
// identity the operation is a silent no-op, never an error.
func (h *InvoiceHandler) callerIdentity(c *gin.Context) (identity.Identity, bool) {
	ident, ok := identity.FromContext(c)
	if !ok {
		c.Status(http.StatusNoContent)
	}
	return ident, ok
}

// respond translates a service Result into HTTP: redirects become 303s,
// rendered data becomes JSON.
func (h *InvoiceHandler) respond(c *gin.Context, res service.Result) {
	if res.Kind == service.KindRedirect {
		c.Redirect(http.StatusSeeOther, res.Target)
		return
	}
	c.JSON(http.StatusOK, res.Data)
}

func invoiceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /api/invoices.
func (h *InvoiceHandler) Create(c *gin.Context) {
	ident, ok := h.callerIdentity(c)
	if !ok {
		return
	}

	var in struct {
		Name        string `form:"name" json:"name"`
		Email       string `form:"email" json:"email"`
		Value       string `form:"value" json:"value"`
		Currency    string `form:"currency" json:"currency"`
		Description string `form:"description" json:"description"`
	}
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	res, err := h.service.Create(c.Request.Context(), ident, service.CreateInput{
		Name:        in.Name,
		Email:       in.Email,
		Value:       in.Value,
		Currency:    in.Currency,
		Description: in.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create invoice"})
		return
	}

	h.respond(c, res)
}

// List handles GET /api/invoices, the paginated dashboard.
func (h *InvoiceHandler) List(c *gin.Context) {
	ident, ok := h.callerIdentity(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	res, err := h.service.Dashboard(c.Request.Context(), ident, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list invoices"})
		return
	}

	h.respond(c, res)
}

// Get handles GET /api/invoices/:id.
func (h *InvoiceHandler) Get(c *gin.Context) {
	ident, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	res, err := h.service.Get(c.Request.Context(), ident, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	h.respond(c, res)
}

// UpdateStatus handles POST /api/invoices/:id/status.
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	ident, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	var in struct {
		Status string `form:"status" json:"status"`
	}
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	err := h.service.UpdateStatus(c.Request.Context(), ident, id, models.Status(in.Status))
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "status updated", "status": in.Status})
	}
}

// Delete handles POST /api/invoices/:id/delete. The caller lands on the
// dashboard whether or not a row was deleted.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	ident, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	res, err := h.service.Delete(c.Request.Context(), ident, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete invoice"})
		return
	}

	h.respond(c, res)
}

// Pay handles POST /api/invoices/:id/pay and redirects to hosted checkout.
func (h *InvoiceHandler) Pay(c *gin.Context) {
	ident, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	res, err := h.service.CreatePayment(c.Request.Context(), ident, id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
	case errors.Is(err, service.ErrGateway):
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment session could not be created"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment"})
	default:
		h.respond(c, res)
	}
}

// Payments handles GET /api/invoices/:id/payments, the checkout return URL.
func (h *InvoiceHandler) Payments(c *gin.Context) {
	ident, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	res, err := h.service.Reconcile(c.Request.Context(), ident, id, service.ReconcileInput{
		Status:    c.Query("status"),
		SessionID: c.Query("session_id"),
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	h.respond(c, res)
}
