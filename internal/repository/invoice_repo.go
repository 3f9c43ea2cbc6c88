package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aaronwittchen/Invoicipedia/internal/identity"
	"github.com/aaronwittchen/Invoicipedia/internal/models"
)

var ErrNotFound = errors.New("record not found")

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Expose DB if needed
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

// scoped appends the compound ownership predicate: an organization caller
// sees only its organization's rows, a personal caller sees only their own
// rows with no organization set. No query bypasses this.
func scoped(q *gorm.DB, ident identity.Identity) *gorm.DB {
	if ident.OrganizationID != nil {
		return q.Where("organization_id = ?", *ident.OrganizationID)
	}
	return q.Where("user_id = ? AND organization_id IS NULL", ident.UserID)
}

// GetScoped fetches a single invoice visible to the caller.
func (r *InvoiceRepository) GetScoped(ident identity.Identity, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := scoped(r.db, ident).First(&invoice, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// GetWithCustomerScoped fetches an invoice joined with its customer.
func (r *InvoiceRepository) GetWithCustomerScoped(ident identity.Identity, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := scoped(r.db.Preload("Customer"), ident).First(&invoice, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// ListScoped returns one dashboard page, newest first, with the total row
// count for the pager.
func (r *InvoiceRepository) ListScoped(ident identity.Identity, page, limit int) ([]models.Invoice, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var total int64
	if err := scoped(r.db.Model(&models.Invoice{}), ident).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []models.Invoice
	err := scoped(r.db.Preload("Customer"), ident).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

// UpdateStatusScoped overwrites the status of a caller-visible invoice and
// reports how many rows changed. Cross-scope requests match nothing.
func (r *InvoiceRepository) UpdateStatusScoped(ident identity.Identity, id uuid.UUID, status models.Status) (int64, error) {
	result := scoped(r.db.Model(&models.Invoice{}), ident).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

// DeleteOwned removes an invoice owned personally by the user. There is no
// organization deletion path.
func (r *InvoiceRepository) DeleteOwned(id uuid.UUID, userID string) (int64, error) {
	result := r.db.
		Where("id = ? AND user_id = ? AND organization_id IS NULL", id, userID).
		Delete(&models.Invoice{})
	return result.RowsAffected, result.Error
}
