package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/aaronwittchen/Invoicipedia/internal/models"
)

type CheckoutAttemptRepository struct {
	db *gorm.DB
}

func NewCheckoutAttemptRepository(db *gorm.DB) *CheckoutAttemptRepository {
	return &CheckoutAttemptRepository{db: db}
}

func (r *CheckoutAttemptRepository) Create(attempt *models.CheckoutAttempt) error {
	return r.db.Create(attempt).Error
}

// GetBySessionID returns the audit row for a gateway session, if recorded.
func (r *CheckoutAttemptRepository) GetBySessionID(sessionID string) (*models.CheckoutAttempt, error) {
	var attempt models.CheckoutAttempt
	err := r.db.First(&attempt, "session_id = ?", sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

// UpdateStatus records the reconciliation outcome on an attempt.
func (r *CheckoutAttemptRepository) UpdateStatus(sessionID, status string) error {
	return r.db.Model(&models.CheckoutAttempt{}).
		Where("session_id = ?", sessionID).
		Update("status", status).Error
}
