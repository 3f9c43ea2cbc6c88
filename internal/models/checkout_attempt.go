package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CheckoutAttempt states.
const (
	AttemptCreated  = "created"
	AttemptVerified = "verified"
	AttemptFailed   = "failed"
	AttemptCanceled = "canceled"
)

// CheckoutAttempt is the audit trail of hosted checkout sessions requested
// for an invoice. Detail holds the raw gateway response fields.
type CheckoutAttempt struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID uuid.UUID      `gorm:"type:uuid;index" json:"invoiceId"`
	SessionID string         `gorm:"index" json:"sessionId"`
	Status    string         `gorm:"index" json:"status"`
	Detail    datatypes.JSON `json:"detail"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
