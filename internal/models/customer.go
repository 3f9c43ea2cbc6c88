package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is created once per invoice-creation request (no dedup) and is
// immutable afterwards. It carries the same ownership scope as its invoices.
type Customer struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	UserID         string    `gorm:"index" json:"userId"`
	OrganizationID *string   `gorm:"index" json:"organizationId"`
	CreatedAt      time.Time `json:"createTs"`
}
