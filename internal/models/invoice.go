package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/aaronwittchen/Invoicipedia/internal/currency"
)

// Status is an invoice lifecycle state. Transitions are unguarded: any
// status may be overwritten with any other through the status operation.
type Status string

const (
	StatusOpen          Status = "open"
	StatusPaid          Status = "paid"
	StatusVoid          Status = "void"
	StatusUncollectible Status = "uncollectible"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusOpen, StatusPaid, StatusVoid, StatusUncollectible:
		return true
	}
	return false
}

// Invoice is owned by exactly one scope: either OrganizationID is set, or it
// is null and UserID identifies the sole owner. Value is an integer count of
// minor currency units.
type Invoice struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Value          int64         `json:"value"`
	Currency       currency.Code `gorm:"type:varchar(8)" json:"currency"`
	Description    string        `json:"description"`
	Status         Status        `gorm:"type:varchar(16);index" json:"status"`
	UserID         string        `gorm:"index" json:"userId"`
	OrganizationID *string       `gorm:"index" json:"organizationId"`
	CustomerID     uuid.UUID     `gorm:"type:uuid;index" json:"customerId"`
	Customer       Customer      `json:"customer"`
	CreatedAt      time.Time     `json:"createTs"`
}
